/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import "time"

// Reserved wire constants from RFC 7011.
const (
	ProtocolVersion uint16 = 10

	TemplateSetID        uint16 = 2
	OptionsTemplateSetID uint16 = 3

	MinDataTemplateID uint16 = 256
	MaxTemplateID     uint16 = 0xFFFF

	EnterpriseBit uint16 = 0x8000

	// MessageHeaderLength is the fixed size of the IPFIX message header.
	MessageHeaderLength = 16
	// SetHeaderLength is the fixed size of a set header.
	SetHeaderLength = 4

	// ReversePEN is the private enterprise number reserved by RFC 5103 for
	// biflow "reverse" Information Elements.
	ReversePEN uint32 = 29305
)

// ntpEpoch is the epoch used by dateTimeMicroseconds/dateTimeNanoseconds,
// which encode an NTP-format 64-bit timestamp (RFC 7011 §6.1.9).
var ntpEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
