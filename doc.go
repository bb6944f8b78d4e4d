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

// Package ipfix implements the template-driven binary codec at the core of
// IP Flow Information Export (IPFIX, RFC 7011): Information Elements and
// their registry, Templates with precomputed packing plans, and a
// MessageBuffer that frames Sets, applies Templates, enforces a maximum
// message size, and tracks per-observation-domain template state.
//
// The package does not implement transport (TCP/UDP framing, SCTP,
// retransmission timers) beyond the thin adapters in tcp.go and udp.go, nor
// does it bundle the IANA Information Element registry data — callers
// supply that via UseIANADefault, Use5103Default, or UseSpecfile.
package ipfix
