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

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/flowstack/go-ipfix/iana/version"
)

// messageHeader is the 16-octet IPFIX Message Header (RFC 7011 §3.1).
type messageHeader struct {
	Version        uint16
	Length         uint16
	ExportTime     time.Time
	SequenceNumber uint32
	ObservationID  uint32
}

func (h *messageHeader) encode(w io.Writer) (int, error) {
	b := make([]byte, 0, MessageHeaderLength)
	b = binary.BigEndian.AppendUint16(b, ProtocolVersion)
	b = binary.BigEndian.AppendUint16(b, h.Length)
	b = binary.BigEndian.AppendUint32(b, uint32(h.ExportTime.Unix()))
	b = binary.BigEndian.AppendUint32(b, h.SequenceNumber)
	b = binary.BigEndian.AppendUint32(b, h.ObservationID)
	return w.Write(b)
}

func decodeMessageHeader(r io.Reader) (*messageHeader, int, error) {
	b := make([]byte, MessageHeaderLength)
	n, err := readFull(r, b)
	if err != nil {
		return nil, n, err
	}
	wireVersion := binary.BigEndian.Uint16(b[0:2])
	if version.ProtocolVersion(wireVersion) != version.IPFIX {
		return nil, n, MalformedMessage("unexpected message header version " + version.ProtocolVersion(wireVersion).String())
	}
	return &messageHeader{
		Version:        wireVersion,
		Length:         binary.BigEndian.Uint16(b[2:4]),
		ExportTime:     time.Unix(int64(binary.BigEndian.Uint32(b[4:8])), 0).UTC(),
		SequenceNumber: binary.BigEndian.Uint32(b[8:12]),
		ObservationID:  binary.BigEndian.Uint32(b[12:16]),
	}, n, nil
}

// setHeader is the 4-octet Set Header shared by Template Sets, Options
// Template Sets, and Data Sets (RFC 7011 §3.3.2).
type setHeader struct {
	SetID  uint16
	Length uint16
}

func (h *setHeader) encode(w io.Writer) (int, error) {
	b := make([]byte, 0, SetHeaderLength)
	b = binary.BigEndian.AppendUint16(b, h.SetID)
	b = binary.BigEndian.AppendUint16(b, h.Length)
	return w.Write(b)
}

func decodeSetHeader(r io.Reader) (*setHeader, int, error) {
	b := make([]byte, SetHeaderLength)
	n, err := readFull(r, b)
	if err != nil {
		return nil, n, err
	}
	return &setHeader{
		SetID:  binary.BigEndian.Uint16(b[0:2]),
		Length: binary.BigEndian.Uint16(b[2:4]),
	}, n, nil
}
