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
	"bytes"
	"encoding/binary"
	"io"
)

// decodedSet is one Set scanned out of a received Message's body: its Set
// ID and raw, still-undecoded body bytes.
type decodedSet struct {
	SetID uint16
	Body  []byte
}

// Record is one decoded Data Record, tagged with the Template ID (which,
// for Data Sets, is also the Set ID) it was decoded against.
type Record struct {
	TemplateID uint16
	Values     []DataType
}

// FromBytes parses a complete IPFIX Message out of b.
func FromBytes(b []byte) (*MessageBuffer, error) {
	return ReadMessage(bytes.NewReader(b))
}

// ReadMessage reads one complete IPFIX Message from r: the 16-octet
// header, then its Sets. Template and Options Template Sets are applied to
// the buffer's template table before any Data Set is decoded, regardless
// of wire order, so a Data Set may reference a template defined later in
// the same Message.
func ReadMessage(r io.Reader) (*MessageBuffer, error) {
	h, _, err := decodeMessageHeader(r)
	if err != nil {
		MalformedMessagesTotal.Inc()
		return nil, err
	}
	if int(h.Length) < MessageHeaderLength {
		MalformedMessagesTotal.Inc()
		return nil, MalformedMessage("message length shorter than header")
	}

	body := make([]byte, int(h.Length)-MessageHeaderLength)
	if _, err := readFull(r, body); err != nil {
		MalformedMessagesTotal.Inc()
		return nil, err
	}

	m := NewMessageBuffer(0)
	m.odid = h.ObservationID
	m.header = *h
	m.state = Finalized

	setlist, err := scanSets(body)
	if err != nil {
		MalformedMessagesTotal.Inc()
		return nil, err
	}
	m.sets = setlist

	for _, s := range setlist {
		if s.SetID == TemplateSetID || s.SetID == OptionsTemplateSetID {
			if err := m.applyTemplateSet(s); err != nil {
				MalformedMessagesTotal.Inc()
				return nil, err
			}
		}
	}

	var records []Record
	for _, s := range setlist {
		if s.SetID < MinDataTemplateID {
			continue
		}
		t, ok := m.templates[s.SetID]
		if !ok {
			// Unknown template: the set is skipped rather than failing
			// the whole message, matching how a collector tolerates an
			// exporter restart mid-stream.
			continue
		}
		rr := bytes.NewReader(s.Body)
		for rr.Len() > 0 {
			values, _, err := t.DecodeRecord(rr)
			if err != nil {
				break
			}
			records = append(records, Record{TemplateID: s.SetID, Values: values})
		}
		SetsDecodedTotal.WithLabelValues("data").Inc()
	}

	m.decodedRecordsCache = records
	MessagesDecodedTotal.Inc()
	return m, nil
}

// scanSets splits a Message body into its constituent Sets without
// interpreting their contents.
func scanSets(body []byte) ([]decodedSet, error) {
	var sets []decodedSet
	br := bytes.NewReader(body)
	for br.Len() > 0 {
		sh, _, err := decodeSetHeader(br)
		if err != nil {
			return nil, err
		}
		if int(sh.Length) < SetHeaderLength {
			return nil, MalformedMessage("set length shorter than set header")
		}
		setBody := make([]byte, int(sh.Length)-SetHeaderLength)
		if _, err := readFull(br, setBody); err != nil {
			return nil, err
		}
		sets = append(sets, decodedSet{SetID: sh.SetID, Body: setBody})
	}
	return sets, nil
}

// applyTemplateSet parses every Template Record (or Options Template
// Record) in s and registers or withdraws it against m.templates.
func (m *MessageBuffer) applyTemplateSet(s decodedSet) error {
	r := bytes.NewReader(s.Body)
	for r.Len() >= 4 {
		head := make([]byte, 4)
		if _, err := readFull(r, head); err != nil {
			return err
		}
		tid := binary.BigEndian.Uint16(head[0:2])
		fieldCount := binary.BigEndian.Uint16(head[2:4])

		if fieldCount == 0 {
			delete(m.templates, tid)
			TemplateWithdrawalsTotal.Inc()
			continue
		}

		var scopeCount uint16
		if s.SetID == OptionsTemplateSetID {
			scopeBuf := make([]byte, 2)
			if _, err := readFull(r, scopeBuf); err != nil {
				return err
			}
			scopeCount = binary.BigEndian.Uint16(scopeBuf)
		}

		ies, _, err := decodeFieldDescriptorsFrom(r, int(fieldCount))
		if err != nil {
			return err
		}

		m.templates[tid] = &Template{TemplateID: tid, ScopeCount: scopeCount, IEs: ies}
	}
	SetsDecodedTotal.WithLabelValues("template").Inc()
	return nil
}

// Records returns the Data Records this Message decoded to, in wire order,
// as tuples in each record's own template field order.
func (m *MessageBuffer) Records() []Record {
	return m.decodedRecordsCache
}

// NameDictRecords returns the Data Records this Message decoded to, each
// reshaped into a name-dict keyed by IE name. Records whose template is no
// longer known (e.g. withdrawn after being decoded) are skipped.
func (m *MessageBuffer) NameDictRecords() []map[string]DataType {
	out := make([]map[string]DataType, 0, len(m.decodedRecordsCache))
	for _, r := range m.decodedRecordsCache {
		t, ok := m.templates[r.TemplateID]
		if !ok {
			continue
		}
		dict := make(map[string]DataType, len(t.IEs))
		for i, ie := range t.IEs {
			dict[ie.Name] = r.Values[i]
		}
		out = append(out, dict)
	}
	return out
}

// IEDictRecords returns the Data Records this Message decoded to, each
// reshaped into an IE-dict keyed by the resolved InformationElement
// handle rather than its bare name.
func (m *MessageBuffer) IEDictRecords() []map[InformationElement]DataType {
	out := make([]map[InformationElement]DataType, 0, len(m.decodedRecordsCache))
	for _, r := range m.decodedRecordsCache {
		t, ok := m.templates[r.TemplateID]
		if !ok {
			continue
		}
		dict := make(map[InformationElement]DataType, len(t.IEs))
		for i, ie := range t.IEs {
			dict[ie] = r.Values[i]
		}
		out = append(out, dict)
	}
	return out
}

// Templates returns a snapshot of the templates currently known to this
// buffer (added via AddTemplate while exporting, or applied while
// decoding).
func (m *MessageBuffer) Templates() map[uint16]*Template {
	out := make(map[uint16]*Template, len(m.templates))
	for k, v := range m.templates {
		out[k] = v
	}
	return out
}

// templateCoversProjection reports whether every IE in projection also
// appears (by identity) in t's field list.
func templateCoversProjection(t *Template, projection InformationElementList) bool {
	for _, p := range projection {
		found := false
		for _, ie := range t.IEs {
			if ie.key() == p.key() {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// TupleRecords decodes only the Data Sets whose template covers every IE in
// projection, and reshapes each matching record into a tuple ordered by
// projection rather than by the template's own field order. Sets described
// by templates that don't carry every projected IE are skipped entirely,
// short-circuiting the usual full-record decode for sets that could never
// satisfy the caller's projection.
func (m *MessageBuffer) TupleRecords(projection InformationElementList) ([][]DataType, error) {
	_ = PackPlanForIEList(projection) // warms the packing-plan cache for this projection's identity.

	var out [][]DataType
	for _, s := range m.sets {
		if s.SetID < MinDataTemplateID {
			continue
		}
		t, ok := m.templates[s.SetID]
		if !ok || !templateCoversProjection(t, projection) {
			continue
		}

		rr := bytes.NewReader(s.Body)
		for rr.Len() > 0 {
			tuple, _, err := t.DecodeTupleFrom(rr, projection)
			if err != nil {
				break
			}
			out = append(out, tuple)
		}
	}
	return out, nil
}

// SequenceNumber returns this Message's Sequence Number field.
func (m *MessageBuffer) SequenceNumber() uint32 { return m.header.SequenceNumber }

// ObservationDomainID returns this Message's Observation Domain ID field.
func (m *MessageBuffer) ObservationDomainID() uint32 { return m.header.ObservationID }
