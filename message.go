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
	"io"
	"sync"
	"time"
)

// bufferState tracks where a MessageBuffer is in its exporting lifecycle:
//
//	Idle -> WritingMessage -> WritingSet -> Finalized
//
// BeginExport enters WritingMessage; the first set opened by AddTemplate/
// ExportRecord/DeleteTemplate (or ExportEnsureSet/ExportNewSet) moves it to
// WritingSet, where it stays as the current Set ID changes; ToBytes/
// WriteMessage moves it to Finalized.
type bufferState int

const (
	Idle bufferState = iota
	WritingMessage
	WritingSet
	Finalized
)

func (s bufferState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case WritingMessage:
		return "WritingMessage"
	case WritingSet:
		return "WritingSet"
	case Finalized:
		return "Finalized"
	default:
		return "Unknown"
	}
}

var (
	seqMu      sync.Mutex
	seqNumbers = map[uint32]uint32{}
)

func peekSequenceNumber(odid uint32) uint32 {
	seqMu.Lock()
	defer seqMu.Unlock()
	return seqNumbers[odid]
}

func advanceSequenceNumber(odid uint32, n uint32) {
	seqMu.Lock()
	defer seqMu.Unlock()
	seqNumbers[odid] += n
}

// MessageBuffer accumulates Template and Data Sets for a single
// Observation Domain into one MTU-bounded IPFIX Message, and symmetrically
// decodes a received Message back into sets and records (decode.go).
type MessageBuffer struct {
	mtu   int
	state bufferState

	odid   uint32
	header messageHeader

	templates map[uint16]*Template

	body         bytes.Buffer
	currentSetID uint16
	currentSet   bytes.Buffer
	dataRecords  uint32

	// decode-side state, populated by FromBytes/ReadMessage.
	sets                []decodedSet
	decodedRecordsCache []Record
}

// NewMessageBuffer returns a MessageBuffer bounded to mtu octets per
// exported Message, including the 16-octet Message Header.
func NewMessageBuffer(mtu int) *MessageBuffer {
	if mtu <= 0 {
		mtu = 1500
	}
	return &MessageBuffer{mtu: mtu, state: Idle, templates: map[uint16]*Template{}}
}

// BeginExport resets the buffer and opens a new Message for Observation
// Domain odid.
func (m *MessageBuffer) BeginExport(odid uint32) error {
	if m.state != Idle && m.state != Finalized {
		return WrongState("BeginExport", m.state)
	}
	m.odid = odid
	m.header = messageHeader{
		ExportTime:     time.Now(),
		SequenceNumber: peekSequenceNumber(odid),
		ObservationID:  odid,
	}
	m.body.Reset()
	m.currentSet.Reset()
	m.currentSetID = 0
	m.dataRecords = 0
	m.state = WritingMessage
	return nil
}

// currentLength returns the total Message length if the current pending
// set were flushed right now.
func (m *MessageBuffer) currentLength() int {
	total := MessageHeaderLength + m.body.Len()
	if m.currentSet.Len() > 0 {
		total += SetHeaderLength + m.currentSet.Len()
	}
	return total
}

// ExportEnsureSet flushes the pending set (if any, and if its ID differs
// from setID) and opens a new pending set under setID. A no-op if setID is
// already the open pending set.
func (m *MessageBuffer) ExportEnsureSet(setID uint16) error {
	if m.state != WritingMessage && m.state != WritingSet {
		return WrongState("ExportEnsureSet", m.state)
	}
	if m.state == WritingSet && m.currentSetID == setID {
		return nil
	}
	m.flushCurrentSet()
	m.currentSetID = setID
	m.state = WritingSet
	return nil
}

// ExportNewSet unconditionally flushes any pending set and opens a new one
// under setID, even if setID matches the set already open.
func (m *MessageBuffer) ExportNewSet(setID uint16) error {
	if m.state != WritingMessage && m.state != WritingSet {
		return WrongState("ExportNewSet", m.state)
	}
	m.flushCurrentSet()
	m.currentSetID = setID
	m.state = WritingSet
	return nil
}

// flushCurrentSet appends the pending set's header and body to m.body and
// clears it. It leaves m.state and m.currentSetID unchanged; callers
// reassign them as needed.
func (m *MessageBuffer) flushCurrentSet() {
	if m.currentSet.Len() == 0 {
		return
	}
	h := setHeader{SetID: m.currentSetID, Length: uint16(SetHeaderLength + m.currentSet.Len())}
	h.encode(&m.body)
	m.body.Write(m.currentSet.Bytes())
	m.currentSet.Reset()
}

// AddTemplate registers t in this buffer's template table and appends it as
// a Template Record (or Options Template Record) to the Message. The table
// is keyed by Template ID alone and is not reset by BeginExport, so a
// template added under one Observation Domain stays usable after
// BeginExport switches the buffer to another.
func (m *MessageBuffer) AddTemplate(t *Template) error {
	setID := TemplateSetID
	if t.IsOptions() {
		setID = OptionsTemplateSetID
	}

	snap := m.snapshot()

	if err := m.ExportEnsureSet(setID); err != nil {
		return err
	}

	var rec bytes.Buffer
	if _, err := t.EncodeTemplateTo(&rec); err != nil {
		m.restore(snap)
		return err
	}

	if MessageHeaderLength+m.body.Len()+SetHeaderLength+m.currentSet.Len()+rec.Len() > m.mtu {
		m.restore(snap)
		EndOfMessageTotal.Inc()
		return EndOfMessage(m.mtu, m.currentLength(), rec.Len())
	}

	m.currentSet.Write(rec.Bytes())
	m.templates[t.TemplateID] = t
	Log.V(1).Info("added template", "odid", m.odid, "tid", t.TemplateID, "plan", t.packPlan().String())
	return nil
}

// DeleteTemplate withdraws a previously added template: it stops being
// usable for ExportRecord and a Template Withdrawal record is appended to
// the Message so the remote Collecting Process drops it too.
func (m *MessageBuffer) DeleteTemplate(tid uint16) error {
	if _, ok := m.templates[tid]; !ok {
		return TemplateNotFound(m.odid, tid)
	}

	snap := m.snapshot()

	if err := m.ExportEnsureSet(TemplateSetID); err != nil {
		return err
	}

	var rec bytes.Buffer
	if _, err := encodeTemplateWithdrawalTo(&rec, tid); err != nil {
		m.restore(snap)
		return err
	}

	if MessageHeaderLength+m.body.Len()+SetHeaderLength+m.currentSet.Len()+rec.Len() > m.mtu {
		m.restore(snap)
		EndOfMessageTotal.Inc()
		return EndOfMessage(m.mtu, m.currentLength(), rec.Len())
	}

	m.currentSet.Write(rec.Bytes())
	delete(m.templates, tid)
	TemplateWithdrawalsTotal.Inc()
	Log.V(1).Info("withdrew template", "odid", m.odid, "tid", tid)
	return nil
}

// ExportRecord encodes one data record against the registered template tid
// and appends it to the Message's Data Set for that template. If the
// record would not fit within the configured MTU, the buffer is left
// exactly as it was before the call (no partial write) and EndOfMessage is
// returned; the caller should finalize the current Message and retry
// against a fresh one.
func (m *MessageBuffer) ExportRecord(tid uint16, values []DataType) error {
	t, ok := m.templates[tid]
	if !ok {
		return TemplateNotFound(m.odid, tid)
	}

	snap := m.snapshot()

	if err := m.ExportEnsureSet(tid); err != nil {
		return err
	}

	var rec bytes.Buffer
	if _, err := t.EncodeRecord(&rec, values); err != nil {
		m.restore(snap)
		return err
	}

	if MessageHeaderLength+m.body.Len()+SetHeaderLength+m.currentSet.Len()+rec.Len() > m.mtu {
		m.restore(snap)
		EndOfMessageTotal.Inc()
		return EndOfMessage(m.mtu, m.currentLength(), rec.Len())
	}

	m.currentSet.Write(rec.Bytes())
	m.dataRecords++
	RecordsExportedTotal.Inc()
	return nil
}

// ExportNameDictRecord exports one data record supplied as a name-dict: a
// mapping from IE name to value. Every IE in the template must have an
// entry in rec; extra keys not named by the template are ignored. Subject
// to the same MTU accounting and rollback as ExportRecord.
func (m *MessageBuffer) ExportNameDictRecord(tid uint16, rec map[string]DataType) error {
	t, ok := m.templates[tid]
	if !ok {
		return TemplateNotFound(m.odid, tid)
	}
	values := make([]DataType, len(t.IEs))
	for i, ie := range t.IEs {
		v, ok := rec[ie.Name]
		if !ok {
			return MissingField(ie.Name)
		}
		values[i] = v
	}
	return m.ExportRecord(tid, values)
}

// ExportTupleRecord exports one data record supplied as a tuple shaped by
// ielist: rec[i] corresponds to ielist[i]. IEs in ielist the template
// doesn't carry are ignored; IEs the template carries that ielist doesn't
// name fail with missing-field. If ielist is nil, rec is taken to already
// be in template field order, equivalent to ExportRecord. Subject to the
// same MTU accounting and rollback as ExportRecord.
func (m *MessageBuffer) ExportTupleRecord(tid uint16, rec []DataType, ielist InformationElementList) error {
	t, ok := m.templates[tid]
	if !ok {
		return TemplateNotFound(m.odid, tid)
	}
	if ielist == nil {
		return m.ExportRecord(tid, rec)
	}
	values, err := t.projectToTemplateOrder(rec, ielist)
	if err != nil {
		return err
	}
	return m.ExportRecord(tid, values)
}

// bufferSnapshot captures enough of a MessageBuffer's pending-write state
// to fully restore it after an operation fails partway through, including
// after ExportEnsureSet has already flushed a different pending set into
// m.body.
type bufferSnapshot struct {
	bodyLen  int
	setID    uint16
	setBytes []byte
	state    bufferState
}

// snapshot captures the buffer's current pending-write state.
func (m *MessageBuffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		bodyLen:  m.body.Len(),
		setID:    m.currentSetID,
		setBytes: append([]byte(nil), m.currentSet.Bytes()...),
		state:    m.state,
	}
}

// restore undoes everything since a snapshot was taken, including a set
// flush ExportEnsureSet performed before the operation ultimately failed,
// so the buffer ends up byte-identical to its pre-call state.
func (m *MessageBuffer) restore(s bufferSnapshot) {
	m.body.Truncate(s.bodyLen)
	m.currentSet.Reset()
	m.currentSet.Write(s.setBytes)
	m.currentSetID = s.setID
	m.state = s.state
}

// ToBytes finalizes the Message (flushing any pending set), returning its
// complete wire representation and advancing this Observation Domain's
// sequence number by the number of Data Records exported.
func (m *MessageBuffer) ToBytes() ([]byte, error) {
	if m.state != WritingMessage && m.state != WritingSet {
		return nil, WrongState("ToBytes", m.state)
	}
	m.flushCurrentSet()

	m.header.Length = uint16(MessageHeaderLength + m.body.Len())

	var out bytes.Buffer
	if _, err := m.header.encode(&out); err != nil {
		return nil, err
	}
	out.Write(m.body.Bytes())

	advanceSequenceNumber(m.odid, m.dataRecords)
	m.state = Finalized
	MessagesExportedTotal.Inc()
	return out.Bytes(), nil
}

// WriteMessage finalizes the Message the same way ToBytes does and writes
// it to w.
func (m *MessageBuffer) WriteMessage(w io.Writer) (int, error) {
	b, err := m.ToBytes()
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}
