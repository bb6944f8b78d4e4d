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
	"errors"
	"testing"
	"time"
)

func simpleTemplate(tid uint16) *Template {
	return FromIEList(tid, InformationElementList{
		{Name: "sourceIPv4Address", Num: 8, Type: "ipv4Address", Length: 4},
		{Name: "destinationIPv4Address", Num: 12, Type: "ipv4Address", Length: 4},
		{Name: "packetDeltaCount", Num: 2, Type: "unsigned64", Length: 8},
	})
}

func TestExportAndDecodeRoundTrip(t *testing.T) {
	UseIANADefault()
	mb := NewMessageBuffer(1500)
	if err := mb.BeginExport(1); err != nil {
		t.Fatal(err)
	}

	tmpl := simpleTemplate(256)
	if err := mb.AddTemplate(tmpl); err != nil {
		t.Fatal(err)
	}

	values := []DataType{
		NewIPv4Address().SetValue("192.0.2.1"),
		NewIPv4Address().SetValue("192.0.2.2"),
		NewUnsigned64().SetValue(uint64(10)),
	}
	if err := mb.ExportRecord(256, values); err != nil {
		t.Fatal(err)
	}

	raw, err := mb.ToBytes()
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := FromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	records := decoded.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Values[2].Value().(uint64) != 10 {
		t.Fatalf("unexpected packetDeltaCount: %v", records[0].Values[2].Value())
	}
}

func TestExportRecordEndOfMessageRollsBack(t *testing.T) {
	mb := NewMessageBuffer(48)
	if err := mb.BeginExport(1); err != nil {
		t.Fatal(err)
	}

	tmpl := FromIEList(256, InformationElementList{
		{Name: "packetDeltaCount", Num: 2, Type: "unsigned64", Length: 8},
	})
	if err := mb.AddTemplate(tmpl); err != nil {
		t.Fatal(err)
	}

	values := func() []DataType {
		return []DataType{NewUnsigned64().SetValue(uint64(1))}
	}

	exported := 0
	for {
		err := mb.ExportRecord(256, values())
		if err != nil {
			if !errors.Is(err, ErrEndOfMessage) {
				t.Fatalf("unexpected error: %v", err)
			}
			break
		}
		exported++
		if exported > 100 {
			t.Fatal("mtu exhaustion never triggered")
		}
	}

	raw, err := mb.ToBytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) > 48 {
		t.Fatalf("finalized message exceeds configured mtu: %d", len(raw))
	}

	decoded, err := FromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Records()) != exported {
		t.Fatalf("expected %d records to survive the round trip, got %d", exported, len(decoded.Records()))
	}
}

func TestTemplateWithdrawal(t *testing.T) {
	mb := NewMessageBuffer(1500)
	if err := mb.BeginExport(1); err != nil {
		t.Fatal(err)
	}

	tmpl := simpleTemplate(256)
	if err := mb.AddTemplate(tmpl); err != nil {
		t.Fatal(err)
	}
	if err := mb.DeleteTemplate(256); err != nil {
		t.Fatal(err)
	}

	if err := mb.ExportRecord(256, nil); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected withdrawn template to be unusable, got %v", err)
	}

	raw, err := mb.ToBytes()
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := FromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded.Templates()[256]; ok {
		t.Fatal("expected the withdrawal to remove the template on the decode side too")
	}
}

func TestDecodeSkipsUnknownTemplateSet(t *testing.T) {
	// Build a message containing only a Data Set for a template the
	// decoder never saw a Template Record for: the set must be skipped,
	// not treated as a fatal parse error.
	tmpl := simpleTemplate(512)

	var recordBody bytes.Buffer
	if _, err := tmpl.EncodeRecord(&recordBody, []DataType{
		NewIPv4Address().SetValue("192.0.2.1"),
		NewIPv4Address().SetValue("192.0.2.2"),
		NewUnsigned64().SetValue(uint64(1)),
	}); err != nil {
		t.Fatal(err)
	}

	sh := setHeader{SetID: 512, Length: uint16(SetHeaderLength + recordBody.Len())}
	var setBody bytes.Buffer
	sh.encode(&setBody)
	setBody.Write(recordBody.Bytes())

	h := messageHeader{ExportTime: time.Now(), ObservationID: 1}
	h.Length = uint16(MessageHeaderLength + setBody.Len())
	var raw bytes.Buffer
	if _, err := h.encode(&raw); err != nil {
		t.Fatal(err)
	}
	raw.Write(setBody.Bytes())

	decoded, err := FromBytes(raw.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Records()) != 0 {
		t.Fatalf("expected the unknown-template data set to be skipped, got %d records", len(decoded.Records()))
	}
}

func TestExportNameDictRecordAndDecode(t *testing.T) {
	UseIANADefault()
	mb := NewMessageBuffer(1500)
	if err := mb.BeginExport(1); err != nil {
		t.Fatal(err)
	}

	tmpl := simpleTemplate(256)
	if err := mb.AddTemplate(tmpl); err != nil {
		t.Fatal(err)
	}

	rec := map[string]DataType{
		"sourceIPv4Address":      NewIPv4Address().SetValue("192.0.2.1"),
		"destinationIPv4Address": NewIPv4Address().SetValue("192.0.2.2"),
		"packetDeltaCount":       NewUnsigned64().SetValue(uint64(10)),
	}
	if err := mb.ExportNameDictRecord(256, rec); err != nil {
		t.Fatal(err)
	}

	raw, err := mb.ToBytes()
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := FromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	dicts := decoded.NameDictRecords()
	if len(dicts) != 1 {
		t.Fatalf("expected 1 record, got %d", len(dicts))
	}
	if dicts[0]["packetDeltaCount"].Value().(uint64) != 10 {
		t.Fatalf("unexpected packetDeltaCount: %v", dicts[0]["packetDeltaCount"].Value())
	}

	ieDicts := decoded.IEDictRecords()
	if len(ieDicts) != 1 {
		t.Fatalf("expected 1 record, got %d", len(ieDicts))
	}
	if ieDicts[0][tmpl.IEs[2]].Value().(uint64) != 10 {
		t.Fatalf("unexpected packetDeltaCount by ie: %v", ieDicts[0][tmpl.IEs[2]].Value())
	}
}

func TestExportTupleRecordAndDecode(t *testing.T) {
	UseIANADefault()
	mb := NewMessageBuffer(1500)
	if err := mb.BeginExport(1); err != nil {
		t.Fatal(err)
	}

	tmpl := simpleTemplate(256)
	if err := mb.AddTemplate(tmpl); err != nil {
		t.Fatal(err)
	}

	projection := InformationElementList{
		{Name: "packetDeltaCount", Num: 2, Type: "unsigned64", Length: 8},
		{Name: "sourceIPv4Address", Num: 8, Type: "ipv4Address", Length: 4},
		{Name: "destinationIPv4Address", Num: 12, Type: "ipv4Address", Length: 4},
	}
	rec := []DataType{
		NewUnsigned64().SetValue(uint64(42)),
		NewIPv4Address().SetValue("192.0.2.1"),
		NewIPv4Address().SetValue("192.0.2.2"),
	}
	if err := mb.ExportTupleRecord(256, rec, projection); err != nil {
		t.Fatal(err)
	}

	raw, err := mb.ToBytes()
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := FromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	tuples, err := decoded.TupleRecords(InformationElementList{
		{Name: "packetDeltaCount", Num: 2, Type: "unsigned64", Length: 8},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(tuples) != 1 {
		t.Fatalf("expected 1 tuple, got %d", len(tuples))
	}
	if tuples[0][0].Value().(uint64) != 42 {
		t.Fatalf("unexpected packetDeltaCount in tuple: %v", tuples[0][0].Value())
	}
}

func TestBeginExportWrongState(t *testing.T) {
	mb := NewMessageBuffer(1500)
	if err := mb.BeginExport(1); err != nil {
		t.Fatal(err)
	}
	if err := mb.BeginExport(1); !errors.Is(err, ErrWrongState) {
		t.Fatalf("expected ErrWrongState, got %v", err)
	}
}
