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
	"testing"
)

func testIEs() InformationElementList {
	return InformationElementList{
		{Name: "sourceIPv4Address", Num: 8, Type: "ipv4Address", Length: 4},
		{Name: "destinationIPv4Address", Num: 12, Type: "ipv4Address", Length: 4},
		{Name: "packetDeltaCount", Num: 2, Type: "unsigned64", Length: 4},
		{Name: "applicationName", Num: 96, Type: "string", Length: VariableLength},
	}
}

func TestTemplateRecordRoundTrip(t *testing.T) {
	ClearInfoModel()
	defer ClearInfoModel()

	tmpl := FromIEList(256, testIEs())

	var buf bytes.Buffer
	if _, err := tmpl.EncodeTemplateTo(&buf); err != nil {
		t.Fatal(err)
	}

	tid := make([]byte, 2)
	if _, err := buf.Read(tid); err != nil {
		t.Fatal(err)
	}
	fc := make([]byte, 2)
	if _, err := buf.Read(fc); err != nil {
		t.Fatal(err)
	}

	ies, _, err := decodeFieldDescriptorsFrom(&buf, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(ies) != 4 {
		t.Fatalf("expected 4 ies, got %d", len(ies))
	}
	if ies[2].Length != 4 {
		t.Fatalf("expected reduced-length packetDeltaCount to decode as 4 octets, got %d", ies[2].Length)
	}
	if !ies[3].isVariableLength() {
		t.Fatal("expected applicationName to remain variable-length")
	}
}

func TestDataRecordRoundTrip(t *testing.T) {
	tmpl := FromIEList(256, testIEs())

	values := []DataType{
		NewIPv4Address().SetValue("10.0.0.1"),
		NewIPv4Address().SetValue("10.0.0.2"),
		NewUnsigned64().SetValue(uint64(7)).SetLength(4),
		NewString().SetValue("Grüezi, Y'all"),
	}

	var buf bytes.Buffer
	if _, err := tmpl.EncodeRecord(&buf, values); err != nil {
		t.Fatal(err)
	}

	out, _, err := tmpl.DecodeRecord(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out[2].Value().(uint64) != 7 {
		t.Fatalf("expected packetDeltaCount 7, got %v", out[2].Value())
	}
	if out[3].Value().(string) != "Grüezi, Y'all" {
		t.Fatalf("unexpected applicationName: %v", out[3].Value())
	}
}

func TestNameDictRoundTrip(t *testing.T) {
	tmpl := FromIEList(256, testIEs())

	rec := map[string]DataType{
		"sourceIPv4Address":      NewIPv4Address().SetValue("10.0.0.1"),
		"destinationIPv4Address": NewIPv4Address().SetValue("10.0.0.2"),
		"packetDeltaCount":       NewUnsigned64().SetValue(uint64(7)).SetLength(4),
		"applicationName":        NewString().SetValue("Grüezi, Y'all"),
		"extraFieldTheTemplateDoesNotHave": NewUnsigned8().SetValue(uint8(1)),
	}

	var buf bytes.Buffer
	if _, err := tmpl.EncodeNameDictTo(&buf, rec); err != nil {
		t.Fatal(err)
	}

	out, _, err := tmpl.DecodeNameDictFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out["packetDeltaCount"].Value().(uint64) != 7 {
		t.Fatalf("unexpected packetDeltaCount: %v", out["packetDeltaCount"].Value())
	}
	if out["applicationName"].Value().(string) != "Grüezi, Y'all" {
		t.Fatalf("unexpected applicationName: %v", out["applicationName"].Value())
	}
}

func TestEncodeNameDictToMissingFieldFails(t *testing.T) {
	tmpl := FromIEList(256, testIEs())

	rec := map[string]DataType{
		"sourceIPv4Address": NewIPv4Address().SetValue("10.0.0.1"),
	}

	var buf bytes.Buffer
	if _, err := tmpl.EncodeNameDictTo(&buf, rec); err == nil {
		t.Fatal("expected missing-field error for an incomplete name-dict")
	}
}

func TestIEDictRoundTrip(t *testing.T) {
	tmpl := FromIEList(256, testIEs())

	values := []DataType{
		NewIPv4Address().SetValue("10.0.0.1"),
		NewIPv4Address().SetValue("10.0.0.2"),
		NewUnsigned64().SetValue(uint64(7)).SetLength(4),
		NewString().SetValue("Grüezi, Y'all"),
	}

	var buf bytes.Buffer
	if _, err := tmpl.EncodeRecord(&buf, values); err != nil {
		t.Fatal(err)
	}

	out, _, err := tmpl.DecodeIEDictFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out[tmpl.IEs[2]].Value().(uint64) != 7 {
		t.Fatalf("unexpected packetDeltaCount: %v", out[tmpl.IEs[2]].Value())
	}
}

func TestTupleRecordProjectionRoundTrip(t *testing.T) {
	tmpl := FromIEList(256, testIEs())

	projection := InformationElementList{
		{Name: "packetDeltaCount", Num: 2, Type: "unsigned64", Length: 4},
		{Name: "sourceIPv4Address", Num: 8, Type: "ipv4Address", Length: 4},
	}
	rec := []DataType{
		NewUnsigned64().SetValue(uint64(9)).SetLength(4),
		NewIPv4Address().SetValue("10.0.0.1"),
	}

	var buf bytes.Buffer
	if _, err := tmpl.EncodeTupleTo(&buf, rec, projection); err == nil {
		t.Fatal("expected missing-field error: the template also requires destinationIPv4Address and applicationName")
	}

	full := InformationElementList{
		{Name: "packetDeltaCount", Num: 2, Type: "unsigned64", Length: 4},
		{Name: "sourceIPv4Address", Num: 8, Type: "ipv4Address", Length: 4},
		{Name: "destinationIPv4Address", Num: 12, Type: "ipv4Address", Length: 4},
		{Name: "applicationName", Num: 96, Type: "string", Length: VariableLength},
	}
	fullRec := []DataType{
		NewUnsigned64().SetValue(uint64(9)).SetLength(4),
		NewIPv4Address().SetValue("10.0.0.1"),
		NewIPv4Address().SetValue("10.0.0.2"),
		NewString().SetValue("curl"),
	}
	if _, err := tmpl.EncodeTupleTo(&buf, fullRec, full); err != nil {
		t.Fatal(err)
	}

	tuple, _, err := tmpl.DecodeTupleFrom(&buf, projection)
	if err != nil {
		t.Fatal(err)
	}
	if tuple[0].Value().(uint64) != 9 {
		t.Fatalf("unexpected packetDeltaCount in tuple: %v", tuple[0].Value())
	}
	if tuple[1].String() != "10.0.0.1" {
		t.Fatalf("unexpected sourceIPv4Address in tuple: %v", tuple[1].Value())
	}
}
