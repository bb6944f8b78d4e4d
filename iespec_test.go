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

import "testing"

func TestParseIESpec(t *testing.T) {
	t.Run("name only", func(t *testing.T) {
		ps, err := parseIESpec("packetDeltaCount")
		if err != nil {
			t.Fatal(err)
		}
		if ps.name == nil || *ps.name != "packetDeltaCount" {
			t.Fatalf("expected name packetDeltaCount, got %+v", ps)
		}
		if !ps.isLookup() {
			t.Fatal("expected a bare name to be a lookup")
		}
	})

	t.Run("pen and num", func(t *testing.T) {
		ps, err := parseIESpec("(35566/1)")
		if err != nil {
			t.Fatal(err)
		}
		if ps.pen == nil || *ps.pen != 35566 {
			t.Fatalf("expected pen 35566, got %+v", ps)
		}
		if ps.num == nil || *ps.num != 1 {
			t.Fatalf("expected num 1, got %+v", ps)
		}
	})

	t.Run("full registration spec", func(t *testing.T) {
		ps, err := parseIESpec("myNewInformationElement(35566/1)<string>[32]")
		if err != nil {
			t.Fatal(err)
		}
		if ps.name == nil || *ps.name != "myNewInformationElement" {
			t.Fatalf("unexpected name: %+v", ps)
		}
		if ps.typ == nil || *ps.typ != "string" {
			t.Fatalf("unexpected type: %+v", ps)
		}
		if ps.size == nil || *ps.size != 32 {
			t.Fatalf("unexpected size: %+v", ps)
		}
		if ps.isLookup() {
			t.Fatal("expected a typed spec to not be a lookup")
		}
	})

	t.Run("empty spec is invalid", func(t *testing.T) {
		if _, err := parseIESpec(""); err == nil {
			t.Fatal("expected an error for an empty spec")
		}
	})

	t.Run("malformed brackets are invalid", func(t *testing.T) {
		if _, err := parseIESpec("name(unclosed"); err == nil {
			t.Fatal("expected an error for malformed brackets")
		}
	})
}
