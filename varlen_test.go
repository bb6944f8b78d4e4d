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

func TestVarlenPrefix(t *testing.T) {
	t.Run("short form", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := encodeVarlenPrefix(&buf, 13)
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Fatalf("expected 1 octet written, got %d", n)
		}

		length, consumed, err := decodeVarlenPrefix(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if length != 13 || consumed != 1 {
			t.Fatalf("expected (13, 1), got (%d, %d)", length, consumed)
		}
	})

	t.Run("long form", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := encodeVarlenPrefix(&buf, 300)
		if err != nil {
			t.Fatal(err)
		}
		if n != 3 {
			t.Fatalf("expected 3 octets written, got %d", n)
		}

		length, consumed, err := decodeVarlenPrefix(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if length != 300 || consumed != 3 {
			t.Fatalf("expected (300, 3), got (%d, %d)", length, consumed)
		}
	})

	t.Run("boundary at 255 uses long form", func(t *testing.T) {
		if varlenPrefixLength(254) != 1 {
			t.Fatal("expected 254 to use the short form")
		}
		if varlenPrefixLength(255) != 3 {
			t.Fatal("expected 255 to use the long form")
		}
	})
}
