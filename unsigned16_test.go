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

func TestUnsigned16(t *testing.T) {
	t.Run("round trip at default length", func(t *testing.T) {
		dt := NewUnsigned16().SetValue(uint16(4096))

		var buf bytes.Buffer
		if _, err := dt.Encode(&buf); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 2 {
			t.Fatalf("expected 2 octets, got %d", buf.Len())
		}

		out := NewUnsigned16()
		if _, err := out.Decode(&buf); err != nil {
			t.Fatal(err)
		}
		if out.Value().(uint16) != 4096 {
			t.Fatalf("expected 4096, got %v", out.Value())
		}
	})

	t.Run("with reduced length", func(t *testing.T) {
		dt := NewUnsigned16().SetLength(1)

		n, err := dt.Decode(bytes.NewBuffer([]byte{0x0f}))
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Fatalf("expected to consume 1 octet, consumed %d", n)
		}
		if dt.Value().(uint16) != 0x0f {
			t.Fatalf("expected 0x0f, got %v", dt.Value())
		}
		if !dt.IsReducedLength() {
			t.Fatal("expected IsReducedLength to be true")
		}
	})

	t.Run("encode at reduced length", func(t *testing.T) {
		dt := NewUnsigned16().SetValue(uint16(0xff)).SetLength(1)

		var buf bytes.Buffer
		if _, err := dt.Encode(&buf); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 1 {
			t.Fatalf("expected 1 octet, got %d", buf.Len())
		}
		if buf.Bytes()[0] != 0xff {
			t.Fatalf("expected 0xff, got %#x", buf.Bytes()[0])
		}
	})
}
