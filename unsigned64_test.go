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

func TestUnsigned64(t *testing.T) {
	t.Run("round trip at default length", func(t *testing.T) {
		dt := NewUnsigned64().SetValue(uint64(123456789))

		var buf bytes.Buffer
		if _, err := dt.Encode(&buf); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 8 {
			t.Fatalf("expected 8 octets, got %d", buf.Len())
		}

		out := NewUnsigned64()
		if _, err := out.Decode(&buf); err != nil {
			t.Fatal(err)
		}
		if out.Value().(uint64) != 123456789 {
			t.Fatalf("expected 123456789, got %v", out.Value())
		}
	})

	t.Run("reduced length round trip", func(t *testing.T) {
		// packetDeltaCount fit into 4 octets on the wire via reduced-length
		// encoding.
		dt := NewUnsigned64().SetValue(uint64(42)).SetLength(4)

		var buf bytes.Buffer
		if _, err := dt.Encode(&buf); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 4 {
			t.Fatalf("expected 4 octets, got %d", buf.Len())
		}

		out := NewUnsigned64().SetLength(4)
		if _, err := out.Decode(&buf); err != nil {
			t.Fatal(err)
		}
		if out.Value().(uint64) != 42 {
			t.Fatalf("expected 42, got %v", out.Value())
		}
	})
}
