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

func TestMacAddress(t *testing.T) {
	dt := NewMacAddress().SetValue("de:ad:be:ef:00:01")

	var buf bytes.Buffer
	if _, err := dt.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 6 {
		t.Fatalf("expected 6 octets, got %d", buf.Len())
	}

	out := NewMacAddress()
	if _, err := out.Decode(&buf); err != nil {
		t.Fatal(err)
	}
	if out.String() != "de:ad:be:ef:00:01" {
		t.Fatalf("expected de:ad:be:ef:00:01, got %s", out.String())
	}
}
