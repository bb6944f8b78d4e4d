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
	"fmt"
	"io"
)

type Unsigned32 struct {
	value         uint32
	length        uint16
	reducedLength bool
}

func NewUnsigned32() DataType { return &Unsigned32{} }

func (t *Unsigned32) String() string { return fmt.Sprintf("%d", t.value) }

func (*Unsigned32) Type() string { return "unsigned32" }

func (t *Unsigned32) Value() interface{} { return t.value }

func (t *Unsigned32) SetValue(v any) DataType {
	switch n := v.(type) {
	case uint32:
		t.value = n
	case int:
		t.value = uint32(n)
	case uint64:
		t.value = uint32(n)
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *Unsigned32) Length() uint16 {
	if t.length > 0 {
		return t.length
	}
	return t.DefaultLength()
}

func (*Unsigned32) DefaultLength() uint16 { return 4 }

func (t *Unsigned32) Clone() DataType {
	return &Unsigned32{value: t.value, length: t.length, reducedLength: t.reducedLength}
}

func (t *Unsigned32) SetLength(length uint16) DataType {
	if length > 0 && length < t.DefaultLength() {
		t.length = length
		t.reducedLength = true
	} else {
		t.length = t.DefaultLength()
		t.reducedLength = false
	}
	return t
}

func (t *Unsigned32) IsReducedLength() bool { return t.reducedLength }

func (t *Unsigned32) Decode(r io.Reader) (int, error) {
	b := make([]byte, t.Length())
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	full := widenBigEndian(b, int(t.DefaultLength()))
	t.value = binary.BigEndian.Uint32(full)
	return n, nil
}

func (t *Unsigned32) Encode(w io.Writer) (int, error) {
	full := make([]byte, t.DefaultLength())
	binary.BigEndian.PutUint32(full, t.value)
	return w.Write(narrowBigEndian(full, int(t.Length())))
}

var _ DataTypeConstructor = NewUnsigned32
var _ DataType = &Unsigned32{}
