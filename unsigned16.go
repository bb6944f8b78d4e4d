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

type Unsigned16 struct {
	value         uint16
	length        uint16
	reducedLength bool
}

func NewUnsigned16() DataType { return &Unsigned16{} }

func (t *Unsigned16) String() string { return fmt.Sprintf("%d", t.value) }

func (*Unsigned16) Type() string { return "unsigned16" }

func (t *Unsigned16) Value() interface{} { return t.value }

func (t *Unsigned16) SetValue(v any) DataType {
	switch n := v.(type) {
	case uint16:
		t.value = n
	case int:
		t.value = uint16(n)
	case uint64:
		t.value = uint16(n)
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *Unsigned16) Length() uint16 {
	if t.length > 0 {
		return t.length
	}
	return t.DefaultLength()
}

func (*Unsigned16) DefaultLength() uint16 { return 2 }

func (t *Unsigned16) Clone() DataType {
	return &Unsigned16{value: t.value, length: t.length, reducedLength: t.reducedLength}
}

func (t *Unsigned16) SetLength(length uint16) DataType {
	if length > 0 && length < t.DefaultLength() {
		t.length = length
		t.reducedLength = true
	} else {
		t.length = t.DefaultLength()
		t.reducedLength = false
	}
	return t
}

func (t *Unsigned16) IsReducedLength() bool { return t.reducedLength }

func (t *Unsigned16) Decode(r io.Reader) (int, error) {
	b := make([]byte, t.Length())
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	full := widenBigEndian(b, int(t.DefaultLength()))
	t.value = binary.BigEndian.Uint16(full)
	return n, nil
}

func (t *Unsigned16) Encode(w io.Writer) (int, error) {
	full := make([]byte, t.DefaultLength())
	binary.BigEndian.PutUint16(full, t.value)
	return w.Write(narrowBigEndian(full, int(t.Length())))
}

var _ DataTypeConstructor = NewUnsigned16
var _ DataType = &Unsigned16{}
