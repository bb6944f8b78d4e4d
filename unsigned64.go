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

type Unsigned64 struct {
	value         uint64
	length        uint16
	reducedLength bool
}

func NewUnsigned64() DataType { return &Unsigned64{} }

func (t *Unsigned64) String() string { return fmt.Sprintf("%d", t.value) }

func (*Unsigned64) Type() string { return "unsigned64" }

func (t *Unsigned64) Value() interface{} { return t.value }

func (t *Unsigned64) SetValue(v any) DataType {
	switch n := v.(type) {
	case uint64:
		t.value = n
	case int:
		t.value = uint64(n)
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *Unsigned64) Length() uint16 {
	if t.length > 0 {
		return t.length
	}
	return t.DefaultLength()
}

func (*Unsigned64) DefaultLength() uint16 { return 8 }

func (t *Unsigned64) Clone() DataType {
	return &Unsigned64{value: t.value, length: t.length, reducedLength: t.reducedLength}
}

func (t *Unsigned64) SetLength(length uint16) DataType {
	if length > 0 && length < t.DefaultLength() {
		t.length = length
		t.reducedLength = true
	} else {
		t.length = t.DefaultLength()
		t.reducedLength = false
	}
	return t
}

func (t *Unsigned64) IsReducedLength() bool { return t.reducedLength }

func (t *Unsigned64) Decode(r io.Reader) (int, error) {
	b := make([]byte, t.Length())
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	full := widenBigEndian(b, int(t.DefaultLength()))
	t.value = binary.BigEndian.Uint64(full)
	return n, nil
}

func (t *Unsigned64) Encode(w io.Writer) (int, error) {
	full := make([]byte, t.DefaultLength())
	binary.BigEndian.PutUint64(full, t.value)
	return w.Write(narrowBigEndian(full, int(t.Length())))
}

var _ DataTypeConstructor = NewUnsigned64
var _ DataType = &Unsigned64{}
