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

// Signed16, like the other signed ADTs, is not reduced-length-encodable in
// this codec: only unsigned integers support truncated wire widths.
type Signed16 struct {
	value int16
}

func NewSigned16() DataType { return &Signed16{} }

func (t *Signed16) String() string { return fmt.Sprintf("%d", t.value) }

func (*Signed16) Type() string { return "signed16" }

func (t *Signed16) Value() interface{} { return t.value }

func (t *Signed16) SetValue(v any) DataType {
	switch n := v.(type) {
	case int16:
		t.value = n
	case int:
		t.value = int16(n)
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *Signed16) Length() uint16 { return t.DefaultLength() }

func (*Signed16) DefaultLength() uint16 { return 2 }

func (t *Signed16) Clone() DataType { return &Signed16{value: t.value} }

func (t *Signed16) SetLength(length uint16) DataType { return t }

func (*Signed16) IsReducedLength() bool { return false }

func (t *Signed16) Decode(r io.Reader) (int, error) {
	b := make([]byte, 2)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	t.value = int16(binary.BigEndian.Uint16(b))
	return n, nil
}

func (t *Signed16) Encode(w io.Writer) (int, error) {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(t.value))
	return w.Write(b)
}

var _ DataTypeConstructor = NewSigned16
var _ DataType = &Signed16{}
