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

type Signed32 struct {
	value int32
}

func NewSigned32() DataType { return &Signed32{} }

func (t *Signed32) String() string { return fmt.Sprintf("%d", t.value) }

func (*Signed32) Type() string { return "signed32" }

func (t *Signed32) Value() interface{} { return t.value }

func (t *Signed32) SetValue(v any) DataType {
	switch n := v.(type) {
	case int32:
		t.value = n
	case int:
		t.value = int32(n)
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *Signed32) Length() uint16 { return t.DefaultLength() }

func (*Signed32) DefaultLength() uint16 { return 4 }

func (t *Signed32) Clone() DataType { return &Signed32{value: t.value} }

func (t *Signed32) SetLength(length uint16) DataType { return t }

func (*Signed32) IsReducedLength() bool { return false }

func (t *Signed32) Decode(r io.Reader) (int, error) {
	b := make([]byte, 4)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	t.value = int32(binary.BigEndian.Uint32(b))
	return n, nil
}

func (t *Signed32) Encode(w io.Writer) (int, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(t.value))
	return w.Write(b)
}

var _ DataTypeConstructor = NewSigned32
var _ DataType = &Signed32{}
