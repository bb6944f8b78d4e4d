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

type Signed64 struct {
	value int64
}

func NewSigned64() DataType { return &Signed64{} }

func (t *Signed64) String() string { return fmt.Sprintf("%d", t.value) }

func (*Signed64) Type() string { return "signed64" }

func (t *Signed64) Value() interface{} { return t.value }

func (t *Signed64) SetValue(v any) DataType {
	switch n := v.(type) {
	case int64:
		t.value = n
	case int:
		t.value = int64(n)
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *Signed64) Length() uint16 { return t.DefaultLength() }

func (*Signed64) DefaultLength() uint16 { return 8 }

func (t *Signed64) Clone() DataType { return &Signed64{value: t.value} }

func (t *Signed64) SetLength(length uint16) DataType { return t }

func (*Signed64) IsReducedLength() bool { return false }

func (t *Signed64) Decode(r io.Reader) (int, error) {
	b := make([]byte, 8)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	t.value = int64(binary.BigEndian.Uint64(b))
	return n, nil
}

func (t *Signed64) Encode(w io.Writer) (int, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(t.value))
	return w.Write(b)
}

var _ DataTypeConstructor = NewSigned64
var _ DataType = &Signed64{}
