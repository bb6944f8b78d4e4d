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
	"math"
)

type Float32 struct {
	value float32
}

func NewFloat32() DataType { return &Float32{} }

func (t *Float32) String() string { return fmt.Sprintf("%v", t.value) }

func (*Float32) Type() string { return "float32" }

func (t *Float32) Value() interface{} { return t.value }

func (t *Float32) SetValue(v any) DataType {
	switch n := v.(type) {
	case float32:
		t.value = n
	case float64:
		t.value = float32(n)
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *Float32) Length() uint16 { return t.DefaultLength() }

func (*Float32) DefaultLength() uint16 { return 4 }

func (t *Float32) Clone() DataType { return &Float32{value: t.value} }

func (t *Float32) SetLength(length uint16) DataType { return t }

func (*Float32) IsReducedLength() bool { return false }

func (t *Float32) Decode(r io.Reader) (int, error) {
	b := make([]byte, 4)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	t.value = math.Float32frombits(binary.BigEndian.Uint32(b))
	return n, nil
}

func (t *Float32) Encode(w io.Writer) (int, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, math.Float32bits(t.value))
	return w.Write(b)
}

var _ DataTypeConstructor = NewFloat32
var _ DataType = &Float32{}
