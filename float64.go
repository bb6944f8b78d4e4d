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

// Float64 supports the one reduced-length case RFC 7011 carves out for
// floats: a 4-octet encoding that emits/reads the value as float32.
type Float64 struct {
	value         float64
	asFloat32     bool
}

func NewFloat64() DataType { return &Float64{} }

func (t *Float64) String() string { return fmt.Sprintf("%v", t.value) }

func (*Float64) Type() string { return "float64" }

func (t *Float64) Value() interface{} { return t.value }

func (t *Float64) SetValue(v any) DataType {
	switch n := v.(type) {
	case float64:
		t.value = n
	case float32:
		t.value = float64(n)
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *Float64) Length() uint16 {
	if t.asFloat32 {
		return 4
	}
	return t.DefaultLength()
}

func (*Float64) DefaultLength() uint16 { return 8 }

func (t *Float64) Clone() DataType { return &Float64{value: t.value, asFloat32: t.asFloat32} }

func (t *Float64) SetLength(length uint16) DataType {
	t.asFloat32 = length == 4
	return t
}

func (t *Float64) IsReducedLength() bool { return t.asFloat32 }

func (t *Float64) Decode(r io.Reader) (int, error) {
	if t.asFloat32 {
		b := make([]byte, 4)
		n, err := readFull(r, b)
		if err != nil {
			return n, err
		}
		t.value = float64(math.Float32frombits(binary.BigEndian.Uint32(b)))
		return n, nil
	}
	b := make([]byte, 8)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	t.value = math.Float64frombits(binary.BigEndian.Uint64(b))
	return n, nil
}

func (t *Float64) Encode(w io.Writer) (int, error) {
	if t.asFloat32 {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, math.Float32bits(float32(t.value)))
		return w.Write(b)
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(t.value))
	return w.Write(b)
}

var _ DataTypeConstructor = NewFloat64
var _ DataType = &Float64{}
