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
	"encoding/hex"
	"fmt"
	"io"
)

// OctetArray is the catch-all ADT for opaque byte sequences, also used for
// synthesized placeholder Information Elements of unknown type.
type OctetArray struct {
	value  []byte
	length uint16
}

func NewOctetArray() DataType { return &OctetArray{} }

func (t *OctetArray) String() string { return "0x" + hex.EncodeToString(t.value) }

func (*OctetArray) Type() string { return "octetArray" }

func (t *OctetArray) Value() interface{} { return t.value }

func (t *OctetArray) SetValue(v any) DataType {
	b, ok := v.([]byte)
	if !ok {
		panic(fmt.Errorf("%T cannot be asserted to []byte in %T", v, t))
	}
	t.value = b
	t.length = uint16(len(b))
	return t
}

// Length returns the currently configured length, not len(value), so that a
// length fixed via SetLength before Decode still takes effect.
func (t *OctetArray) Length() uint16 { return t.length }

func (*OctetArray) DefaultLength() uint16 { return VariableLength }

func (t *OctetArray) Clone() DataType {
	v := make([]byte, len(t.value))
	copy(v, t.value)
	return &OctetArray{value: v, length: t.length}
}

func (t *OctetArray) SetLength(length uint16) DataType {
	t.length = length
	return t
}

// IsReducedLength is always false: reduced-length encoding has no meaning
// for an array of octets, it just changes the array's size.
func (*OctetArray) IsReducedLength() bool { return false }

func (t *OctetArray) Decode(r io.Reader) (int, error) {
	b := make([]byte, t.length)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	t.value = b
	return n, nil
}

func (t *OctetArray) Encode(w io.Writer) (int, error) {
	return w.Write(t.value)
}

var _ DataTypeConstructor = NewOctetArray
var _ DataType = &OctetArray{}
