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
	"time"
)

type DateTimeMilliseconds struct {
	value time.Time
}

func NewDateTimeMilliseconds() DataType { return &DateTimeMilliseconds{} }

func (t *DateTimeMilliseconds) String() string { return t.value.Format(time.RFC3339Nano) }

func (*DateTimeMilliseconds) Type() string { return "dateTimeMilliseconds" }

func (t *DateTimeMilliseconds) Value() interface{} { return t.value }

func (t *DateTimeMilliseconds) SetValue(v any) DataType {
	ts, ok := v.(time.Time)
	if !ok {
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	t.value = ts
	return t
}

func (t *DateTimeMilliseconds) Length() uint16 { return t.DefaultLength() }

func (*DateTimeMilliseconds) DefaultLength() uint16 { return 8 }

func (t *DateTimeMilliseconds) Clone() DataType { return &DateTimeMilliseconds{value: t.value} }

func (t *DateTimeMilliseconds) SetLength(length uint16) DataType { return t }

func (*DateTimeMilliseconds) IsReducedLength() bool { return false }

func (t *DateTimeMilliseconds) Decode(r io.Reader) (int, error) {
	b := make([]byte, 8)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	ms := int64(binary.BigEndian.Uint64(b))
	t.value = time.UnixMilli(ms).UTC()
	return n, nil
}

func (t *DateTimeMilliseconds) Encode(w io.Writer) (int, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(t.value.UnixMilli()))
	return w.Write(b)
}

var _ DataTypeConstructor = NewDateTimeMilliseconds
var _ DataType = &DateTimeMilliseconds{}
