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

type DateTimeSeconds struct {
	value time.Time
}

func NewDateTimeSeconds() DataType { return &DateTimeSeconds{} }

func (t *DateTimeSeconds) String() string { return t.value.Format(time.RFC3339) }

func (*DateTimeSeconds) Type() string { return "dateTimeSeconds" }

func (t *DateTimeSeconds) Value() interface{} { return t.value }

func (t *DateTimeSeconds) SetValue(v any) DataType {
	ts, ok := v.(time.Time)
	if !ok {
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	t.value = ts
	return t
}

func (t *DateTimeSeconds) Length() uint16 { return t.DefaultLength() }

func (*DateTimeSeconds) DefaultLength() uint16 { return 4 }

func (t *DateTimeSeconds) Clone() DataType { return &DateTimeSeconds{value: t.value} }

func (t *DateTimeSeconds) SetLength(length uint16) DataType { return t }

func (*DateTimeSeconds) IsReducedLength() bool { return false }

func (t *DateTimeSeconds) Decode(r io.Reader) (int, error) {
	b := make([]byte, 4)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	t.value = time.Unix(int64(binary.BigEndian.Uint32(b)), 0).UTC()
	return n, nil
}

func (t *DateTimeSeconds) Encode(w io.Writer) (int, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(t.value.Unix()))
	return w.Write(b)
}

var _ DataTypeConstructor = NewDateTimeSeconds
var _ DataType = &DateTimeSeconds{}
