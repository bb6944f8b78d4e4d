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
	"fmt"
	"io"
	"net"
)

type IPv4Address struct {
	value net.IP
}

func NewIPv4Address() DataType { return &IPv4Address{} }

func (t *IPv4Address) String() string { return t.value.To4().String() }

func (*IPv4Address) Type() string { return "ipv4Address" }

func (t *IPv4Address) Value() interface{} { return t.value }

func (t *IPv4Address) SetValue(v any) DataType {
	switch b := v.(type) {
	case net.IP:
		t.value = b
	case string:
		ip := net.ParseIP(b)
		if ip == nil {
			panic(fmt.Errorf("%q is not a valid IP address", b))
		}
		t.value = ip
	default:
		panic(fmt.Errorf("%T cannot be asserted to %T", v, t.value))
	}
	return t
}

func (t *IPv4Address) Length() uint16 { return t.DefaultLength() }

func (*IPv4Address) DefaultLength() uint16 { return 4 }

func (t *IPv4Address) Clone() DataType { return &IPv4Address{value: t.value} }

func (t *IPv4Address) SetLength(length uint16) DataType { return t }

func (*IPv4Address) IsReducedLength() bool { return false }

func (t *IPv4Address) Decode(r io.Reader) (int, error) {
	b := make([]byte, 4)
	n, err := readFull(r, b)
	if err != nil {
		return n, err
	}
	t.value = net.IP(b)
	return n, nil
}

func (t *IPv4Address) Encode(w io.Writer) (int, error) {
	return w.Write(t.value.To4())
}

var _ DataTypeConstructor = NewIPv4Address
var _ DataType = &IPv4Address{}
