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
)

// VariableLength is the sentinel IE length denoting a variable-length field.
const VariableLength uint16 = 0xFFFF

// DataType is the common interface all IPFIX abstract data types (ADTs)
// implement. The caller supplies length information through SetLength
// before Decode or Encode, to accommodate reduced-length encoding (RFC 7011
// §6.2).
type DataType interface {
	fmt.Stringer

	// Type returns the ADT name as used in IESpecs and template decoding.
	Type() string

	// Length returns the octet length this instance will encode/decode as,
	// which may differ from DefaultLength for reduced-length fields.
	Length() uint16

	// DefaultLength returns the ADT's natural wire width.
	DefaultLength() uint16

	// Decode reads exactly Length() octets from r and sets the value.
	Decode(r io.Reader) (int, error)

	// Encode writes exactly Length() octets to w.
	Encode(w io.Writer) (int, error)

	// Value returns the decoded Go value.
	Value() interface{}

	// SetValue assigns v, converting from common Go numeric/string/byte
	// representations. Panics if v cannot be converted.
	SetValue(v any) DataType

	// SetLength fixes the length to be used for the next Decode/Encode,
	// enabling reduced-length encoding for integer and float ADTs.
	SetLength(length uint16) DataType

	// IsReducedLength reports whether this instance was given (via
	// SetLength) a length smaller than DefaultLength.
	IsReducedLength() bool

	// Clone returns an independent copy carrying the same value and length.
	Clone() DataType
}

// DataTypeConstructor builds a fresh, zero-valued DataType instance.
type DataTypeConstructor func() DataType

var constructors = map[string]DataTypeConstructor{
	"octetArray":           NewOctetArray,
	"unsigned8":            NewUnsigned8,
	"unsigned16":           NewUnsigned16,
	"unsigned32":           NewUnsigned32,
	"unsigned64":           NewUnsigned64,
	"signed8":              NewSigned8,
	"signed16":             NewSigned16,
	"signed32":             NewSigned32,
	"signed64":             NewSigned64,
	"float32":              NewFloat32,
	"float64":              NewFloat64,
	"boolean":              NewBoolean,
	"macAddress":           NewMacAddress,
	"string":               NewString,
	"dateTimeSeconds":      NewDateTimeSeconds,
	"dateTimeMilliseconds": NewDateTimeMilliseconds,
	"dateTimeMicroseconds": NewDateTimeMicroseconds,
	"dateTimeNanoseconds":  NewDateTimeNanoseconds,
	"ipv4Address":          NewIPv4Address,
	"ipv6Address":          NewIPv6Address,
}

// LookupConstructor resolves an ADT name to its constructor. The second
// return value is false if name is not a known ADT.
func LookupConstructor(name string) (DataTypeConstructor, bool) {
	c, ok := constructors[name]
	return c, ok
}

// SupportedTypes returns the names of all known ADTs.
func SupportedTypes() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	return names
}

// adtNumbers maps the IANA-assigned dataType numbers (RFC 7011 §3.1, RFC
// 6313) relevant to this codec's ADT set to their constructors.
var adtNumbers = map[uint8]DataTypeConstructor{
	0:  NewOctetArray,
	1:  NewUnsigned8,
	2:  NewUnsigned16,
	3:  NewUnsigned32,
	4:  NewUnsigned64,
	5:  NewSigned8,
	6:  NewSigned16,
	7:  NewSigned32,
	8:  NewSigned64,
	9:  NewFloat32,
	10: NewFloat64,
	11: NewBoolean,
	12: NewMacAddress,
	13: NewString,
	14: NewDateTimeSeconds,
	15: NewDateTimeMilliseconds,
	16: NewDateTimeMicroseconds,
	17: NewDateTimeNanoseconds,
	18: NewIPv4Address,
	19: NewIPv6Address,
}

// DataTypeFromNumber resolves an IANA dataType number to its constructor.
func DataTypeFromNumber(id uint8) (DataTypeConstructor, bool) {
	c, ok := adtNumbers[id]
	return c, ok
}

// readFull reads exactly len(b) bytes from r, translating a short read into
// a malformed-message error instead of io.ErrUnexpectedEOF, since callers
// are decoding from a bounded message buffer, not a stream.
func readFull(r io.Reader, b []byte) (int, error) {
	n, err := io.ReadFull(r, b)
	if err != nil {
		return n, MalformedMessage(fmt.Sprintf("short read: wanted %d octets, got %d: %v", len(b), n, err))
	}
	return n, nil
}

// widenBigEndian left-pads src with zero octets up to width, preserving its
// big-endian value. Used to restore a reduced-length-encoded integer to its
// natural width before decoding it.
func widenBigEndian(src []byte, width int) []byte {
	if len(src) == width {
		return src
	}
	out := make([]byte, width)
	copy(out[width-len(src):], src)
	return out
}

// narrowBigEndian keeps the trailing `length` octets of a natural-width
// big-endian encoding, i.e. truncates leading zero octets for reduced-length
// encoding on the wire.
func narrowBigEndian(src []byte, length int) []byte {
	if len(src) == length {
		return src
	}
	return src[len(src)-length:]
}
