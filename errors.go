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
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds in the codec's error handling design.
// Callers should use errors.Is against these, not string matching.
var (
	ErrMalformedMessage = errors.New("malformed ipfix message")
	ErrBufferTooSmall   = errors.New("buffer too small")
	ErrEndOfMessage     = errors.New("end of message")
	ErrInvalidSpec      = errors.New("invalid information element spec")
	ErrMissingField     = errors.New("missing field")
	ErrTemplateNotFound = errors.New("template not found")
	ErrWrongState       = errors.New("operation not valid in current state")
)

// MalformedMessage wraps ErrMalformedMessage with context about what made
// the message unparseable.
func MalformedMessage(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedMessage, reason)
}

// EndOfMessage reports that appending n further octets to a buffer already
// holding used octets would exceed mtu. The caller should finalize the
// current message and retry in a new one.
func EndOfMessage(mtu int, used int, n int) error {
	return fmt.Errorf("%w: %d further octets would exceed mtu %d (currently %d used)", ErrEndOfMessage, n, mtu, used)
}

// InvalidSpec wraps ErrInvalidSpec with the offending IESpec string.
func InvalidSpec(spec string, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidSpec, spec, reason)
}

// MissingField wraps ErrMissingField with the IE name that a record lacked.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// TemplateNotFound wraps ErrTemplateNotFound with the (odid, tid) pair that
// failed to resolve.
func TemplateNotFound(odid uint32, tid uint16) error {
	return fmt.Errorf("%w: template %d in observation domain %d", ErrTemplateNotFound, tid, odid)
}

// WrongState wraps ErrWrongState with the attempted operation and the state
// the MessageBuffer was actually in.
func WrongState(op string, state bufferState) error {
	return fmt.Errorf("%w: %s while buffer is %s", ErrWrongState, op, state)
}
