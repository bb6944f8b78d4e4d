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
	"strconv"
	"strings"
)

// InformationElement is a named, numbered, typed field that may appear in
// Template-described records. (PEN, Num) uniquely identifies it; once
// registered, an instance is never mutated.
type InformationElement struct {
	Name string `yaml:"name"`
	PEN  uint32 `yaml:"pen"`
	Num  uint16 `yaml:"num"`
	Type string `yaml:"type"`
	// Length is the default wire length in octets, or VariableLength
	// (65535) for variable-length fields.
	Length uint16 `yaml:"length"`
}

func (ie InformationElement) String() string {
	pen := ""
	if ie.PEN != 0 {
		pen = fmt.Sprintf("%d/", ie.PEN)
	}
	return fmt.Sprintf("%s(%s%d)<%s>[%d]", ie.Name, pen, ie.Num, ie.Type, ie.Length)
}

// constructor resolves the ADT constructor for this IE's Type, panicking if
// the type name is unknown; this should only be reachable for IEs already
// validated by the registry.
func (ie InformationElement) constructor() DataTypeConstructor {
	c, ok := LookupConstructor(ie.Type)
	if !ok {
		panic(fmt.Errorf("information element %s has unknown data type %q", ie.Name, ie.Type))
	}
	return c
}

// isVariableLength reports whether this IE is encoded with a varlen prefix.
func (ie InformationElement) isVariableLength() bool {
	return ie.Length == VariableLength
}

// key returns the (PEN, Num) identity used for registry lookups.
func (ie InformationElement) key() ieKey {
	return ieKey{pen: ie.PEN, num: ie.Num}
}

type ieKey struct {
	pen uint32
	num uint16
}

func (k ieKey) String() string {
	return strconv.FormatUint(uint64(k.pen), 10) + "/" + strconv.FormatUint(uint64(k.num), 10)
}

// InformationElementList is an ordered, hashable sequence of
// InformationElements, used both as a caller-supplied projection for
// tuple-shaped access and as the key for cached packing plans.
type InformationElementList []InformationElement

// key returns a stable string identity for the list, suitable for use as a
// map key when caching packing plans, since two lists with the same
// (PEN, Num, Length) sequence describe the same wire layout.
func (l InformationElementList) key() string {
	var sb strings.Builder
	for i, ie := range l {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(ie.PEN), 10))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(ie.Num), 10))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(ie.Length), 10))
	}
	return sb.String()
}

// Names returns the list's IE names in order.
func (l InformationElementList) Names() []string {
	names := make([]string, len(l))
	for i, ie := range l {
		names[i] = ie.Name
	}
	return names
}
