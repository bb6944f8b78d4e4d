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
	"regexp"
	"strconv"
)

// parsedSpec is the result of parsing an IESpec string. Any field may be
// nil/absent; Registry.ForSpec decides whether the combination present
// describes a lookup or a new registration.
type parsedSpec struct {
	name *string
	pen  *uint32
	num  *uint16
	typ  *string
	size *uint16
}

// ieSpecPattern implements the IESpec mini-grammar used by textual field specs:
//
//	spec := name? ( '(' (pen '/')? num ')' )? ( '<' typename '>' )? ( '[' size ']' )?
var ieSpecPattern = regexp.MustCompile(
	`^(?P<name>[A-Za-z_][A-Za-z0-9_]*)?` +
		`(?:\((?:(?P<pen>[0-9]+)/)?(?P<num>[0-9]+)\))?` +
		`(?:<(?P<type>[A-Za-z][A-Za-z0-9_]*)>)?` +
		`(?:\[(?P<size>[0-9]+)\])?$`,
)

// parseIESpec parses an IESpec string into its present components. It
// returns InvalidSpec if the string does not match the grammar, or matches
// but carries no information at all (an empty spec).
func parseIESpec(spec string) (parsedSpec, error) {
	m := ieSpecPattern.FindStringSubmatch(spec)
	if m == nil {
		return parsedSpec{}, InvalidSpec(spec, "does not match IESpec grammar")
	}

	groups := map[string]string{}
	for i, name := range ieSpecPattern.SubexpNames() {
		if name != "" && m[i] != "" {
			groups[name] = m[i]
		}
	}

	var ps parsedSpec
	if v, ok := groups["name"]; ok {
		ps.name = &v
	}
	if v, ok := groups["pen"]; ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return parsedSpec{}, InvalidSpec(spec, "pen is not a valid uint32")
		}
		pen := uint32(n)
		ps.pen = &pen
	}
	if v, ok := groups["num"]; ok {
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return parsedSpec{}, InvalidSpec(spec, "num is not a valid uint16")
		}
		num := uint16(n)
		ps.num = &num
	}
	if v, ok := groups["type"]; ok {
		ps.typ = &v
	}
	if v, ok := groups["size"]; ok {
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return parsedSpec{}, InvalidSpec(spec, "size is not a valid uint16")
		}
		size := uint16(n)
		ps.size = &size
	}

	if ps.name == nil && ps.num == nil && ps.typ == nil && ps.size == nil {
		return parsedSpec{}, InvalidSpec(spec, "empty spec")
	}

	return ps, nil
}

// isLookup reports whether the parsed spec only identifies an existing IE
// (by name, or by (pen/)num) rather than describing a new one.
func (ps parsedSpec) isLookup() bool {
	return ps.typ == nil && ps.size == nil && (ps.name != nil || ps.num != nil)
}
