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

import "strings"

// reversedName returns name with the RFC 5103 "reverse" prefix, upper-
// casing the original first rune the way RFC 5103 biflow field names
// do ("octetDeltaCount" -> "reverseOctetDeltaCount").
func reversedName(name string) string {
	if name == "" {
		return name
	}
	return "reverse" + strings.ToUpper(name[:1]) + name[1:]
}

// reverseIE derives an IE's RFC 5103 biflow counterpart: same number and
// type, name prefixed with "reverse", registered under the reserved
// reverse-IE enterprise number instead of the original PEN.
func reverseIE(ie InformationElement) InformationElement {
	return InformationElement{
		Name:   reversedName(ie.Name),
		PEN:    ReversePEN,
		Num:    ie.Num,
		Type:   ie.Type,
		Length: ie.Length,
	}
}
