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
	"sync"
)

// registry is the process-wide Information Element model that ForSpec,
// SpecList and ForTemplateEntry resolve against. Entries are added
// explicitly (ForSpec, UseSpecfile) or in bulk (UseIANADefault,
// Use5103Default); ForTemplateEntry synthesizes an unregistered octetArray
// IE for a (pen, num) it does not find. Guarded by mu since templates may be
// decoded concurrently from multiple connections sharing one process.
var (
	mu       sync.RWMutex
	byKey    = map[ieKey]InformationElement{}
	byName   = map[string]ieKey{}
	bootOnce sync.Once
)

// register inserts or replaces an IE under both of its lookup keys. Callers
// must hold mu for writing.
func register(ie InformationElement) {
	byKey[ie.key()] = ie
	byName[ie.Name] = ie.key()
}

// ForSpec resolves an IESpec string (see iespec.go for the grammar) against the
// registry. A spec that only names or numbers an IE ("packetDeltaCount",
// "(35566/1)") is a lookup against already-registered IEs. A spec that also
// carries a type ("myNewIE(35566/1)<string>") registers a new IE -- and, if
// an entry already exists under that key, replaces it, matching how a
// collector's template dictionary lets later specfiles override earlier
// ones.
func ForSpec(spec string) (InformationElement, error) {
	ps, err := parseIESpec(spec)
	if err != nil {
		return InformationElement{}, err
	}

	if ps.isLookup() {
		mu.RLock()
		defer mu.RUnlock()

		if ps.num != nil {
			pen := uint32(0)
			if ps.pen != nil {
				pen = *ps.pen
			}
			ie, ok := byKey[ieKey{pen: pen, num: *ps.num}]
			if !ok {
				return InformationElement{}, InvalidSpec(spec, "no registered information element matches this spec")
			}
			return ie, nil
		}
		key, ok := byName[*ps.name]
		if !ok {
			return InformationElement{}, InvalidSpec(spec, "no registered information element matches this spec")
		}
		return byKey[key], nil
	}

	if ps.name == nil || ps.num == nil || ps.typ == nil {
		return InformationElement{}, InvalidSpec(spec, "new information elements require name, number and type")
	}
	if _, ok := LookupConstructor(*ps.typ); !ok {
		return InformationElement{}, InvalidSpec(spec, "unknown data type "+*ps.typ)
	}

	pen := uint32(0)
	if ps.pen != nil {
		pen = *ps.pen
	}

	c, _ := LookupConstructor(*ps.typ)
	length := c().DefaultLength()
	if ps.size != nil {
		length = *ps.size
	}

	ie := InformationElement{
		Name:   *ps.name,
		PEN:    pen,
		Num:    *ps.num,
		Type:   *ps.typ,
		Length: length,
	}

	mu.Lock()
	defer mu.Unlock()
	register(ie)
	return ie, nil
}

// ForTemplateEntry resolves the IE a Template Record's IE-dict names by
// (pen, num), honoring whatever reduced length the template entry itself
// carries. Enterprise-specific IEs the registry doesn't know about decode
// as opaque octetArray data rather than failing the whole template, the
// same graceful-degradation collectors need for vendor-specific fields
// they haven't been taught about yet.
func ForTemplateEntry(pen uint32, num uint16, length uint16) (InformationElement, error) {
	mu.RLock()
	ie, ok := byKey[ieKey{pen: pen, num: num}]
	mu.RUnlock()
	if !ok {
		return InformationElement{
			Name:   ieKey{pen: pen, num: num}.String(),
			PEN:    pen,
			Num:    num,
			Type:   "octetArray",
			Length: length,
		}, nil
	}
	out := ie
	out.Length = length
	return out, nil
}

// UseIANADefault loads the built-in subset of the IANA IPFIX Information
// Element registry. The full registry's reference data ships separately
// and is meant to be loaded via UseSpecfile. Safe to call more than once;
// later calls are no-ops until ClearInfoModel empties the registry, after
// which the next call loads the subset again.
func UseIANADefault() {
	bootOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		for _, ie := range builtinIANAElements {
			register(ie)
		}
	})
}

// Use5103Default registers the RFC 5103 biflow "reverse" counterpart (under
// ReversePEN) for every currently-registered standard (PEN 0) IE.
func Use5103Default() {
	mu.Lock()
	defer mu.Unlock()
	existing := make([]InformationElement, 0, len(byKey))
	for _, ie := range byKey {
		if ie.PEN == 0 {
			existing = append(existing, ie)
		}
	}
	for _, ie := range existing {
		register(reverseIE(ie))
	}
}

// ClearInfoModel empties the registry. Mostly useful for tests that need a
// clean slate instead of the process-wide default model.
func ClearInfoModel() {
	mu.Lock()
	defer mu.Unlock()
	byKey = map[ieKey]InformationElement{}
	byName = map[string]ieKey{}
	bootOnce = sync.Once{}
}

// SpecList parses a batch of IESpec strings in order, stopping at the first
// error.
func SpecList(specs []string) (InformationElementList, error) {
	out := make(InformationElementList, 0, len(specs))
	for _, spec := range specs {
		ie, err := ForSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, ie)
	}
	return out, nil
}

// builtinIANAElements is a small, hand-picked subset of the IANA IPFIX
// Information Element registry covering commonly used flow fields. It is
// not a substitute for the full registry.
var builtinIANAElements = []InformationElement{
	{Name: "octetDeltaCount", PEN: 0, Num: 1, Type: "unsigned64", Length: 8},
	{Name: "packetDeltaCount", PEN: 0, Num: 2, Type: "unsigned64", Length: 8},
	{Name: "protocolIdentifier", PEN: 0, Num: 4, Type: "unsigned8", Length: 1},
	{Name: "ipClassOfService", PEN: 0, Num: 5, Type: "unsigned8", Length: 1},
	{Name: "tcpControlBits", PEN: 0, Num: 6, Type: "unsigned16", Length: 2},
	{Name: "sourceTransportPort", PEN: 0, Num: 7, Type: "unsigned16", Length: 2},
	{Name: "sourceIPv4Address", PEN: 0, Num: 8, Type: "ipv4Address", Length: 4},
	{Name: "sourceIPv4PrefixLength", PEN: 0, Num: 9, Type: "unsigned8", Length: 1},
	{Name: "ingressInterface", PEN: 0, Num: 10, Type: "unsigned32", Length: 4},
	{Name: "destinationTransportPort", PEN: 0, Num: 11, Type: "unsigned16", Length: 2},
	{Name: "destinationIPv4Address", PEN: 0, Num: 12, Type: "ipv4Address", Length: 4},
	{Name: "destinationIPv4PrefixLength", PEN: 0, Num: 13, Type: "unsigned8", Length: 1},
	{Name: "egressInterface", PEN: 0, Num: 14, Type: "unsigned32", Length: 4},
	{Name: "ipNextHopIPv4Address", PEN: 0, Num: 15, Type: "ipv4Address", Length: 4},
	{Name: "bgpSourceAsNumber", PEN: 0, Num: 16, Type: "unsigned32", Length: 4},
	{Name: "bgpDestinationAsNumber", PEN: 0, Num: 17, Type: "unsigned32", Length: 4},
	{Name: "flowEndSysUpTime", PEN: 0, Num: 21, Type: "unsigned32", Length: 4},
	{Name: "flowStartSysUpTime", PEN: 0, Num: 22, Type: "unsigned32", Length: 4},
	{Name: "postOctetDeltaCount", PEN: 0, Num: 23, Type: "unsigned64", Length: 8},
	{Name: "postPacketDeltaCount", PEN: 0, Num: 24, Type: "unsigned64", Length: 8},
	{Name: "sourceIPv6Address", PEN: 0, Num: 27, Type: "ipv6Address", Length: 16},
	{Name: "destinationIPv6Address", PEN: 0, Num: 28, Type: "ipv6Address", Length: 16},
	{Name: "flowLabelIPv6", PEN: 0, Num: 31, Type: "unsigned32", Length: 4},
	{Name: "icmpTypeCodeIPv4", PEN: 0, Num: 32, Type: "unsigned16", Length: 2},
	{Name: "octetTotalCount", PEN: 0, Num: 85, Type: "unsigned64", Length: 8},
	{Name: "packetTotalCount", PEN: 0, Num: 86, Type: "unsigned64", Length: 8},
	{Name: "flowStartSeconds", PEN: 0, Num: 150, Type: "dateTimeSeconds", Length: 4},
	{Name: "flowEndSeconds", PEN: 0, Num: 151, Type: "dateTimeSeconds", Length: 4},
	{Name: "flowStartMilliseconds", PEN: 0, Num: 152, Type: "dateTimeMilliseconds", Length: 8},
	{Name: "flowEndMilliseconds", PEN: 0, Num: 153, Type: "dateTimeMilliseconds", Length: 8},
	{Name: "flowStartMicroseconds", PEN: 0, Num: 154, Type: "dateTimeMicroseconds", Length: 8},
	{Name: "flowEndMicroseconds", PEN: 0, Num: 155, Type: "dateTimeMicroseconds", Length: 8},
	{Name: "flowStartNanoseconds", PEN: 0, Num: 156, Type: "dateTimeNanoseconds", Length: 8},
	{Name: "flowEndNanoseconds", PEN: 0, Num: 157, Type: "dateTimeNanoseconds", Length: 8},
	{Name: "sourceMacAddress", PEN: 0, Num: 56, Type: "macAddress", Length: 6},
	{Name: "destinationMacAddress", PEN: 0, Num: 80, Type: "macAddress", Length: 6},
	{Name: "applicationName", PEN: 0, Num: 96, Type: "string", Length: VariableLength},
	{Name: "samplerName", PEN: 0, Num: 84, Type: "string", Length: VariableLength},
	{Name: "interfaceName", PEN: 0, Num: 82, Type: "string", Length: VariableLength},
	{Name: "interfaceDescription", PEN: 0, Num: 83, Type: "string", Length: VariableLength},
	{Name: "observationDomainName", PEN: 0, Num: 300, Type: "string", Length: VariableLength},
}
