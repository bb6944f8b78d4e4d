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
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// packEntry describes one contiguous run of the projection a
// TemplatePackingPlan was built for: either a group of abutting
// fixed-length fields sharing a single slice, or a single variable-length
// field decoded on its own.
type packEntry struct {
	ies       InformationElementList
	offset    int
	length    int // total fixed length of the run; 0 for a varlen singleton
	variable  bool
}

// TemplatePackingPlan is a compiled, cached description of how a given
// ordered projection of Information Elements lays out on the wire for one
// Template: contiguous fixed-length fields are grouped into single runs so
// encoding/decoding a record can slice once per run instead of once per
// field.
type TemplatePackingPlan struct {
	entries    []packEntry
	fixedLen   int // sum of fixed-length octets across all entries; 0 if any run is variable
	allFixed   bool
}

// packingPlanCache memoizes plans by projection identity, keyed by an
// xxhash digest of the projection's (pen,num,length) sequence so the cache
// stores and compares a fixed-size key instead of a long key string.
var (
	packingPlanCacheMu sync.RWMutex
	packingPlanCache   = map[uint64]*TemplatePackingPlan{}
)

// projectionDigest hashes an InformationElementList's stable string key
// with xxhash so the packing-plan cache never has to compare or store the
// full key string.
func projectionDigest(ies InformationElementList) uint64 {
	return xxhash.Sum64String(ies.key())
}

// PackPlanForIEList returns the cached TemplatePackingPlan for ies,
// computing and caching it on first use.
func PackPlanForIEList(ies InformationElementList) *TemplatePackingPlan {
	digest := projectionDigest(ies)

	packingPlanCacheMu.RLock()
	plan, ok := packingPlanCache[digest]
	packingPlanCacheMu.RUnlock()
	if ok {
		return plan
	}

	plan = computePackingPlan(ies)

	packingPlanCacheMu.Lock()
	packingPlanCache[digest] = plan
	packingPlanCacheMu.Unlock()

	return plan
}

// computePackingPlan walks ies in order, merging adjacent fixed-length
// fields into a single run and giving every variable-length field its own
// singleton entry so a contiguous run can be read or written in one shot.
func computePackingPlan(ies InformationElementList) *TemplatePackingPlan {
	plan := &TemplatePackingPlan{allFixed: true}

	offset := 0
	var run InformationElementList
	runLen := 0

	flushRun := func() {
		if len(run) == 0 {
			return
		}
		plan.entries = append(plan.entries, packEntry{
			ies:    run,
			offset: offset,
			length: runLen,
		})
		offset += runLen
		run = nil
		runLen = 0
	}

	for _, ie := range ies {
		if ie.isVariableLength() {
			flushRun()
			plan.entries = append(plan.entries, packEntry{
				ies:      InformationElementList{ie},
				offset:   offset,
				variable: true,
			})
			plan.allFixed = false
			continue
		}
		run = append(run, ie)
		runLen += int(ie.Length)
	}
	flushRun()

	if plan.allFixed {
		plan.fixedLen = offset
	}
	return plan
}

// String renders the plan for debugging/logging, listing each run's field
// names and wire shape.
func (p *TemplatePackingPlan) String() string {
	out := "packplan["
	for i, e := range p.entries {
		if i > 0 {
			out += " "
		}
		if e.variable {
			out += e.ies[0].Name + "(var)"
		} else {
			out += strconv.Itoa(len(e.ies)) + "fields@" + strconv.Itoa(e.length) + "B"
		}
	}
	return out + "]"
}
