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

import "testing"

func TestPackPlanGroupsContiguousFixedFields(t *testing.T) {
	ies := InformationElementList{
		{Name: "a", Num: 1, Type: "unsigned32", Length: 4},
		{Name: "b", Num: 2, Type: "unsigned32", Length: 4},
		{Name: "c", Num: 3, Type: "string", Length: VariableLength},
		{Name: "d", Num: 4, Type: "unsigned16", Length: 2},
	}

	plan := computePackingPlan(ies)
	if len(plan.entries) != 3 {
		t.Fatalf("expected 3 packing entries, got %d: %s", len(plan.entries), plan)
	}
	if plan.entries[0].length != 8 || len(plan.entries[0].ies) != 2 {
		t.Fatalf("expected first entry to merge the two unsigned32 fields, got %+v", plan.entries[0])
	}
	if !plan.entries[1].variable {
		t.Fatalf("expected second entry to be the variable-length field")
	}
	if plan.entries[2].length != 2 {
		t.Fatalf("expected third entry to be the trailing unsigned16, got %+v", plan.entries[2])
	}
	if plan.allFixed {
		t.Fatal("expected allFixed to be false when a variable-length field is present")
	}
}

func TestPackPlanAllFixed(t *testing.T) {
	ies := InformationElementList{
		{Name: "a", Num: 1, Type: "unsigned32", Length: 4},
		{Name: "b", Num: 2, Type: "unsigned16", Length: 2},
	}
	plan := computePackingPlan(ies)
	if !plan.allFixed {
		t.Fatal("expected allFixed to be true")
	}
	if plan.fixedLen != 6 {
		t.Fatalf("expected fixedLen 6, got %d", plan.fixedLen)
	}
}

func TestPackPlanForIEListCaches(t *testing.T) {
	ies := InformationElementList{
		{Name: "a", Num: 1, Type: "unsigned32", Length: 4},
	}
	first := PackPlanForIEList(ies)
	second := PackPlanForIEList(ies)
	if first != second {
		t.Fatal("expected the same projection to return the cached plan instance")
	}
}
