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
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// specfileDocument is the YAML shape UseSpecfile expects: a top-level
// "elements" key holding a list of information elements, one entry per
// enterprise-specific (or
// overridden standard) field.
type specfileDocument struct {
	Elements []InformationElement `yaml:"elements"`
}

// UseSpecfile loads enterprise-specific Information Element definitions
// from a YAML or CSV file and registers them, dispatching on the file
// extension, the common pattern for format-agnostic config loaders.
// CSV files are expected in "name,pen,num,type,length" column order with a
// header row.
func UseSpecfile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading specfile %s: %w", path, err)
	}

	var elements []InformationElement
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		elements, err = decodeYAMLSpecfile(b)
	case ".csv":
		elements, err = decodeCSVSpecfile(b)
	default:
		return InvalidSpec(path, "unsupported specfile extension "+ext)
	}
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	for _, ie := range elements {
		register(ie)
	}
	return nil
}

func decodeYAMLSpecfile(b []byte) ([]InformationElement, error) {
	var doc specfileDocument
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml specfile: %w", err)
	}
	for _, ie := range doc.Elements {
		if _, ok := LookupConstructor(ie.Type); !ok {
			return nil, InvalidSpec(ie.Name, "unknown data type "+ie.Type)
		}
	}
	return doc.Elements, nil
}

func decodeCSVSpecfile(b []byte) ([]InformationElement, error) {
	r := csv.NewReader(strings.NewReader(string(b)))
	r.FieldsPerRecord = 5
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv specfile: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	// first row is a header; skip it.
	records = records[1:]

	elements := make([]InformationElement, 0, len(records))
	for i, row := range records {
		pen, err := strconv.ParseUint(row[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("csv specfile row %d: invalid pen: %w", i+2, err)
		}
		num, err := strconv.ParseUint(row[2], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("csv specfile row %d: invalid num: %w", i+2, err)
		}
		length, err := strconv.ParseUint(row[4], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("csv specfile row %d: invalid length: %w", i+2, err)
		}
		ie := InformationElement{
			Name:   row[0],
			PEN:    uint32(pen),
			Num:    uint16(num),
			Type:   row[3],
			Length: uint16(length),
		}
		if _, ok := LookupConstructor(ie.Type); !ok {
			return nil, InvalidSpec(ie.Name, "unknown data type "+ie.Type)
		}
		elements = append(elements, ie)
	}
	return elements, nil
}
