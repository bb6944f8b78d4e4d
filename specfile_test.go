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
	"os"
	"path/filepath"
	"testing"
)

func TestUseSpecfileYAML(t *testing.T) {
	ClearInfoModel()
	defer ClearInfoModel()

	dir := t.TempDir()
	path := filepath.Join(dir, "enterprise.yaml")
	doc := `
elements:
  - name: myNewInformationElement
    pen: 35566
    num: 1
    type: string
    length: 65535
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := UseSpecfile(path); err != nil {
		t.Fatal(err)
	}

	ie, err := ForSpec("myNewInformationElement")
	if err != nil {
		t.Fatal(err)
	}
	if ie.PEN != 35566 || ie.Num != 1 || ie.Type != "string" {
		t.Fatalf("unexpected ie loaded from yaml specfile: %+v", ie)
	}
}

func TestUseSpecfileCSV(t *testing.T) {
	ClearInfoModel()
	defer ClearInfoModel()

	dir := t.TempDir()
	path := filepath.Join(dir, "enterprise.csv")
	doc := "name,pen,num,type,length\nmyCounter,35566,2,unsigned64,8\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := UseSpecfile(path); err != nil {
		t.Fatal(err)
	}

	ie, err := ForSpec("myCounter")
	if err != nil {
		t.Fatal(err)
	}
	if ie.PEN != 35566 || ie.Num != 2 || ie.Type != "unsigned64" || ie.Length != 8 {
		t.Fatalf("unexpected ie loaded from csv specfile: %+v", ie)
	}
}

func TestUseSpecfileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enterprise.txt")
	if err := os.WriteFile(path, []byte("irrelevant"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := UseSpecfile(path); err == nil {
		t.Fatal("expected an error for an unsupported specfile extension")
	}
}
