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
	"bytes"
	"encoding/binary"
	"io"
)

// Template is a Template Record's in-memory counterpart: an ordered list of
// Information Elements plus, for Options Templates, the leading scope
// count (RFC 7011 §3.4.2.2). Records described by this template are always
// encoded/decoded in ies order.
type Template struct {
	TemplateID uint16
	ScopeCount uint16
	IEs        InformationElementList
}

// IsOptions reports whether this is an Options Template (scope count > 0).
func (t *Template) IsOptions() bool { return t.ScopeCount > 0 }

// FromIEList builds a data Template (scope count 0) from an ordered IE
// projection.
func FromIEList(tid uint16, ies InformationElementList) *Template {
	return &Template{TemplateID: tid, IEs: ies}
}

// FromOptionsIEList builds an Options Template, where the first scopeCount
// entries of ies are the scope fields.
func FromOptionsIEList(tid uint16, scopeCount uint16, ies InformationElementList) *Template {
	return &Template{TemplateID: tid, ScopeCount: scopeCount, IEs: ies}
}

// packPlan returns this template's cached packing plan.
func (t *Template) packPlan() *TemplatePackingPlan {
	return PackPlanForIEList(t.IEs)
}

// EncodeRecord writes one data record's values, supplied in template field
// order, to w. Contiguous runs of fixed-length fields identified by the
// template's packing plan are staged into a single buffer and written in
// one call instead of once per field.
func (t *Template) EncodeRecord(w io.Writer, values []DataType) (int, error) {
	if len(values) != len(t.IEs) {
		return 0, MalformedMessage("record value count does not match template field count")
	}
	plan := t.packPlan()
	total := 0
	idx := 0
	for _, e := range plan.entries {
		if e.variable {
			v := values[idx]
			n, err := encodeVarlenPrefix(w, int(v.Length()))
			total += n
			if err != nil {
				return total, err
			}
			n, err = v.Encode(w)
			total += n
			if err != nil {
				return total, err
			}
			idx++
			continue
		}

		var run bytes.Buffer
		for range e.ies {
			if _, err := values[idx].Encode(&run); err != nil {
				return total, err
			}
			idx++
		}
		n, err := w.Write(run.Bytes())
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// DecodeRecord reads one data record's values, in template field order,
// from r. Contiguous runs of fixed-length fields identified by the
// template's packing plan are read into a single buffer in one call and
// then decoded field by field out of it, instead of issuing one read per
// field.
func (t *Template) DecodeRecord(r io.Reader) ([]DataType, int, error) {
	plan := t.packPlan()
	values := make([]DataType, len(t.IEs))
	total := 0
	idx := 0
	for _, e := range plan.entries {
		if e.variable {
			ie := t.IEs[idx]
			length, consumed, err := decodeVarlenPrefix(r)
			total += consumed
			if err != nil {
				return nil, total, err
			}
			dt := ie.constructor()()
			dt.SetLength(uint16(length))
			n, err := dt.Decode(r)
			total += n
			if err != nil {
				return nil, total, err
			}
			values[idx] = dt
			idx++
			continue
		}

		run := make([]byte, e.length)
		n, err := readFull(r, run)
		total += n
		if err != nil {
			return nil, total, err
		}
		br := bytes.NewReader(run)
		for range e.ies {
			ie := t.IEs[idx]
			dt := ie.constructor()()
			dt.SetLength(ie.Length)
			if _, err := dt.Decode(br); err != nil {
				return nil, total, err
			}
			values[idx] = dt
			idx++
		}
	}
	return values, total, nil
}

// EncodeNameDictTo encodes one data record from a name-dict: a mapping
// from IE name to value. Every IE in the template must have an entry in
// rec; extra keys not named by the template are ignored.
func (t *Template) EncodeNameDictTo(w io.Writer, rec map[string]DataType) (int, error) {
	values := make([]DataType, len(t.IEs))
	for i, ie := range t.IEs {
		v, ok := rec[ie.Name]
		if !ok {
			return 0, MissingField(ie.Name)
		}
		values[i] = v
	}
	return t.EncodeRecord(w, values)
}

// DecodeNameDictFrom decodes one data record into a name-dict keyed by IE
// name.
func (t *Template) DecodeNameDictFrom(r io.Reader) (map[string]DataType, int, error) {
	values, n, err := t.DecodeRecord(r)
	if err != nil {
		return nil, n, err
	}
	out := make(map[string]DataType, len(t.IEs))
	for i, ie := range t.IEs {
		out[ie.Name] = values[i]
	}
	return out, n, nil
}

// DecodeIEDictFrom decodes one data record into an IE-dict keyed by the
// resolved InformationElement handle rather than its bare name, so callers
// that already hold an IE (from a projection or the registry) can look up
// a value without a second name resolution.
func (t *Template) DecodeIEDictFrom(r io.Reader) (map[InformationElement]DataType, int, error) {
	values, n, err := t.DecodeRecord(r)
	if err != nil {
		return nil, n, err
	}
	out := make(map[InformationElement]DataType, len(t.IEs))
	for i, ie := range t.IEs {
		out[ie] = values[i]
	}
	return out, n, nil
}

// projectToTemplateOrder reorders values (parallel to ielist) into
// template field order: values[i] corresponds to ielist[i]. IEs in ielist
// that the template doesn't carry are ignored; IEs the template carries
// but ielist doesn't name fail with missing-field, since the template
// requires a value for every one of its fields.
func (t *Template) projectToTemplateOrder(values []DataType, ielist InformationElementList) ([]DataType, error) {
	out := make([]DataType, len(t.IEs))
	for i, ie := range t.IEs {
		idx := -1
		for j, p := range ielist {
			if p.key() == ie.key() {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, MissingField(ie.Name)
		}
		out[i] = values[idx]
	}
	return out, nil
}

// EncodeTupleTo encodes one data record from a tuple shaped by ielist:
// rec[i] corresponds to ielist[i]. If ielist is nil, rec is taken to be
// parallel to the template's own field order (equivalent to EncodeRecord).
func (t *Template) EncodeTupleTo(w io.Writer, rec []DataType, ielist InformationElementList) (int, error) {
	if ielist == nil {
		return t.EncodeRecord(w, rec)
	}
	values, err := t.projectToTemplateOrder(rec, ielist)
	if err != nil {
		return 0, err
	}
	return t.EncodeRecord(w, values)
}

// DecodeTupleFrom decodes one data record and reshapes it into a tuple
// ordered by ielist: the returned slice's index i holds the value for
// ielist[i]. Every IE named by ielist must appear in the template.
func (t *Template) DecodeTupleFrom(r io.Reader, ielist InformationElementList) ([]DataType, int, error) {
	values, n, err := t.DecodeRecord(r)
	if err != nil {
		return nil, n, err
	}
	out := make([]DataType, len(ielist))
	for i, p := range ielist {
		idx := -1
		for j, ie := range t.IEs {
			if ie.key() == p.key() {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, n, MissingField(p.Name)
		}
		out[i] = values[idx]
	}
	return out, n, nil
}

// encodeFieldDescriptorsTo writes this template's field descriptors (num,
// length pairs, with the enterprise bit set on num where pen != 0, and a
// trailing PEN where present), used both for Template Records and Options
// Template Records. This is the wire shape of the template itself, not of
// a data record.
func (t *Template) encodeFieldDescriptorsTo(w io.Writer) (int, error) {
	total := 0
	for _, ie := range t.IEs {
		num := ie.Num
		if ie.PEN != 0 {
			num |= EnterpriseBit
		}
		b := make([]byte, 0, 8)
		b = binary.BigEndian.AppendUint16(b, num)
		b = binary.BigEndian.AppendUint16(b, ie.Length)
		if ie.PEN != 0 {
			b = binary.BigEndian.AppendUint32(b, ie.PEN)
		}
		n, err := w.Write(b)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// decodeFieldDescriptorsFrom reads count field descriptors from r and
// resolves each against the registry via ForTemplateEntry, producing the
// IE list a Template Record (or Options Template Record) describes.
func decodeFieldDescriptorsFrom(r io.Reader, count int) (InformationElementList, int, error) {
	ies := make(InformationElementList, 0, count)
	total := 0
	for i := 0; i < count; i++ {
		head := make([]byte, 4)
		n, err := readFull(r, head)
		total += n
		if err != nil {
			return nil, total, err
		}
		num := binary.BigEndian.Uint16(head[0:2])
		length := binary.BigEndian.Uint16(head[2:4])

		var pen uint32
		if num&EnterpriseBit != 0 {
			num &^= EnterpriseBit
			penBuf := make([]byte, 4)
			n, err := readFull(r, penBuf)
			total += n
			if err != nil {
				return nil, total, err
			}
			pen = binary.BigEndian.Uint32(penBuf)
		}

		ie, err := ForTemplateEntry(pen, num, length)
		if err != nil {
			return nil, total, err
		}
		ies = append(ies, ie)
	}
	return ies, total, nil
}

// EncodeTemplateTo writes this template as a Template Record (or Options
// Template Record, when IsOptions) body, not including the enclosing Set
// header. IsOptions decides the header shape: the scope count is written
// only for an Options Template Record.
func (t *Template) EncodeTemplateTo(w io.Writer) (int, error) {
	total := 0
	b := make([]byte, 0, 4)
	b = binary.BigEndian.AppendUint16(b, t.TemplateID)
	b = binary.BigEndian.AppendUint16(b, uint16(len(t.IEs)))
	n, err := w.Write(b)
	total += n
	if err != nil {
		return total, err
	}

	if t.IsOptions() {
		sc := make([]byte, 2)
		binary.BigEndian.PutUint16(sc, t.ScopeCount)
		n, err := w.Write(sc)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = t.encodeFieldDescriptorsTo(w)
	total += n
	return total, err
}

// encodeTemplateWithdrawalTo writes a Template Withdrawal record: a
// Template Record header naming tid with a field count of 0.
func encodeTemplateWithdrawalTo(w io.Writer, tid uint16) (int, error) {
	b := make([]byte, 0, 4)
	b = binary.BigEndian.AppendUint16(b, tid)
	b = binary.BigEndian.AppendUint16(b, 0)
	return w.Write(b)
}
