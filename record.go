package refdoc

import (
	"bytes"
	"encoding/json"
	"iter"
)

// Placeholders substituted when a page lacks the expected markup.
const (
	UnknownTitle = "Unknown Title"
	NoContent    = "No content available"
)

// Section names a labeled block of a reference page.
type Section string

// Sections extracted from every detail page, in rendering order.
const (
	SectionSummary    Section = "Summary"
	SectionNamespace  Section = "Namespace"
	SectionProperties Section = "Properties"
)

// Sections returns the fixed set of extracted sections in enumeration order.
func Sections() []Section {
	return []Section{SectionSummary, SectionNamespace, SectionProperties}
}

// PageRecord is the structured content of one detail page.
//
// A section is present in Sections only when its heading was found on the
// page; a heading with no paragraphs after it maps to NoContent.
type PageRecord struct {
	Title    string
	Sections map[Section]string
	Examples []string
}

// NewPageRecord returns a record with the given title and no sections or
// examples.
func NewPageRecord(title string) *PageRecord {
	return &PageRecord{
		Title:    title,
		Sections: make(map[Section]string),
		Examples: []string{},
	}
}

// MarshalJSON encodes the record as {"Title", <sections...>, "Examples"}
// with sections in enumeration order and Examples always an array.
func (r *PageRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeMember(&buf, "Title", r.Title); err != nil {
		return nil, err
	}
	for _, s := range Sections() {
		v, ok := r.Sections[s]
		if !ok {
			continue
		}
		buf.WriteByte(',')
		if err := writeMember(&buf, string(s), v); err != nil {
			return nil, err
		}
	}
	examples := r.Examples
	if examples == nil {
		examples = []string{}
	}
	buf.WriteByte(',')
	if err := writeMember(&buf, "Examples", examples); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the object form written by MarshalJSON.
// Unknown members are ignored.
func (r *PageRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rec := NewPageRecord("")
	if v, ok := raw["Title"]; ok {
		if err := json.Unmarshal(v, &rec.Title); err != nil {
			return err
		}
	}
	for _, s := range Sections() {
		v, ok := raw[string(s)]
		if !ok {
			continue
		}
		var text string
		if err := json.Unmarshal(v, &text); err != nil {
			return err
		}
		rec.Sections[s] = text
	}
	if v, ok := raw["Examples"]; ok {
		if err := json.Unmarshal(v, &rec.Examples); err != nil {
			return err
		}
		if rec.Examples == nil {
			rec.Examples = []string{}
		}
	}

	*r = *rec
	return nil
}

// Dataset maps link text to the record extracted from the linked page,
// in crawl order. Keys are link texts, not record titles; setting an
// existing key overwrites its record.
type Dataset struct {
	m orderedMap[*PageRecord]
}

// NewDataset returns an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{}
}

// Set stores rec under key.
func (d *Dataset) Set(key string, rec *PageRecord) {
	d.m.set(key, rec)
}

// Get returns the record stored under key.
func (d *Dataset) Get(key string) (*PageRecord, bool) {
	return d.m.get(key)
}

// Len returns the number of entries.
func (d *Dataset) Len() int {
	return d.m.len()
}

// All iterates entries in insertion order.
func (d *Dataset) All() iter.Seq2[string, *PageRecord] {
	return d.m.all()
}

// Keys returns the keys in insertion order.
func (d *Dataset) Keys() []string {
	keys := make([]string, 0, d.Len())
	for k := range d.All() {
		keys = append(keys, k)
	}
	return keys
}

// MarshalJSON encodes the dataset as an object preserving insertion order.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, rec := range d.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeMember(&buf, k, rec); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object into the dataset, keeping the member
// order of the input.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Errorf(EINVALID, "dataset: expected JSON object")
	}

	out := NewDataset()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return Errorf(EINVALID, "dataset: expected string key")
		}
		rec := &PageRecord{}
		if err := dec.Decode(rec); err != nil {
			return err
		}
		out.Set(key, rec)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = *out
	return nil
}

// writeMember appends "key":value to buf without HTML-escaping strings.
func writeMember(buf *bytes.Buffer, key string, v any) error {
	k, err := marshalNoEscape(key)
	if err != nil {
		return err
	}
	val, err := marshalNoEscape(v)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(val)
	return nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
