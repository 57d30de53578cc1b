// Package textcritics loads and persists the textcritics JSON document
// and flattens it into the record shape the unification core consumes.
//
// The document carries far more structure than tkkunify cares about
// (sheet descriptions, sigla, linguistic commentary). Only the
// svgGroupId values nested under
// textcritics[].commentary.comments[].blockComments[] are relevant, so
// the document is decoded into a generic JSON tree: unknown fields
// round-trip untouched, and updates are written back into the same
// tree before re-serializing.
package textcritics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lili041/tkkunify/pkg/tkkunify"
)

// Document is one parsed textcritics JSON file.
type Document struct {
	root     any
	bindings []binding
}

// binding ties a flattened record to the blockComment object it came
// from, so Apply can write the unified ID back into the tree.
type binding struct {
	record       *tkkunify.GroupRecord
	blockComment map[string]any
}

// Parse decodes a textcritics document. Numbers are kept as
// json.Number so re-serializing does not reformat numeric literals.
// The top level is either an object with a "textcritics" array or a
// bare array of entries.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse textcritics document: %w", err)
	}

	doc := &Document{root: root}
	if doc.entries() == nil {
		return nil, fmt.Errorf("textcritics document has no entry list")
	}
	return doc, nil
}

// entries returns the entry array, from the "textcritics" key of a
// top-level object or from a top-level array.
func (d *Document) entries() []any {
	switch root := d.root.(type) {
	case map[string]any:
		if list, ok := root["textcritics"].([]any); ok {
			return list
		}
		return nil
	case []any:
		return root
	default:
		return nil
	}
}

// EntryCount returns the number of entries in the document.
func (d *Document) EntryCount() int {
	return len(d.entries())
}

// Flatten walks every entry and returns one GroupRecord per
// svgGroupId occurrence, in document order. Block comments without an
// svgGroupId are ignored; the literal "TODO" value yields a deferred
// record. The record kind is derived from the entry ID: entries
// carrying the SkRT marker describe row tables.
//
// Flatten records bindings inside the document, so a later Apply can
// push updated IDs back into the tree. Calling Flatten again resets
// the bindings.
func (d *Document) Flatten() []*tkkunify.GroupRecord {
	d.bindings = nil
	var records []*tkkunify.GroupRecord

	for _, rawEntry := range d.entries() {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			continue
		}
		entryID, _ := entry["id"].(string)

		kind := tkkunify.KindStandard
		if strings.Contains(entryID, tkkunify.SkRTMarker) {
			kind = tkkunify.KindReihentabelle
		}

		for _, bc := range blockComments(entry) {
			val, _ := bc["svgGroupId"].(string)
			if val == "" {
				continue
			}
			record := &tkkunify.GroupRecord{
				EntryID:   entryID,
				Label:     entryID,
				CurrentID: val,
				Kind:      kind,
				Deferred:  val == tkkunify.DeferredMarker,
			}
			records = append(records, record)
			d.bindings = append(d.bindings, binding{record: record, blockComment: bc})
		}
	}
	return records
}

// blockComments collects the blockComment objects of one entry, in
// document order: entry.commentary.comments[].blockComments[].
func blockComments(entry map[string]any) []map[string]any {
	commentary, _ := entry["commentary"].(map[string]any)
	comments, _ := commentary["comments"].([]any)

	var out []map[string]any
	for _, rawComment := range comments {
		comment, ok := rawComment.(map[string]any)
		if !ok {
			continue
		}
		list, _ := comment["blockComments"].([]any)
		for _, rawBC := range list {
			if bc, ok := rawBC.(map[string]any); ok {
				out = append(out, bc)
			}
		}
	}
	return out
}

// Apply writes each bound record's CurrentID back into its
// blockComment. Call after the unification run mutated the records.
func (d *Document) Apply() {
	for _, b := range d.bindings {
		b.blockComment["svgGroupId"] = b.record.CurrentID
	}
}

// Marshal re-serializes the document with 4-space indentation and
// without HTML escaping, matching how the edition's documents are
// stored.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("failed to serialize textcritics document: %w", err)
	}
	return buf.Bytes(), nil
}
