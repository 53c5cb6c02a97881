// Package mapping defines the Field-Mapping Table: the configuration that
// translates external feed column names into internal product field
// identifiers. Mappings come from a built-in preset, from the compact
// "col:field,col:field" string grammar, or from a YAML registry file.
package mapping

import "strings"

// Entry pairs a source column name with a target field identifier.
type Entry struct {
	Column string
	Field  string
}

// FieldMapping is an insertion-ordered column-to-field table. Two columns may
// map to the same target field; during materialization the entry that is
// applied later simply overwrites the earlier write (last mapping wins).
type FieldMapping struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty FieldMapping.
func New() *FieldMapping {
	return &FieldMapping{index: make(map[string]int)}
}

// Set maps column to field. Re-mapping an existing column overwrites its
// target but keeps its position in iteration order.
func (m *FieldMapping) Set(column, field string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[column]; ok {
		m.entries[i].Field = field
		return
	}
	m.index[column] = len(m.entries)
	m.entries = append(m.entries, Entry{Column: column, Field: field})
}

// Get returns the target field for a source column.
func (m *FieldMapping) Get(column string) (string, bool) {
	if m.index == nil {
		return "", false
	}
	i, ok := m.index[column]
	if !ok {
		return "", false
	}
	return m.entries[i].Field, true
}

// Len returns the number of mapped columns.
func (m *FieldMapping) Len() int { return len(m.entries) }

// Entries returns the column/field pairs in insertion order.
func (m *FieldMapping) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// ProductFeed returns the preset mapping for the standard product feed
// export. Note that sku_name deliberately re-targets name (the SKU name is
// the display name for that variant) and that color, rating and category id
// land in the custom-attribute bag because the generic product has no
// first-class slot for them.
func ProductFeed() *FieldMapping {
	m := New()
	m.Set("product_id", "id")
	m.Set("product_name", "name")
	m.Set("brand", "brand")
	m.Set("category_name", "category")
	m.Set("category_description", "description")
	m.Set("sku_id", "sku")
	m.Set("sku_name", "name")
	m.Set("sku_image", "image")
	m.Set("sku_description", "description")
	m.Set("color", "color")
	m.Set("aggregateRating", "rating")
	m.Set("category_id", "categoryId")
	return m
}

// Parse builds a FieldMapping from the compact "col1:field1,col2:field2"
// grammar. Entries that are not exactly column-colon-field are dropped
// silently, matching the tolerant behavior expected of feed configuration.
func Parse(spec string) *FieldMapping {
	m := New()
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return m
	}
	for _, pair := range strings.Split(spec, ",") {
		parts := strings.Split(pair, ":")
		if len(parts) != 2 {
			continue
		}
		column := strings.TrimSpace(parts[0])
		field := strings.TrimSpace(parts[1])
		if column == "" || field == "" {
			continue
		}
		m.Set(column, field)
	}
	return m
}
