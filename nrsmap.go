package nrs

import (
	"encoding/json"
	"fmt"
	"iter"
	"sort"
)

// Map associates the subname paths of one top name with content
// locators.
//
// For a top name "example":
//
//	| Subname key | Full name         | Link value |
//	|-------------|-------------------|------------|
//	| ""          | "example"         | "nrs://a1" |
//	| "sub"       | "sub.example"     | "nrs://a2" |
//	| "sub.sub"   | "sub.sub.example" | "nrs://a3" |
//
// The empty key is the default entry for the top name itself. A Map is
// a plain in-memory value: it performs no I/O, keeps no history and is
// not safe for concurrent mutation.
type Map struct {
	entries map[string]string
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{entries: make(map[string]string)}
}

// GetLink returns the link registered for an exact subname path.
// There is no fallback to ancestor paths; an unregistered subname is
// ErrNotFound even when its parent has an entry.
func (m *Map) GetLink(subname string) (string, error) {
	link, ok := m.entries[subname]
	if !ok {
		log.Debugw("no link found for subname", "subname", subname)
		return "", fmt.Errorf("%w: %q", ErrNotFound, subname)
	}
	log.Debugw("resolved subname", "subname", subname, "link", link)
	return link, nil
}

// Resolve looks up the link for an ordered subname label sequence.
func (m *Map) Resolve(subnames []string) (string, error) {
	return m.GetLink(JoinSubnames(subnames))
}

// ResolveFullName looks up the link for a raw public name such as
// "blog.dave" or "nrs://blog.dave".
func (m *Map) ResolveFullName(fullName string) (string, error) {
	subname, err := ParseSubnames(fullName)
	if err != nil {
		return "", err
	}
	return m.GetLink(subname)
}

// DefaultLink returns the link registered for the top name itself.
func (m *Map) DefaultLink() (string, error) {
	return m.GetLink("")
}

// Update registers a link under a full public name, replacing any
// previous link for the same subname path, and returns the stored
// link. The link must pass ValidateLink; on failure the map is left
// unmodified.
func (m *Map) Update(fullName, link string) (string, error) {
	if err := ValidateLink(link); err != nil {
		return "", err
	}
	subname, err := ParseSubnames(fullName)
	if err != nil {
		return "", err
	}
	if m.entries == nil {
		m.entries = make(map[string]string)
	}
	m.entries[subname] = link
	log.Infow("updated nrs map", "name", fullName, "subname", subname)
	return link, nil
}

// Remove deletes the entry for a subname path and returns its former
// link.
func (m *Map) Remove(subname string) (string, error) {
	link, ok := m.entries[subname]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, subname)
	}
	delete(m.entries, subname)
	log.Infow("removed subname from nrs map", "subname", subname)
	return link, nil
}

// Len returns the number of registered entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Subnames returns the registered subname paths in lexicographic
// order.
func (m *Map) Subnames() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries iterates the map in lexicographic key order.
func (m *Map) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.Subnames() {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

type mapDoc struct {
	Map map[string]string `json:"map"`
}

// Serialize encodes the map for persistence. Key order is stable, so
// repeated encodes of an unchanged map are byte-identical.
func (m *Map) Serialize() ([]byte, error) {
	return json.Marshal(mapDoc{Map: m.entries})
}

// LoadMap decodes a map from its serialized form.
func LoadMap(data []byte) (*Map, error) {
	var doc mapDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("nrs: parse map: %w", err)
	}
	if doc.Map == nil {
		doc.Map = make(map[string]string)
	}
	return &Map{entries: doc.Map}, nil
}
