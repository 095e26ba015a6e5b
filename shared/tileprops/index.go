// Package tileprops indexes the semantic properties authored on tileset
// tiles. It is pure data: the index is built once per level load and is
// read-only afterwards.
package tileprops

import (
	"strconv"
	"strings"
)

// Well-known property names.
const (
	Solid       = "solid"
	Platform    = "platform"
	Submersible = "submersible"
	Climbable   = "climbable"
	Hazardous   = "hazardous"
	SpawnPoint  = "spawnPoint"
)

// RawProperty is a single property as delivered by the level format.
type RawProperty struct {
	Name  string
	Type  string // "bool", "int", "float", "string" or "" (untyped)
	Value string
}

// RawTable maps tile identifiers to the properties authored on them.
type RawTable map[uint32][]RawProperty

// Definition is the resolved, immutable view of one tile's properties.
type Definition struct {
	flags  map[string]struct{}
	values map[string]string
}

// Has reports whether the named flag is set on the definition.
func (d Definition) Has(name string) bool {
	_, ok := d.flags[name]
	return ok
}

// Index is an O(1) lookup from tile identifier to Definition.
// The zero value and a nil *Index behave as an empty index.
type Index struct {
	defs map[uint32]Definition
}

// Build scans the raw table and extracts the flags and typed values for
// every tile. Malformed entries are skipped rather than reported.
func Build(raw RawTable) *Index {
	idx := &Index{defs: make(map[uint32]Definition, len(raw))}
	for id, props := range raw {
		def := Definition{}
		for _, p := range props {
			name := strings.TrimSpace(p.Name)
			if name == "" {
				continue
			}
			if def.values == nil {
				def.values = make(map[string]string, len(props))
			}
			def.values[name] = p.Value
			if truthy(p) {
				if def.flags == nil {
					def.flags = make(map[string]struct{}, len(props))
				}
				def.flags[name] = struct{}{}
			}
		}
		idx.defs[id] = def
	}
	return idx
}

// HasProperty reports whether tile id carries the named flag. Unknown ids
// resolve to false.
func (idx *Index) HasProperty(id uint32, name string) bool {
	if idx == nil {
		return false
	}
	def, ok := idx.defs[id]
	if !ok {
		return false
	}
	return def.Has(name)
}

// Value returns the raw string value of a property regardless of its
// truthiness, for typed markers such as spawn indices.
func (idx *Index) Value(id uint32, name string) (string, bool) {
	if idx == nil {
		return "", false
	}
	v, ok := idx.defs[id].values[name]
	return v, ok
}

// Definition returns the resolved definition for id. Unknown ids yield an
// empty definition.
func (idx *Index) Definition(id uint32) Definition {
	if idx == nil {
		return Definition{}
	}
	return idx.defs[id]
}

// Len returns the number of indexed tile identifiers.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.defs)
}

func truthy(p RawProperty) bool {
	v := strings.TrimSpace(p.Value)
	switch strings.ToLower(p.Type) {
	case "bool":
		b, err := strconv.ParseBool(v)
		return err == nil && b
	case "int":
		n, err := strconv.ParseInt(v, 10, 64)
		return err == nil && n != 0
	case "float":
		f, err := strconv.ParseFloat(v, 64)
		return err == nil && f != 0
	default:
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			return true
		}
		return false
	}
}
