// Package cardkit maintains character card documents for an animated
// desktop companion: it synthesizes asset-generation configs, backfills
// missing subsystem defaults, validates cards against the card schema,
// and audits feature coverage across a corpus.
package cardkit

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Card is one character's parsed JSON document. The raw-map
// representation is load-bearing: rewriting a card must preserve unknown
// fields and untouched subtrees exactly, so the toolkit never converts a
// whole card into typed structs.
type Card map[string]any

// Name returns the card's display name, or "" when unset.
func (c Card) Name() string {
	s, _ := c["name"].(string)
	return s
}

// Description returns the card's description, or "" when unset.
func (c Card) Description() string {
	s, _ := c["description"].(string)
	return s
}

// Animations returns the animations block. Values are opaque asset
// references; only key presence matters to the toolkit.
func (c Card) Animations() map[string]any {
	m, _ := c["animations"].(map[string]any)
	return m
}

// AnimationNames returns the card's animation names, sorted.
func (c Card) AnimationNames() []string {
	anims := c.Animations()
	names := make([]string, 0, len(anims))
	for name := range anims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the card defines the key at all.
func (c Card) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Get returns the value under key, or nil.
func (c Card) Get(key string) any {
	return c[key]
}

// Set stores a value under key.
func (c Card) Set(key string, value any) {
	c[key] = value
}

// Clone deep-copies the card through a JSON round trip.
func (c Card) Clone() (Card, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal card: %w", err)
	}
	var out Card
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal card: %w", err)
	}
	return out, nil
}

// IsAbsentOrEmpty reports whether a card value counts as a hole the
// feature completer may fill: nil, false, empty string, empty
// collection, or numeric zero. One predicate shared by completion and
// audit so "present" means the same thing everywhere.
func IsAbsentOrEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == ""
	case float64:
		return val == 0
	case int:
		return val == 0
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	default:
		return false
	}
}

// subMap returns card[key] as a map when it is one.
func subMap(c Card, key string) map[string]any {
	m, _ := c[key].(map[string]any)
	return m
}

// sortedKeys returns the keys of a JSON object, sorted, for
// deterministic iteration.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asNumber coerces JSON numbers (float64 after decoding, int from
// hand-built test fixtures) to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
