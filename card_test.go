package cardkit

import (
	"reflect"
	"testing"
)

func TestIsAbsentOrEmpty(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"false", false, true},
		{"true", true, false},
		{"empty string", "", true},
		{"string", "x", false},
		{"zero float", float64(0), true},
		{"float", 1.5, false},
		{"empty map", map[string]any{}, true},
		{"map", map[string]any{"k": 1}, false},
		{"empty slice", []any{}, true},
		{"slice", []any{1}, false},
	}
	for _, c := range cases {
		if got := IsAbsentOrEmpty(c.v); got != c.want {
			t.Errorf("%s: IsAbsentOrEmpty = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCard_AnimationNamesSorted(t *testing.T) {
	card := Card{
		"animations": map[string]any{
			"talking": "t.gif",
			"idle":    "i.gif",
			"happy":   "h.gif",
		},
	}
	got := card.AnimationNames()
	want := []string{"happy", "idle", "talking"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AnimationNames = %v, want %v", got, want)
	}
}

func TestCard_CloneIsDeep(t *testing.T) {
	card := Card{
		"name": "Rin",
		"behavior": map[string]any{
			"idleTimeout": 30,
		},
	}
	clone, err := card.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}

	clone["name"] = "Mia"
	subMap(clone, "behavior")["idleTimeout"] = 99

	if card.Name() != "Rin" {
		t.Fatal("clone shares top level with original")
	}
	if subMap(card, "behavior")["idleTimeout"] != 30 {
		t.Fatal("clone shares nested map with original")
	}
}

func TestCard_Accessors(t *testing.T) {
	card := Card{"name": "Rin", "description": "a card"}
	if card.Name() != "Rin" || card.Description() != "a card" {
		t.Fatal("accessor mismatch")
	}
	if card.Has("missing") {
		t.Fatal("Has on missing key")
	}
	card.Set("missing", 1)
	if !card.Has("missing") {
		t.Fatal("Set did not store")
	}
	// Wrong-typed identity fields read as empty, not panic.
	bad := Card{"name": 42}
	if bad.Name() != "" {
		t.Fatal("non-string name should read as empty")
	}
}
