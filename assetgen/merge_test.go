package assetgen

import (
	"strings"
	"testing"
)

func TestMergeAnimations_CoreSetAlwaysPresent(t *testing.T) {
	got := MergeAnimations(nil, ArchetypeDefault)
	for _, name := range CoreAnimations {
		if _, ok := got[name]; !ok {
			t.Fatalf("core animation %s missing from merge output", name)
		}
	}
}

func TestMergeAnimations_SupersetOfExisting(t *testing.T) {
	existing := []string{"idle", "dancing", "custom_wave"}
	got := MergeAnimations(existing, ArchetypeDefault)
	for _, name := range existing {
		if _, ok := got[name]; !ok {
			t.Fatalf("existing animation %s dropped by merge", name)
		}
	}
}

func TestMergeAnimations_KnownNameUsesCatalog(t *testing.T) {
	got := MergeAnimations([]string{"attack"}, ArchetypeDefault)
	want, _ := CatalogDescriptor("attack")
	if got["attack"].PromptModifier != want.PromptModifier {
		t.Fatalf("expected catalog descriptor for attack, got %q", got["attack"].PromptModifier)
	}
}

func TestMergeAnimations_UnknownNameGetsGenericDescriptor(t *testing.T) {
	got := MergeAnimations([]string{"dancing"}, ArchetypeDefault)
	d, ok := got["dancing"]
	if !ok {
		t.Fatal("unknown animation left unmapped")
	}
	if !strings.Contains(d.PromptModifier, "dancing") {
		t.Fatalf("generic promptModifier should mention the state, got %q", d.PromptModifier)
	}
	if d.StateDescription != "Character in dancing state" {
		t.Fatalf("unexpected stateDescription %q", d.StateDescription)
	}
	if d.FrameCount != 6 {
		t.Fatalf("generic frameCount = %d, want 6", d.FrameCount)
	}
}

func TestMergeAnimations_AriaLunaInjectsMagicalAndSleeping(t *testing.T) {
	got := MergeAnimations([]string{"idle", "talking"}, ArchetypeAriaLuna)
	if _, ok := got["magical"]; !ok {
		t.Fatal("aria_luna merge missing magical")
	}
	if _, ok := got["sleeping"]; !ok {
		t.Fatal("aria_luna merge missing sleeping")
	}
	// The magical state carries a per-state quality override.
	if got["magical"].CustomSettings == nil {
		t.Fatal("magical descriptor lost its customSettings")
	}
}

func TestMergeAnimations_SpecialistInjectsSleepingOnly(t *testing.T) {
	got := MergeAnimations(nil, ArchetypeSpecialist)
	if _, ok := got["sleeping"]; !ok {
		t.Fatal("specialist merge missing sleeping")
	}
	if _, ok := got["magical"]; ok {
		t.Fatal("specialist merge should not inject magical")
	}
}

func TestMergeAnimations_Idempotent(t *testing.T) {
	first := MergeAnimations([]string{"idle", "dancing"}, ArchetypeAriaLuna)

	names := make([]string, 0, len(first))
	for name := range first {
		names = append(names, name)
	}
	second := MergeAnimations(names, ArchetypeAriaLuna)

	if len(second) != len(first) {
		t.Fatalf("fixed point violated: %d names became %d", len(first), len(second))
	}
	for name := range first {
		if _, ok := second[name]; !ok {
			t.Fatalf("name %s lost on re-merge", name)
		}
	}
}

func TestMergeAnimations_ValidDescriptors(t *testing.T) {
	got := MergeAnimations([]string{"unknown_state"}, ArchetypeAriaLuna)
	for name, d := range got {
		if d.PromptModifier == "" {
			t.Errorf("%s: empty promptModifier", name)
		}
		if d.StateDescription == "" {
			t.Errorf("%s: empty stateDescription", name)
		}
		if d.FrameCount <= 0 {
			t.Errorf("%s: frameCount %d", name, d.FrameCount)
		}
	}
}

func TestCatalogDescriptor_ReturnsCopy(t *testing.T) {
	d, ok := CatalogDescriptor("magical")
	if !ok {
		t.Fatal("magical missing from catalog")
	}
	quality := d.CustomSettings["qualitySettings"].(map[string]any)
	quality["steps"] = 999

	again, _ := CatalogDescriptor("magical")
	if again.CustomSettings["qualitySettings"].(map[string]any)["steps"] == 999 {
		t.Fatal("catalog registry was mutated through a returned descriptor")
	}
}
