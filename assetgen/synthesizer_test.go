package assetgen

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, 12, 19, 12, 0, 0, 0, time.UTC)

func TestSynthesize_DefaultWithoutPathHint(t *testing.T) {
	cfg := Synthesize("Aria", "a mystical guide", "", []string{"idle", "talking"}, testNow)

	if cfg.BasePrompt != GetProfile(ArchetypeDefault).BasePrompt {
		t.Fatal("expected default base prompt without path signal")
	}
	if _, ok := cfg.AnimationMappings["magical"]; ok {
		t.Fatal("default archetype should not inject magical")
	}
}

func TestSynthesize_AriaLunaWithPathHint(t *testing.T) {
	cfg := Synthesize("Aria", "a mystical guide", "assets/characters/aria_luna/character.json",
		[]string{"idle", "talking"}, testNow)

	if cfg.BasePrompt != GetProfile(ArchetypeAriaLuna).BasePrompt {
		t.Fatal("expected aria_luna base prompt")
	}
	// Archetype-exclusive states are injected even though existing lacks them.
	if _, ok := cfg.AnimationMappings["magical"]; !ok {
		t.Fatal("aria_luna config missing magical mapping")
	}
	if _, ok := cfg.AnimationMappings["sleeping"]; !ok {
		t.Fatal("aria_luna config missing sleeping mapping")
	}
}

func TestSynthesize_FixedSettings(t *testing.T) {
	cfg := Synthesize("", "", "", nil, testNow)

	gs := cfg.GenerationSettings
	if gs.Model != "flux1d" || gs.ArtStyle != "anime" {
		t.Fatalf("unexpected model/style: %s/%s", gs.Model, gs.ArtStyle)
	}
	if gs.Resolution.Width != 128 || gs.Resolution.Height != 128 {
		t.Fatalf("resolution %dx%d, want 128x128", gs.Resolution.Width, gs.Resolution.Height)
	}
	if gs.QualitySettings.Steps != 25 || gs.QualitySettings.CFGScale != 7.5 {
		t.Fatal("unexpected quality settings")
	}
	if !gs.AnimationSettings.TransparencyEnabled {
		t.Fatal("transparency must be enabled")
	}

	if cfg.AssetMetadata.GeneratedAt != "2024-12-19T12:00:00Z" {
		t.Fatalf("generatedAt = %s", cfg.AssetMetadata.GeneratedAt)
	}
	if !cfg.BackupSettings.Enabled || cfg.BackupSettings.MaxBackups != 5 {
		t.Fatal("unexpected backup settings")
	}
}

func TestSynthesize_BasePromptAlwaysValid(t *testing.T) {
	for _, tag := range Archetypes() {
		cfg := SynthesizeFor(tag, nil, testNow)
		if len(cfg.BasePrompt) < 50 {
			t.Errorf("%s: base prompt shorter than 50 chars", tag)
		}
		if !strings.Contains(strings.ToLower(cfg.BasePrompt), TransparencyCue) {
			t.Errorf("%s: base prompt missing transparency cue", tag)
		}
	}
}

func TestAssetConfig_ToMap(t *testing.T) {
	cfg := Synthesize("", "", "aria_luna/character.json", []string{"idle"}, testNow)
	m, err := cfg.ToMap()
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}

	for _, key := range []string{"basePrompt", "animationMappings", "generationSettings", "assetMetadata", "backupSettings"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("ToMap missing %s", key)
		}
	}

	// customSettings must survive the round trip for the magical state.
	mappings := m["animationMappings"].(map[string]any)
	magical := mappings["magical"].(map[string]any)
	if _, ok := magical["customSettings"]; !ok {
		t.Fatal("magical customSettings lost in ToMap")
	}
	// Omitted optional fields stay omitted.
	if _, ok := magical["negativePrompt"]; ok {
		t.Fatal("empty negativePrompt should be omitted")
	}
}
