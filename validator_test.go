package cardkit

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// completeCard builds a card that passes every validation stage.
func completeCard(t *testing.T) Card {
	t.Helper()
	card := Card{
		"name":        "Rin",
		"description": "a test companion with plenty of description",
		"animations": map[string]any{
			"idle": "i.gif", "talking": "t.gif", "happy": "h.gif", "sad": "s.gif",
		},
		"personality": map[string]any{"traits": []any{"kind"}},
	}
	CompleteFeatures(card, "rin", testNow)
	return card
}

func findingCount(findings []string, substr string) int {
	n := 0
	for _, f := range findings {
		if strings.Contains(f, substr) {
			n++
		}
	}
	return n
}

func TestValidate_CompleteCardIsValid(t *testing.T) {
	result := Validate(completeCard(t), "rin", "")
	if !result.Valid {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestValidate_MissingTopLevelFields(t *testing.T) {
	result := Validate(Card{}, "empty", "")
	for _, field := range []string{"name", "description", "animations"} {
		if findingCount(result.Errors, "Missing required field: "+field) != 1 {
			t.Errorf("expected missing-field error for %s, got %v", field, result.Errors)
		}
	}
	if result.Valid {
		t.Fatal("card with missing fields reported valid")
	}
}

func TestValidate_MissingRequiredAnimations(t *testing.T) {
	card := completeCard(t)
	delete(card.Animations(), "sad")

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "Missing required animation: sad") != 1 {
		t.Fatalf("expected missing-animation error, got %v", result.Errors)
	}
}

func TestValidate_ShortBasePromptEmitsBothErrors(t *testing.T) {
	card := completeCard(t)
	subMap(card, "assetGeneration")["basePrompt"] = "short"

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "at least 50 characters") != 1 {
		t.Fatalf("expected length error, got %v", result.Errors)
	}
	if findingCount(result.Errors, "transparent background") != 1 {
		t.Fatalf("expected transparency-cue error, got %v", result.Errors)
	}
}

func TestValidate_GoodBasePromptHasNoPromptErrors(t *testing.T) {
	card := completeCard(t)
	prompt := "An anime character rendered in soft colors on a transparent background for testing"
	subMap(card, "assetGeneration")["basePrompt"] = prompt

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "basePrompt") != 0 {
		t.Fatalf("unexpected basePrompt errors: %v", result.Errors)
	}
}

func TestValidate_UnknownModelAndStyle(t *testing.T) {
	card := completeCard(t)
	settings := subMap(card, "assetGeneration")["generationSettings"].(map[string]any)
	settings["model"] = "dalle"
	settings["artStyle"] = "photoreal"

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "Unknown model: dalle") != 1 {
		t.Fatalf("expected model error, got %v", result.Errors)
	}
	if findingCount(result.Errors, "Unknown artStyle: photoreal") != 1 {
		t.Fatalf("expected artStyle error, got %v", result.Errors)
	}
}

func TestValidate_WrongResolution(t *testing.T) {
	card := completeCard(t)
	settings := subMap(card, "assetGeneration")["generationSettings"].(map[string]any)
	settings["resolution"] = map[string]any{"width": 256, "height": 256}

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "128x128") != 1 {
		t.Fatalf("expected resolution error, got %v", result.Errors)
	}
}

func TestValidate_DefaultBackendNotFound(t *testing.T) {
	card := completeCard(t)
	card.Set("dialogBackend", map[string]any{
		"enabled":        true,
		"backends":       map[string]any{"markov_chain": map[string]any{}},
		"defaultBackend": "llm",
	})

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "defaultBackend not found") != 1 {
		t.Fatalf("expected defaultBackend error, got %v", result.Errors)
	}
}

func TestValidate_DisabledSubsystemSkipsConsistency(t *testing.T) {
	card := completeCard(t)
	card.Set("battleSystem", map[string]any{"enabled": false})

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "battleSystem") != 0 {
		t.Fatalf("disabled battleSystem still checked: %v", result.Errors)
	}
}

func TestValidate_StatInitialExceedsMax(t *testing.T) {
	card := completeCard(t)
	card.Set("stats", map[string]any{
		"hp": map[string]any{"initial": 120, "max": 100},
	})

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "Stat hp: initial value exceeds maximum") != 1 {
		t.Fatalf("expected hp error, got %v", result.Errors)
	}
}

func TestValidate_CriticalThresholdAtMax(t *testing.T) {
	card := completeCard(t)
	card.Set("stats", map[string]any{
		"energy": map[string]any{"initial": 50, "max": 100, "criticalThreshold": 100},
	})

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "Stat energy: criticalThreshold should be less than maximum") != 1 {
		t.Fatalf("expected threshold error, got %v", result.Errors)
	}
}

func TestValidate_EmptyNameIsError(t *testing.T) {
	card := completeCard(t)
	card.Set("name", "")

	result := Validate(card, "rin", "")
	if findingCount(result.Errors, "name cannot be empty") != 1 {
		t.Fatalf("expected empty-name error, got %v", result.Errors)
	}
}

func TestValidate_AdvisoryWarnings(t *testing.T) {
	card := completeCard(t)
	card.Set("description", "short")
	card.Set("personality", map[string]any{})

	result := Validate(card, "rin", "")
	if !result.Valid {
		t.Fatalf("warnings must not affect validity, errors: %v", result.Errors)
	}
	if findingCount(result.Warnings, "more descriptive") != 1 {
		t.Fatalf("expected description warning, got %v", result.Warnings)
	}
	if findingCount(result.Warnings, "missing personality") != 1 {
		t.Fatalf("expected personality warning, got %v", result.Warnings)
	}
}

func TestValidate_AnimationFileWarningsSkippedWhenMapped(t *testing.T) {
	dir := t.TempDir()
	cardPath := filepath.Join(dir, "character.json")

	card := completeCard(t)
	// "extra" is not covered by animationMappings and its file does not
	// exist; the mapped core animations must produce no findings.
	card.Animations()["extra"] = "missing/extra.gif"

	result := Validate(card, "rin", cardPath)
	if findingCount(result.Warnings, "extra.gif") != 1 {
		t.Fatalf("expected file-not-found warning for extra, got %v", result.Warnings)
	}
	if findingCount(result.Warnings, "i.gif") != 0 {
		t.Fatalf("mapped animation should be skipped, got %v", result.Warnings)
	}
}

func TestValidate_NonGIFWarning(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	card := completeCard(t)
	card.Animations()["extra"] = "extra.png"

	result := Validate(card, "rin", filepath.Join(dir, "character.json"))
	if findingCount(result.Warnings, "should be GIF format") != 1 {
		t.Fatalf("expected GIF-format warning, got %v", result.Warnings)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	card := completeCard(t)
	card.Set("stats", map[string]any{
		"hp":     map[string]any{"initial": 120, "max": 100},
		"energy": map[string]any{"initial": 90, "max": 80},
		"food":   map[string]any{"initial": 70, "max": 60},
	})
	delete(card.Animations(), "sad")

	first := Validate(card, "rin", "")
	for i := 0; i < 10; i++ {
		again := Validate(card, "rin", "")
		if !reflect.DeepEqual(first.Errors, again.Errors) {
			t.Fatalf("error order changed between runs:\n%v\n%v", first.Errors, again.Errors)
		}
		if !reflect.DeepEqual(first.Warnings, again.Warnings) {
			t.Fatal("warning order changed between runs")
		}
	}
}

func TestValidate_ValidIffNoErrors(t *testing.T) {
	cards := []Card{
		completeCard(t),
		{},
		{"name": "", "description": "x", "animations": map[string]any{}},
	}
	for i, card := range cards {
		result := Validate(card, "card", "")
		if result.Valid != (len(result.Errors) == 0) {
			t.Errorf("card %d: valid=%v with %d errors", i, result.Valid, len(result.Errors))
		}
	}
}

func TestValidate_ReadOnly(t *testing.T) {
	card := completeCard(t)
	before, _ := card.Clone()
	Validate(card, "rin", "")
	after, _ := card.Clone()
	if !reflect.DeepEqual(before, after) {
		t.Fatal("validation mutated the card")
	}
}
