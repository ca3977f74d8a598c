package cardkit

import (
	"reflect"
	"testing"
)

func auditCorpus(t *testing.T) map[string]Card {
	t.Helper()
	full := completeCard(t)
	return map[string]Card{
		"rin": full,
		"bare": {
			"name":        "Bare",
			"description": "nothing configured",
		},
		"partial": {
			"name":            "Partial",
			"description":     "has a config missing fields",
			"animations":      map[string]any{"idle": "i.gif"},
			"assetGeneration": map[string]any{"basePrompt": "x"},
		},
	}
}

func TestAudit_FeatureCounts(t *testing.T) {
	rep := Audit(auditCorpus(t))

	if rep.Characters != 3 {
		t.Fatalf("characters = %d", rep.Characters)
	}

	stat := rep.FeatureStats["dialogBackend"]
	if stat.Count != 1 || stat.Total != 3 {
		t.Fatalf("dialogBackend stat = %+v", stat)
	}
	if stat.Percentage < 33.2 || stat.Percentage > 33.4 {
		t.Fatalf("dialogBackend percentage = %f", stat.Percentage)
	}

	// assetGeneration present on rin and partial.
	if got := rep.FeatureStats["assetGeneration"].Count; got != 2 {
		t.Fatalf("assetGeneration count = %d", got)
	}
}

func TestAudit_MissingFeaturesPerCharacter(t *testing.T) {
	rep := Audit(auditCorpus(t))

	missing := rep.MissingFeatures["bare"]
	if len(missing) != len(AllFeatures()) {
		t.Fatalf("bare should miss every feature, missing %d of %d", len(missing), len(AllFeatures()))
	}
	for _, feature := range rep.MissingFeatures["rin"] {
		switch feature {
		case "romanceDialogs", "romanceEvents", "interactions", "dialogs", "stats", "gameRules":
			// completion does not stub these
		default:
			t.Errorf("rin unexpectedly missing %s", feature)
		}
	}
}

func TestAudit_PresenceUsesTruthiness(t *testing.T) {
	cards := map[string]Card{
		"empty_block": {"dialogBackend": map[string]any{}},
	}
	rep := Audit(cards)
	if rep.FeatureStats["dialogBackend"].Count != 0 {
		t.Fatal("empty block should not count as present")
	}
}

func TestAudit_AssetGenerationLists(t *testing.T) {
	rep := Audit(auditCorpus(t))

	if !reflect.DeepEqual(rep.HasAssetGeneration, []string{"partial", "rin"}) {
		t.Fatalf("has list = %v", rep.HasAssetGeneration)
	}
	if !reflect.DeepEqual(rep.MissingAssetGeneration, []string{"bare"}) {
		t.Fatalf("missing list = %v", rep.MissingAssetGeneration)
	}

	if len(rep.IncompleteConfigs) != 1 {
		t.Fatalf("incomplete = %+v", rep.IncompleteConfigs)
	}
	ic := rep.IncompleteConfigs[0]
	if ic.Character != "partial" {
		t.Fatalf("incomplete character = %s", ic.Character)
	}
	if !reflect.DeepEqual(ic.MissingFields, []string{"animationMappings", "generationSettings"}) {
		t.Fatalf("missing fields = %v", ic.MissingFields)
	}
}

func TestAudit_AnimationIndex(t *testing.T) {
	rep := Audit(auditCorpus(t))

	// Only rin has animationMappings; every core animation maps to it.
	for _, name := range []string{"idle", "talking", "happy", "sad", "hungry", "eating"} {
		if !reflect.DeepEqual(rep.AnimationMappings[name], []string{"rin"}) {
			t.Fatalf("index[%s] = %v", name, rep.AnimationMappings[name])
		}
	}
}

func TestAudit_DoesNotMutateInput(t *testing.T) {
	cards := auditCorpus(t)
	before, _ := cards["rin"].Clone()
	Audit(cards)
	after, _ := cards["rin"].Clone()
	if !reflect.DeepEqual(before, after) {
		t.Fatal("audit mutated a card")
	}
}

func TestAudit_Deterministic(t *testing.T) {
	cards := auditCorpus(t)
	first := Audit(cards)
	for i := 0; i < 5; i++ {
		again := Audit(cards)
		if !reflect.DeepEqual(first, again) {
			t.Fatal("audit output changed between runs")
		}
	}
}
