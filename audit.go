package cardkit

import "sort"

// Feature vocabularies used by the audit. Grouped the way the companion's
// settings UI groups them; the concatenation is the full audit checklist.
var (
	CoreFeatures = []string{
		"dialogBackend", "giftSystem", "multiplayer", "newsFeatures",
		"battleSystem", "assetGeneration",
	}
	RomanceFeatures = []string{
		"personality", "romanceDialogs", "romanceEvents",
	}
	InteractiveFeatures = []string{
		"generalEvents", "randomEvents", "progression", "interactions",
	}
	BasicFeatures = []string{
		"animations", "dialogs", "behavior", "stats", "gameRules",
	}
)

// AllFeatures returns the full audit vocabulary in group order.
func AllFeatures() []string {
	out := make([]string, 0, len(CoreFeatures)+len(RomanceFeatures)+len(InteractiveFeatures)+len(BasicFeatures))
	out = append(out, CoreFeatures...)
	out = append(out, RomanceFeatures...)
	out = append(out, InteractiveFeatures...)
	out = append(out, BasicFeatures...)
	return out
}

// FeatureStat is per-feature presence across the corpus.
type FeatureStat struct {
	Count      int     `json:"count"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// IncompleteConfig flags a card whose assetGeneration block is missing
// required fields (the shallow version of the validator's schema stage).
type IncompleteConfig struct {
	Character     string   `json:"character"`
	MissingFields []string `json:"missing_fields"`
}

// AuditReport is the derived coverage statistics for a corpus. Slices
// are in sorted character order so two runs over the same corpus render
// identically.
type AuditReport struct {
	Characters      int                        `json:"characters"`
	FeatureStats    map[string]FeatureStat     `json:"feature_stats"`
	FeatureMatrix   map[string]map[string]bool `json:"feature_matrix"`
	MissingFeatures map[string][]string        `json:"missing_features"`

	HasAssetGeneration     []string           `json:"has_asset_generation"`
	MissingAssetGeneration []string           `json:"missing_asset_generation"`
	IncompleteConfigs      []IncompleteConfig `json:"incomplete_configurations"`

	// AnimationMappings is the inverted index: animation name → the
	// characters whose asset config maps it.
	AnimationMappings map[string][]string `json:"animation_mappings"`
}

// Audit computes feature coverage and asset-generation statistics over a
// corpus. The input is never mutated; presence uses the same
// absent-or-empty predicate as the feature completer.
func Audit(cards map[string]Card) *AuditReport {
	names := make([]string, 0, len(cards))
	for name := range cards {
		names = append(names, name)
	}
	sort.Strings(names)

	features := AllFeatures()
	report := &AuditReport{
		Characters:        len(cards),
		FeatureStats:      make(map[string]FeatureStat, len(features)),
		FeatureMatrix:     make(map[string]map[string]bool, len(cards)),
		MissingFeatures:   make(map[string][]string),
		AnimationMappings: make(map[string][]string),
	}

	counts := make(map[string]int, len(features))
	for _, name := range names {
		card := cards[name]
		row := make(map[string]bool, len(features))
		for _, feature := range features {
			has := card.Has(feature) && !IsAbsentOrEmpty(card.Get(feature))
			row[feature] = has
			if has {
				counts[feature]++
			} else {
				report.MissingFeatures[name] = append(report.MissingFeatures[name], feature)
			}
		}
		report.FeatureMatrix[name] = row

		auditAssetGeneration(report, name, card)
	}

	for _, feature := range features {
		stat := FeatureStat{Count: counts[feature], Total: len(cards)}
		if stat.Total > 0 {
			stat.Percentage = float64(stat.Count) / float64(stat.Total) * 100
		}
		report.FeatureStats[feature] = stat
	}

	return report
}

func auditAssetGeneration(report *AuditReport, name string, card Card) {
	if IsAbsentOrEmpty(card.Get("assetGeneration")) {
		report.MissingAssetGeneration = append(report.MissingAssetGeneration, name)
		return
	}
	report.HasAssetGeneration = append(report.HasAssetGeneration, name)

	assetGen := subMap(card, "assetGeneration")
	var missing []string
	for _, field := range []string{"basePrompt", "animationMappings", "generationSettings"} {
		if _, ok := assetGen[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		report.IncompleteConfigs = append(report.IncompleteConfigs, IncompleteConfig{
			Character:     name,
			MissingFields: missing,
		})
	}

	if mappings, ok := assetGen["animationMappings"].(map[string]any); ok {
		for _, anim := range sortedKeys(mappings) {
			report.AnimationMappings[anim] = append(report.AnimationMappings[anim], name)
		}
	}
}
