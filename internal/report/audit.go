package report

import (
	"fmt"
	"sort"
	"strings"

	cardkit "github.com/opd-ai/cardkit-go"
)

// Audit renders the feature coverage report for a corpus.
func Audit(rep *cardkit.AuditReport, colored bool) string {
	ok, fail, warn := marks(colored)

	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	sep := strings.Repeat("-", 40)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "CHARACTER FEATURE AUDIT REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Total Characters Analyzed: %d\n", rep.Characters)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "FEATURE COVERAGE SUMMARY")
	fmt.Fprintln(&b, sep)
	for _, feature := range featuresByCoverage(rep) {
		stat := rep.FeatureStats[feature]
		fmt.Fprintf(&b, "%-20s %3d/%3d (%5.1f%%)\n", feature, stat.Count, stat.Total, stat.Percentage)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "MISSING FEATURES BY CHARACTER")
	fmt.Fprintln(&b, sep)
	for _, name := range sortedMapKeys(rep.MissingFeatures) {
		missing := rep.MissingFeatures[name]
		if len(missing) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", name)
		for _, feature := range missing {
			fmt.Fprintf(&b, "  - %s\n", feature)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "ASSET GENERATION ANALYSIS")
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "Characters with Asset Generation: %d\n", len(rep.HasAssetGeneration))
	for _, name := range rep.HasAssetGeneration {
		fmt.Fprintf(&b, "  %s %s\n", ok, name)
	}
	fmt.Fprintf(&b, "\nCharacters Missing Asset Generation: %d\n", len(rep.MissingAssetGeneration))
	for _, name := range rep.MissingAssetGeneration {
		fmt.Fprintf(&b, "  %s %s\n", fail, name)
	}

	if len(rep.IncompleteConfigs) > 0 {
		fmt.Fprintln(&b, "\nIncomplete Asset Generation Configurations:")
		for _, cfg := range rep.IncompleteConfigs {
			fmt.Fprintf(&b, "  %s %s: missing %s\n", warn, cfg.Character, strings.Join(cfg.MissingFields, ", "))
		}
	}

	fmt.Fprintln(&b, "\nAnimation Mapping Coverage:")
	for _, anim := range animationsByCount(rep) {
		fmt.Fprintf(&b, "  %-15s %2d characters\n", anim, len(rep.AnimationMappings[anim]))
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	return b.String()
}

// AuditMarkdown wraps the plain report in a fenced block for saving
// next to the corpus.
func AuditMarkdown(rep *cardkit.AuditReport) string {
	return "# Character Feature Audit Report\n\n```\n" + Audit(rep, false) + "\n```\n"
}

// featuresByCoverage orders the vocabulary by coverage descending, name
// ascending on ties.
func featuresByCoverage(rep *cardkit.AuditReport) []string {
	features := make([]string, 0, len(rep.FeatureStats))
	for feature := range rep.FeatureStats {
		features = append(features, feature)
	}
	sort.Slice(features, func(i, j int) bool {
		pi, pj := rep.FeatureStats[features[i]].Percentage, rep.FeatureStats[features[j]].Percentage
		if pi != pj {
			return pi > pj
		}
		return features[i] < features[j]
	})
	return features
}

// animationsByCount orders animation names by how many characters map
// them, descending, name ascending on ties.
func animationsByCount(rep *cardkit.AuditReport) []string {
	anims := make([]string, 0, len(rep.AnimationMappings))
	for anim := range rep.AnimationMappings {
		anims = append(anims, anim)
	}
	sort.Slice(anims, func(i, j int) bool {
		ci, cj := len(rep.AnimationMappings[anims[i]]), len(rep.AnimationMappings[anims[j]])
		if ci != cj {
			return ci > cj
		}
		return anims[i] < anims[j]
	})
	return anims
}

func sortedMapKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
