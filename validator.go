package cardkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opd-ai/cardkit-go/assetgen"
)

// RequiredAnimations is the animation set validation insists on. It is
// the smaller historical list, not the six-name merge core set, so card
// corpora written before hungry/eating existed keep validating.
var RequiredAnimations = []string{"idle", "talking", "happy", "sad"}

// ValidationResult is one card's findings. Errors make the card unusable
// by the asset generator; warnings are advisory and never affect
// validity.
type ValidationResult struct {
	Character string   `json:"character"`
	Path      string   `json:"path"`
	Valid     bool     `json:"valid"`
	Errors    []string `json:"errors"`
	Warnings  []string `json:"warnings"`
}

// Validate runs every validation stage over a card and reports all
// findings in one pass; no stage short-circuits the ones after it. The
// card is never mutated, and validating the same card twice yields
// identical results. path locates the card file on disk and may be ""
// when validating an in-memory card, in which case animation file
// existence checks are skipped.
func Validate(card Card, characterID, path string) *ValidationResult {
	r := &ValidationResult{
		Character: characterID,
		Path:      path,
		Errors:    []string{},
		Warnings:  []string{},
	}

	r.Errors = append(r.Errors, requiredFieldErrors(card)...)
	r.Errors = append(r.Errors, assetGenerationErrors(card)...)
	r.Errors = append(r.Errors, consistencyErrors(card)...)
	if path != "" {
		r.Warnings = append(r.Warnings, animationPathWarnings(card, filepath.Dir(path))...)
	}

	if card.Name() == "" {
		r.Errors = append(r.Errors, "Character name cannot be empty")
	}
	if len(card.Description()) < 10 {
		r.Warnings = append(r.Warnings, "Character description should be more descriptive (at least 10 characters)")
	}
	if IsAbsentOrEmpty(card.Get("personality")) {
		r.Warnings = append(r.Warnings, "Character missing personality configuration")
	}

	r.Valid = len(r.Errors) == 0
	return r
}

// requiredFieldErrors checks the card's top-level structure.
func requiredFieldErrors(card Card) []string {
	var errs []string

	for _, field := range []string{"name", "description", "animations"} {
		if !card.Has(field) {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	if card.Has("animations") {
		anims := card.Animations()
		for _, name := range RequiredAnimations {
			if _, ok := anims[name]; !ok {
				errs = append(errs, fmt.Sprintf("Missing required animation: %s", name))
			}
		}
	}

	return errs
}

// assetGenerationErrors checks the assetGeneration block against the
// generator's schema.
func assetGenerationErrors(card Card) []string {
	var errs []string

	if !card.Has("assetGeneration") {
		return []string{"Missing assetGeneration configuration"}
	}
	assetGen := subMap(card, "assetGeneration")

	for _, field := range []string{"basePrompt", "animationMappings", "generationSettings"} {
		if _, ok := assetGen[field]; !ok {
			errs = append(errs, fmt.Sprintf("assetGeneration missing required field: %s", field))
		}
	}

	if raw, ok := assetGen["basePrompt"]; ok {
		prompt, _ := raw.(string)
		if len(prompt) < 50 {
			errs = append(errs, "basePrompt should be at least 50 characters for quality generation")
		}
		if !strings.Contains(strings.ToLower(prompt), assetgen.TransparencyCue) {
			errs = append(errs, "basePrompt should include 'transparent background' for proper asset generation")
		}
	}

	if raw, ok := assetGen["animationMappings"]; ok {
		mappings, _ := raw.(map[string]any)
		for _, name := range RequiredAnimations {
			mapping, ok := mappings[name].(map[string]any)
			if !ok {
				errs = append(errs, fmt.Sprintf("assetGeneration missing required animation mapping: %s", name))
				continue
			}
			if s, _ := mapping["promptModifier"].(string); s == "" {
				errs = append(errs, fmt.Sprintf("Animation %s missing promptModifier", name))
			}
			if s, _ := mapping["stateDescription"].(string); s == "" {
				errs = append(errs, fmt.Sprintf("Animation %s missing stateDescription", name))
			}
		}
	}

	if raw, ok := assetGen["generationSettings"]; ok {
		settings, _ := raw.(map[string]any)

		if model, ok := settings["model"]; !ok {
			errs = append(errs, "generationSettings missing model specification")
		} else if s, _ := model.(string); !containsString(assetgen.Models, s) {
			errs = append(errs, fmt.Sprintf("Unknown model: %v", model))
		}

		if style, ok := settings["artStyle"]; !ok {
			errs = append(errs, "generationSettings missing artStyle")
		} else if s, _ := style.(string); !containsString(assetgen.ArtStyles, s) {
			errs = append(errs, fmt.Sprintf("Unknown artStyle: %v", style))
		}

		if raw, ok := settings["resolution"]; ok {
			resolution, _ := raw.(map[string]any)
			w, hasW := asNumber(resolution["width"])
			h, hasH := asNumber(resolution["height"])
			if !hasW || !hasH {
				errs = append(errs, "resolution missing width or height")
			} else if w != 128 || h != 128 {
				errs = append(errs, "resolution should be 128x128 for desktop companion compatibility")
			}
		}
	}

	return errs
}

// consistencyErrors cross-checks subsystems that are flagged enabled
// against their companion fields, plus numeric sanity on stats.
func consistencyErrors(card Card) []string {
	var errs []string

	if backend := subMap(card, "dialogBackend"); enabled(backend) {
		backends, hasBackends := backend["backends"].(map[string]any)
		defaultBackend, hasDefault := backend["defaultBackend"].(string)
		switch {
		case !hasBackends:
			errs = append(errs, "dialogBackend enabled but no backends configured")
		case !hasDefault:
			errs = append(errs, "dialogBackend missing defaultBackend specification")
		default:
			if _, ok := backends[defaultBackend]; !ok {
				errs = append(errs, "dialogBackend defaultBackend not found in backends configuration")
			}
		}
	}

	if gifts := subMap(card, "giftSystem"); enabled(gifts) {
		if _, ok := gifts["preferences"]; !ok {
			errs = append(errs, "giftSystem enabled but preferences not configured")
		}
		if _, ok := gifts["inventorySettings"]; !ok {
			errs = append(errs, "giftSystem enabled but inventorySettings not configured")
		}
	}

	if mp := subMap(card, "multiplayer"); enabled(mp) {
		for _, field := range []string{"networkID", "networkPersonality"} {
			if _, ok := mp[field]; !ok {
				errs = append(errs, fmt.Sprintf("multiplayer enabled but missing %s", field))
			}
		}
	}

	if battle := subMap(card, "battleSystem"); enabled(battle) {
		if _, ok := battle["battleStats"]; !ok {
			errs = append(errs, "battleSystem enabled but battleStats not configured")
		}
		if _, ok := battle["availableActions"]; !ok {
			errs = append(errs, "battleSystem enabled but availableActions not configured")
		}
	}

	if stats := subMap(card, "stats"); stats != nil {
		for _, name := range sortedKeys(stats) {
			stat, ok := stats[name].(map[string]any)
			if !ok {
				continue
			}
			max, hasMax := asNumber(stat["max"])
			if initial, hasInitial := asNumber(stat["initial"]); hasInitial && hasMax && initial > max {
				errs = append(errs, fmt.Sprintf("Stat %s: initial value exceeds maximum", name))
			}
			if threshold, hasThreshold := asNumber(stat["criticalThreshold"]); hasThreshold && hasMax && threshold >= max {
				errs = append(errs, fmt.Sprintf("Stat %s: criticalThreshold should be less than maximum", name))
			}
		}
	}

	return errs
}

// animationPathWarnings checks that referenced animation files exist and
// are GIFs. Animations covered by assetGeneration.animationMappings are
// skipped: the generator can synthesize those files later, so their
// absence is not a finding.
func animationPathWarnings(card Card, cardDir string) []string {
	var warnings []string

	anims := card.Animations()
	assetGen := subMap(card, "assetGeneration")
	mappings, _ := assetGen["animationMappings"].(map[string]any)

	for _, name := range sortedKeys(anims) {
		ref, ok := anims[name].(string)
		if !ok {
			continue
		}
		if len(assetGen) > 0 {
			if _, mapped := mappings[name]; mapped {
				continue
			}
		}

		full := ref
		if !filepath.IsAbs(full) {
			full = filepath.Join(cardDir, ref)
		}
		if _, err := os.Stat(full); err != nil {
			warnings = append(warnings, fmt.Sprintf("Animation file not found: %s (for %s)", ref, name))
		} else if strings.ToLower(filepath.Ext(full)) != ".gif" {
			warnings = append(warnings, fmt.Sprintf("Animation file should be GIF format: %s", ref))
		}
	}

	return warnings
}

// enabled reports whether a subsystem block carries enabled == true.
func enabled(block map[string]any) bool {
	if block == nil {
		return false
	}
	v, _ := block["enabled"].(bool)
	return v
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
