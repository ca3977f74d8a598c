package cardkit

import (
	"time"

	"github.com/opd-ai/cardkit-go/assetgen"
)

// SubsystemKeys is the fixed completion order. assetGeneration is first
// and special-cased: it is synthesized from the card's own signals, and
// only when the key is wholly absent — an existing but empty block is a
// deliberate opt-out, not a hole.
var SubsystemKeys = []string{
	"assetGeneration",
	"randomEvents",
	"dialogBackend",
	"giftSystem",
	"multiplayer",
	"newsFeatures",
	"battleSystem",
	"generalEvents",
	"progression",
	"behavior",
}

// CompleteFeatures backfills missing subsystem configuration on a card,
// mutating it in place. Every key in SubsystemKeys that is absent or
// empty receives its default stub; keys with a present, non-empty value
// are never touched. characterID seeds identity-derived defaults (the
// multiplayer network ID, the archetype lookup for a synthesized asset
// config). Returns the keys that were injected, in completion order.
// Running it twice is a no-op the second time.
func CompleteFeatures(card Card, characterID string, now time.Time) []string {
	var injected []string

	for _, key := range SubsystemKeys {
		switch key {
		case "assetGeneration":
			if card.Has(key) {
				continue
			}
			cfg := assetgen.Synthesize(card.Name(), card.Description(), characterID, card.AnimationNames(), now)
			m, err := cfg.ToMap()
			if err != nil {
				// A fixed config that fails to marshal is a programming
				// error; skip the key rather than abort the card.
				continue
			}
			card.Set(key, m)
		case "randomEvents":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultRandomEvents())
		case "dialogBackend":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultDialogBackend())
		case "giftSystem":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultGiftSystem())
		case "multiplayer":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultMultiplayer(characterID))
		case "newsFeatures":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultNewsFeatures())
		case "battleSystem":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultBattleSystem())
		case "generalEvents":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultGeneralEvents())
		case "progression":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultProgression())
		case "behavior":
			if !IsAbsentOrEmpty(card.Get(key)) {
				continue
			}
			card.Set(key, defaultBehavior())
		}
		injected = append(injected, key)
	}

	return injected
}

// RegenerateAssetConfig synthesizes a fresh assetGeneration block and
// replaces whatever the card had. Unlike CompleteFeatures this is an
// overwrite: asset configs are meant to be regenerable from current
// catalog and registry state, while subsystem defaults must never
// clobber user edits.
func RegenerateAssetConfig(card Card, pathHint string, now time.Time) (assetgen.Archetype, error) {
	archetype := assetgen.Classify(card.Name(), card.Description(), pathHint)
	cfg := assetgen.SynthesizeFor(archetype, card.AnimationNames(), now)
	m, err := cfg.ToMap()
	if err != nil {
		return archetype, err
	}
	card.Set("assetGeneration", m)
	return archetype, nil
}
