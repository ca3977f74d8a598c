package assetgen

import "time"

// Synthesize composes a complete asset-generation config for one card:
// classify the archetype from the card's identity signals, look up its
// base prompt, merge the animation catalog over the card's existing
// animation names, and attach the fixed generation, metadata, and backup
// blocks. The clock is explicit so callers (and tests) control the
// generatedAt stamp.
func Synthesize(name, description, pathHint string, animationNames []string, now time.Time) *AssetConfig {
	archetype := Classify(name, description, pathHint)
	return SynthesizeFor(archetype, animationNames, now)
}

// SynthesizeFor builds the config for an already-resolved archetype.
func SynthesizeFor(archetype Archetype, animationNames []string, now time.Time) *AssetConfig {
	profile := GetProfile(archetype)
	return &AssetConfig{
		BasePrompt:         profile.BasePrompt,
		AnimationMappings:  MergeAnimations(animationNames, archetype),
		GenerationSettings: DefaultGenerationSettings(),
		AssetMetadata:      NewAssetMetadata(now),
		BackupSettings:     DefaultBackupSettings(),
	}
}
