package cardkit

// ──────────────────────────────────────────────
// assetgen re-exports — stable public API
// ──────────────────────────────────────────────
//
// Re-exports the most commonly used asset-generation types so callers
// can stay on the root package:
//
//	cfg := cardkit.Synthesize("Aria", "a mystical guide", "", nil, time.Now())
//
// For the full API (registry, catalog, merge internals), import the
// sub-package directly:
//
//	import "github.com/opd-ai/cardkit-go/assetgen"

import "github.com/opd-ai/cardkit-go/assetgen"

// ─── Core types ───

// Archetype is the closed-enumeration personality tag.
type Archetype = assetgen.Archetype

// AssetConfig is the complete assetGeneration block of a card.
type AssetConfig = assetgen.AssetConfig

// AnimationDescriptor is per-named-state generation metadata.
type AnimationDescriptor = assetgen.AnimationDescriptor

// ─── Operations ───

// Classify infers a card's archetype from its identity signals.
var Classify = assetgen.Classify

// MergeAnimations builds the complete animation mapping table.
var MergeAnimations = assetgen.MergeAnimations

// Synthesize composes a complete asset-generation config.
var Synthesize = assetgen.Synthesize
