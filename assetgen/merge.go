package assetgen

// archetypeAnimations lists archetype-exclusive states injected during
// merge when the card does not already define them.
var archetypeAnimations = map[Archetype][]string{
	ArchetypeAriaLuna:   {"magical", "sleeping"},
	ArchetypeSpecialist: {"sleeping"},
}

// MergeAnimations builds the complete animationMappings table for a card.
// Every existing animation name receives a descriptor (catalog entry if
// known, generic otherwise), the core set is always filled from the
// catalog, and archetype-exclusive states are added when absent. The
// merge is additive only: nothing present in the input is ever dropped,
// and re-running it on its own key set is a fixed point.
func MergeAnimations(existing []string, archetype Archetype) map[string]AnimationDescriptor {
	mappings := make(map[string]AnimationDescriptor, len(existing)+len(CoreAnimations))

	for _, name := range existing {
		if d, ok := CatalogDescriptor(name); ok {
			mappings[name] = d
			continue
		}
		mappings[name] = GenericDescriptor(name)
	}

	for _, name := range CoreAnimations {
		if _, ok := mappings[name]; !ok {
			d, _ := CatalogDescriptor(name)
			mappings[name] = d
		}
	}

	for _, name := range archetypeAnimations[archetype] {
		if _, ok := mappings[name]; !ok {
			d, _ := CatalogDescriptor(name)
			mappings[name] = d
		}
	}

	return mappings
}
