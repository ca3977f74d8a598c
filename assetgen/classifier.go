package assetgen

import "strings"

// rule is one substring check in a precedence list. Subrules refine the
// coarse tag and are checked before it: a path with both "tsundere" and
// "romance" classifies as romance_tsundere, not tsundere.
type rule struct {
	match     []string // any-of substrings
	archetype Archetype
	subrules  []rule
}

// pathRules is the precedence list applied to the file-path hint. File
// placement is a stronger signal than free text, so these run first.
// Order matters: first match wins.
var pathRules = []rule{
	{match: []string{"aria_luna"}, archetype: ArchetypeAriaLuna},
	{match: []string{"tsundere"}, archetype: ArchetypeTsundere, subrules: []rule{
		{match: []string{"romance"}, archetype: ArchetypeRomanceTsundere},
	}},
	{match: []string{"flirty"}, archetype: ArchetypeFlirty, subrules: []rule{
		{match: []string{"romance"}, archetype: ArchetypeRomanceFlirty},
	}},
	{match: []string{"slow_burn", "slowburn"}, archetype: ArchetypeSlowBurn, subrules: []rule{
		{match: []string{"romance"}, archetype: ArchetypeRomanceSlowburn},
	}},
	{match: []string{"supportive"}, archetype: ArchetypeRomanceSupportive},
	{match: []string{"romance"}, archetype: ArchetypeRomance},
	{match: []string{"klippy"}, archetype: ArchetypeKlippy},
	{match: []string{"easy"}, archetype: ArchetypeEasy},
	{match: []string{"normal"}, archetype: ArchetypeNormal},
	{match: []string{"hard"}, archetype: ArchetypeHard},
	{match: []string{"challenge"}, archetype: ArchetypeChallenge},
	{match: []string{"specialist"}, archetype: ArchetypeSpecialist},
	{match: []string{"multiplayer"}, archetype: ArchetypeMultiplayer, subrules: []rule{
		{match: []string{"helper"}, archetype: ArchetypeHelperBot},
		{match: []string{"social"}, archetype: ArchetypeSocialBot},
		{match: []string{"group", "moderator"}, archetype: ArchetypeGroupModerator},
		{match: []string{"shy"}, archetype: ArchetypeShyCompanion},
	}},
	{match: []string{"markov"}, archetype: ArchetypeMarkovExample},
	{match: []string{"llm"}, archetype: ArchetypeLLMExample},
	{match: []string{"news"}, archetype: ArchetypeNewsExample},
}

// textRules is the precedence list applied to name+description when the
// path yields no signal.
var textRules = []rule{
	{match: []string{"tsundere"}, archetype: ArchetypeTsundere},
	{match: []string{"flirty"}, archetype: ArchetypeFlirty},
	{match: []string{"shy"}, archetype: ArchetypeShyCompanion},
	{match: []string{"romance"}, archetype: ArchetypeRomance},
	{match: []string{"multiplayer", "social"}, archetype: ArchetypeMultiplayer},
	{match: []string{"news"}, archetype: ArchetypeNewsExample},
	{match: []string{"helper"}, archetype: ArchetypeHelperBot},
}

// Classify infers a card's archetype from its identity signals: the file
// path hint first, then name and description. It is total; absence of
// signal degrades to the default archetype, never to an error.
func Classify(name, description, pathHint string) Archetype {
	if a, ok := matchRules(pathRules, strings.ToLower(pathHint)); ok {
		return a
	}
	text := strings.ToLower(name + " " + description)
	if a, ok := matchRules(textRules, text); ok {
		return a
	}
	return ArchetypeDefault
}

func matchRules(rules []rule, s string) (Archetype, bool) {
	if s == "" {
		return "", false
	}
	for _, r := range rules {
		if !containsAny(s, r.match) {
			continue
		}
		for _, sub := range r.subrules {
			if containsAny(s, sub.match) {
				return sub.archetype, true
			}
		}
		return r.archetype, true
	}
	return "", false
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
