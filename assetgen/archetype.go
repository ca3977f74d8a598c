package assetgen

import "sort"

// Archetype is a closed-enumeration personality tag. It selects the base
// prompt and trait list used when synthesizing a card's asset config.
type Archetype string

const (
	ArchetypeDefault           Archetype = "default"
	ArchetypeTsundere          Archetype = "tsundere"
	ArchetypeRomanceTsundere   Archetype = "romance_tsundere"
	ArchetypeFlirty            Archetype = "flirty"
	ArchetypeRomanceFlirty     Archetype = "romance_flirty"
	ArchetypeSlowBurn          Archetype = "slow_burn"
	ArchetypeRomanceSlowburn   Archetype = "romance_slowburn"
	ArchetypeRomanceSupportive Archetype = "romance_supportive"
	ArchetypeRomance           Archetype = "romance"
	ArchetypeKlippy            Archetype = "klippy"
	ArchetypeAriaLuna          Archetype = "aria_luna"
	ArchetypeEasy              Archetype = "easy"
	ArchetypeNormal            Archetype = "normal"
	ArchetypeHard              Archetype = "hard"
	ArchetypeChallenge         Archetype = "challenge"
	ArchetypeSpecialist        Archetype = "specialist"
	ArchetypeMultiplayer       Archetype = "multiplayer"
	ArchetypeHelperBot         Archetype = "helper_bot"
	ArchetypeSocialBot         Archetype = "social_bot"
	ArchetypeGroupModerator    Archetype = "group_moderator"
	ArchetypeShyCompanion      Archetype = "shy_companion"
	ArchetypeMarkovExample     Archetype = "markov_example"
	ArchetypeLLMExample        Archetype = "llm_example"
	ArchetypeNewsExample       Archetype = "news_example"
)

// Profile is the registry entry for one archetype: the base prompt fed to
// the image model plus the personality traits the archetype implies.
type Profile struct {
	BasePrompt string
	Traits     []string
}

// registry maps every archetype to its generation profile. Prompt strings
// are wire format shared with already-generated assets; edit with care.
var registry = map[Archetype]Profile{
	ArchetypeDefault: {
		BasePrompt: "A friendly anime character with short brown hair and warm brown eyes, cute casual clothing, cheerful and approachable appearance, digital art, transparent background, high quality character design suitable for desktop companion",
		Traits:     []string{"friendly", "cheerful", "approachable", "casual"},
	},
	ArchetypeTsundere: {
		BasePrompt: "A cute anime girl with twin tails and orange/red hair, bright eyes, school uniform or casual dress, tsundere expression with slight blush, arms crossed or hands on hips, digital art, transparent background, high quality anime character design",
		Traits:     []string{"tsundere", "proud", "defensive", "cute"},
	},
	ArchetypeRomanceTsundere: {
		BasePrompt: "A beautiful anime girl with flowing hair and expressive eyes, elegant clothing with romantic touches, tsundere personality showing subtle romantic interest, digital art, transparent background, high quality romantic character design",
		Traits:     []string{"romantic", "tsundere", "elegant", "expressive"},
	},
	ArchetypeFlirty: {
		BasePrompt: "A charming anime girl with vibrant hair and sparkling eyes, stylish outfit with playful accessories, confident and flirty expression, welcoming pose, digital art, transparent background, high quality character design for romance companion",
		Traits:     []string{"flirty", "confident", "charming", "playful"},
	},
	ArchetypeRomanceFlirty: {
		BasePrompt: "A stunning anime girl with flowing colorful hair and bright eyes, fashionable romantic outfit, confident flirty smile and pose, romantic accessories, digital art, transparent background, high quality romantic character design",
		Traits:     []string{"romantic", "flirty", "confident", "stunning"},
	},
	ArchetypeSlowBurn: {
		BasePrompt: "A gentle anime character with soft features and calm eyes, modest comfortable clothing, thoughtful and reserved expression, peaceful demeanor, digital art, transparent background, high quality character design for slow romance",
		Traits:     []string{"gentle", "thoughtful", "reserved", "peaceful"},
	},
	ArchetypeRomanceSlowburn: {
		BasePrompt: "A graceful anime character with elegant features and deep eyes, sophisticated clothing with subtle romantic touches, contemplative and gentle expression, digital art, transparent background, high quality romantic character design",
		Traits:     []string{"graceful", "elegant", "contemplative", "romantic"},
	},
	ArchetypeRomanceSupportive: {
		BasePrompt: "A warm anime character with kind eyes and soft smile, comfortable caring outfit, supportive and nurturing expression, open welcoming pose, digital art, transparent background, high quality character design for supportive romance",
		Traits:     []string{"supportive", "nurturing", "kind", "warm"},
	},
	ArchetypeRomance: {
		BasePrompt: "A romantic anime character with beautiful features and loving eyes, elegant romantic outfit with soft colors, gentle romantic expression, graceful pose, digital art, transparent background, high quality character design for romance experience",
		Traits:     []string{"romantic", "beautiful", "loving", "elegant"},
	},
	ArchetypeKlippy: {
		BasePrompt: "A stylized anime version of a paperclip character with anthropomorphic features, metallic silver-blue coloring, expressive eyes, slightly sarcastic but helpful expression, digital art, transparent background, unique character design",
		Traits:     []string{"sarcastic", "helpful", "unique", "metallic"},
	},
	ArchetypeAriaLuna: {
		BasePrompt: "A beautiful anime girl with long flowing silver hair and bright purple eyes, wearing a flowing celestial robe with star patterns, ethereal and mystical appearance, digital art, transparent background, high quality, detailed character design suitable for desktop companion, magical aura, soft lighting",
		Traits:     []string{"mystical", "celestial", "magical", "ethereal"},
	},
	ArchetypeEasy: {
		BasePrompt: "A sweet anime character with soft features and bright eyes, simple comfortable clothing, happy and easy-going expression, relaxed pose, digital art, transparent background, high quality character design for beginner-friendly companion",
		Traits:     []string{"sweet", "easy-going", "relaxed", "simple"},
	},
	ArchetypeNormal: {
		BasePrompt: "A balanced anime character with pleasant features and friendly eyes, normal casual clothing, moderate expression showing contentment, standard pose, digital art, transparent background, high quality character design for balanced experience",
		Traits:     []string{"balanced", "pleasant", "moderate", "content"},
	},
	ArchetypeHard: {
		BasePrompt: "A sophisticated anime character with sharp features and intense eyes, formal or complex clothing, demanding or high-maintenance expression, confident pose, digital art, transparent background, high quality character design for challenging experience",
		Traits:     []string{"sophisticated", "demanding", "intense", "challenging"},
	},
	ArchetypeChallenge: {
		BasePrompt: "An elite anime character with striking features and piercing eyes, luxurious or complex outfit, proud and challenging expression, commanding pose, digital art, transparent background, high quality character design for expert-level experience",
		Traits:     []string{"elite", "challenging", "commanding", "proud"},
	},
	ArchetypeSpecialist: {
		BasePrompt: "A sleepy anime character with drowsy features and tired but cute eyes, comfortable pajamas or cozy clothing, sleepy expression with slight smile, relaxed sleepy pose, digital art, transparent background, high quality character design for energy-focused gameplay",
		Traits:     []string{"sleepy", "cozy", "tired", "cute"},
	},
	ArchetypeMultiplayer: {
		BasePrompt: "A social anime character with expressive features and bright eyes, casual social outfit with fun accessories, friendly communicative expression, open social pose, digital art, transparent background, high quality character design for multiplayer interaction",
		Traits:     []string{"social", "communicative", "friendly", "expressive"},
	},
	ArchetypeHelperBot: {
		BasePrompt: "A helpful anime character with kind features and bright eyes, assistant-style outfit, eager-to-help expression, supportive pose, digital art, transparent background, high quality character design for helpful multiplayer bot",
		Traits:     []string{"helpful", "kind", "eager", "supportive"},
	},
	ArchetypeSocialBot: {
		BasePrompt: "A social anime character with animated features and sparkling eyes, trendy social outfit, chatty and friendly expression, welcoming pose, digital art, transparent background, high quality character design for social multiplayer bot",
		Traits:     []string{"social", "chatty", "trendy", "friendly"},
	},
	ArchetypeGroupModerator: {
		BasePrompt: "An organized anime character with confident features and attentive eyes, moderator-style outfit, responsible and coordinating expression, leadership pose, digital art, transparent background, high quality character design for group management bot",
		Traits:     []string{"organized", "responsible", "confident", "coordinating"},
	},
	ArchetypeShyCompanion: {
		BasePrompt: "A quiet anime character with gentle features and soft eyes, modest comfortable clothing, shy but warm expression, reserved pose, digital art, transparent background, high quality character design for introverted companion",
		Traits:     []string{"shy", "gentle", "quiet", "warm"},
	},
	ArchetypeMarkovExample: {
		BasePrompt: "An intelligent anime character with thoughtful features and curious eyes, smart casual outfit, contemplative expression showing intelligence, digital art, transparent background, high quality character design for AI-powered dialog system",
		Traits:     []string{"intelligent", "thoughtful", "curious", "analytical"},
	},
	ArchetypeLLMExample: {
		BasePrompt: "A futuristic anime character with tech-savvy features and bright eyes, modern outfit with tech accessories, intelligent expression, digital art, transparent background, high quality character design for LLM integration",
		Traits:     []string{"futuristic", "tech-savvy", "intelligent", "modern"},
	},
	ArchetypeNewsExample: {
		BasePrompt: "A knowledgeable anime character with sharp features and attentive eyes, professional casual outfit, informed and alert expression, digital art, transparent background, high quality character design for news and information features",
		Traits:     []string{"knowledgeable", "professional", "informed", "alert"},
	},
}

// GetProfile returns the registry entry for an archetype, falling back to
// the default profile for tags the registry does not know.
func GetProfile(a Archetype) Profile {
	if p, ok := registry[a]; ok {
		return p
	}
	return registry[ArchetypeDefault]
}

// Archetypes returns every registered archetype tag, sorted.
func Archetypes() []Archetype {
	tags := make([]Archetype, 0, len(registry))
	for a := range registry {
		tags = append(tags, a)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
