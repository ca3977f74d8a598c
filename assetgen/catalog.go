package assetgen

import "fmt"

// CoreAnimations is the minimal animation set every synthesized config
// must map, whether or not the card defines assets for them.
var CoreAnimations = []string{"idle", "talking", "happy", "sad", "hungry", "eating"}

// catalog is the canonical animation-name → descriptor registry. Prompt
// text is wire format shared with already-generated assets.
var catalog = map[string]AnimationDescriptor{
	"idle": {
		PromptModifier:   "standing calmly with arms at sides, peaceful neutral expression, slight smile, relaxed pose",
		NegativePrompt:   "angry, aggressive, dark, scary, low quality, blurry",
		StateDescription: "Default calm state",
		FrameCount:       6,
	},
	"talking": {
		PromptModifier:   "speaking with hand gestures, mouth slightly open, expressive face, animated pose, welcoming expression",
		NegativePrompt:   "silent, static, angry expression, dark mood",
		StateDescription: "Speaking or interacting with user",
		FrameCount:       8,
	},
	"happy": {
		PromptModifier:   "bright cheerful smile, eyes sparkling with joy, hands clasped together or raised, radiant expression",
		NegativePrompt:   "sad, angry, neutral expression, dark colors",
		StateDescription: "Joyful and excited state",
		FrameCount:       6,
	},
	"sad": {
		PromptModifier:   "downcast eyes, gentle frown, hand touching cheek or covering face, melancholic but still beautiful",
		NegativePrompt:   "happy, cheerful, bright colors, aggressive",
		StateDescription: "Sad or disappointed state",
		FrameCount:       4,
	},
	"hungry": {
		PromptModifier:   "looking longingly at food, hand on stomach, slightly droopy expression, cute hungry pose",
		NegativePrompt:   "full, satisfied, eating, aggressive",
		StateDescription: "Hungry and wanting food",
		FrameCount:       5,
	},
	"eating": {
		PromptModifier:   "eating food happily, content expression, food in hands or near mouth, satisfied pose",
		NegativePrompt:   "hungry, sad, empty hands, aggressive",
		StateDescription: "Eating and satisfied",
		FrameCount:       6,
	},
	"blushing": {
		PromptModifier:   "soft pink blush on cheeks, shy smile, one hand near face, averting gaze slightly, cute embarrassed expression",
		NegativePrompt:   "confident, bold, angry, dark mood",
		StateDescription: "Shy and blushing romantic state",
		FrameCount:       5,
	},
	"heart_eyes": {
		PromptModifier:   "heart-shaped pupils or sparkles in eyes, loving expression, hands near heart, surrounded by floating hearts",
		NegativePrompt:   "normal eyes, angry, sad, dark mood",
		StateDescription: "In love or adoring state",
		FrameCount:       6,
	},
	"shy": {
		PromptModifier:   "looking down shyly, hands clasped behind back or in front, timid expression, cute shy pose",
		NegativePrompt:   "confident, bold, outgoing, aggressive",
		StateDescription: "Timid and shy state",
		FrameCount:       4,
	},
	"flirty": {
		PromptModifier:   "playful wink or flirty smile, confident pose, one hand on hip or touching hair, charming expression",
		NegativePrompt:   "shy, timid, serious, angry",
		StateDescription: "Flirty and charming state",
		FrameCount:       7,
	},
	"romantic_idle": {
		PromptModifier:   "gentle romantic expression, soft smile, dreamy eyes, peaceful romantic pose",
		NegativePrompt:   "aggressive, angry, rushed, unromantic",
		StateDescription: "Peaceful romantic state",
		FrameCount:       5,
	},
	"jealous": {
		PromptModifier:   "slightly pouting expression, arms crossed, looking away with subtle jealous expression",
		NegativePrompt:   "happy, content, peaceful, aggressive",
		StateDescription: "Jealous or envious state",
		FrameCount:       4,
	},
	"excited_romance": {
		PromptModifier:   "excited happy expression with romantic sparkles, jumping or energetic pose, love-struck appearance",
		NegativePrompt:   "calm, sad, angry, static",
		StateDescription: "Excited romantic state",
		FrameCount:       8,
	},
	"magical": {
		PromptModifier:   "casting magic spell, hands glowing with celestial energy, intense concentration, robes flowing dramatically, magical circles and symbols",
		StateDescription: "Using magical powers",
		FrameCount:       10,
		CustomSettings: map[string]any{
			"qualitySettings": map[string]any{
				"steps":    30,
				"cfgScale": 8.0,
			},
		},
	},
	"sleeping": {
		PromptModifier:   "peaceful sleeping pose, eyes closed, serene expression, sitting or reclining position, soft glow",
		StateDescription: "Resting or sleeping state",
		FrameCount:       4,
	},
	"thinking": {
		PromptModifier:   "thoughtful expression, hand near chin, contemplative pose, focused look",
		StateDescription: "Thinking or processing information",
		FrameCount:       5,
	},
	"excited": {
		PromptModifier:   "energetic bouncing motion, wide smile, enthusiastic pose, dynamic expression",
		StateDescription: "Excited and energetic state",
		FrameCount:       8,
	},
	"reading": {
		PromptModifier:   "reading a book or document, focused expression, holding reading material, intellectual pose",
		StateDescription: "Reading or studying information",
		FrameCount:       6,
	},
	"critical": {
		PromptModifier:   "stern or disapproving expression, arms crossed, serious demeanor, demanding pose",
		StateDescription: "Critical or demanding state",
		FrameCount:       5,
	},
	"demanding": {
		PromptModifier:   "authoritative pose, pointing gesture, expectant expression, commanding presence",
		StateDescription: "Making demands or requests",
		FrameCount:       6,
	},
	"boost": {
		PromptModifier:   "energized and motivated expression, fist pump or celebratory pose, boosted confidence",
		StateDescription: "Boosted or energized state",
		FrameCount:       7,
	},
	"comforting": {
		PromptModifier:   "gentle caring expression, open arms, nurturing pose, warm and supportive demeanor",
		StateDescription: "Providing comfort and support",
		FrameCount:       6,
	},
	"caring": {
		PromptModifier:   "attentive and loving expression, reaching out gesture, caring pose, protective stance",
		StateDescription: "Showing care and concern",
		FrameCount:       5,
	},
	"attack": {
		PromptModifier:   "dynamic attack pose, concentrated expression, action stance, power effects",
		StateDescription: "Attacking in battle",
		FrameCount:       8,
	},
	"defend": {
		PromptModifier:   "defensive stance, protective pose, focused expression, shield or guard position",
		StateDescription: "Defending in battle",
		FrameCount:       6,
	},
	"heal": {
		PromptModifier:   "gentle healing pose, hands glowing with soft light, caring expression, restorative energy",
		StateDescription: "Healing or supporting",
		FrameCount:       7,
	},
	"victory": {
		PromptModifier:   "triumphant pose, victory sign or raised fist, celebratory expression, winner stance",
		StateDescription: "Celebrating victory",
		FrameCount:       8,
	},
	"defeat": {
		PromptModifier:   "disappointed but graceful expression, hand on heart, accepting pose, respectful demeanor",
		StateDescription: "Accepting defeat gracefully",
		FrameCount:       5,
	},
	"special": {
		PromptModifier:   "charging special ability, concentrated energy gathering, dramatic pose, power buildup",
		StateDescription: "Preparing special attack",
		FrameCount:       10,
	},
}

// CatalogDescriptor looks up the canonical descriptor for an animation
// name. The returned descriptor is a copy; mutating it does not touch
// the registry.
func CatalogDescriptor(name string) (AnimationDescriptor, bool) {
	d, ok := catalog[name]
	if !ok {
		return AnimationDescriptor{}, false
	}
	return cloneDescriptor(d), true
}

// GenericDescriptor synthesizes a usable descriptor for an animation name
// the catalog does not know, so unknown states are never left unmapped.
func GenericDescriptor(name string) AnimationDescriptor {
	return AnimationDescriptor{
		PromptModifier:   fmt.Sprintf("expressive pose and animation for %s state, character showing %s emotion or action", name, name),
		StateDescription: fmt.Sprintf("Character in %s state", name),
		FrameCount:       6,
	}
}

func cloneDescriptor(d AnimationDescriptor) AnimationDescriptor {
	out := d
	if d.CustomSettings != nil {
		out.CustomSettings = cloneMap(d.CustomSettings)
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}
