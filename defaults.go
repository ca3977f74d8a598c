package cardkit

import "fmt"

// Default subsystem stubs injected by the feature completer. These mirror
// the minimal configurations the desktop companion ships with; values are
// wire format shared with existing card documents.

func defaultRandomEvents() []any {
	return []any{
		map[string]any{
			"name":        "spontaneous_moment",
			"description": "A delightful spontaneous interaction",
			"probability": 0.05,
			"effects":     map[string]any{"happiness": 10, "affection": 5},
			"animations":  []any{"happy", "talking"},
			"responses": []any{
				"What a lovely surprise! I'm so happy to share this moment with you! 😊",
				"Life is full of wonderful unexpected moments like this! ✨",
				"These spontaneous times together are what I treasure most! 💕",
			},
			"cooldown": 1800,
		},
	}
}

// defaultDialogBackend is self-consistent: defaultBackend always names a
// key configured under backends.
func defaultDialogBackend() map[string]any {
	return map[string]any{
		"enabled":             true,
		"defaultBackend":      "markov_chain",
		"fallbackChain":       []any{"simple_random"},
		"confidenceThreshold": 0.6,
		"backends": map[string]any{
			"markov_chain": map[string]any{
				"chainOrder":     2,
				"minWords":       3,
				"maxWords":       12,
				"temperatureMin": 0.4,
				"temperatureMax": 0.7,
				"usePersonality": true,
				"trainingData": []any{
					"Hello! I'm so happy to see you again!",
					"How are you doing today? You look wonderful!",
					"Thanks for visiting me! I love spending time with you.",
					"Your presence always brightens my day!",
					"What would you like to talk about today?",
					"I'm here if you need someone to chat with!",
				},
			},
		},
	}
}

func defaultGiftSystem() map[string]any {
	return map[string]any{
		"enabled": true,
		"inventorySettings": map[string]any{
			"maxSlots":     8,
			"autoSort":     true,
			"stackSimilar": true,
		},
		"preferences": map[string]any{
			"favoriteCategories": []any{"food", "flowers", "books"},
			"personalityModifiers": map[string]any{
				"food":    1.3,
				"flowers": 1.5,
				"books":   1.2,
			},
		},
		"memorySettings": map[string]any{
			"rememberGifts":    true,
			"trackPreferences": true,
			"learningEnabled":  true,
		},
	}
}

func defaultMultiplayer(characterID string) map[string]any {
	return map[string]any{
		"enabled":            true,
		"botCapable":         false,
		"networkID":          fmt.Sprintf("%s_companion_v1", characterID),
		"maxPeers":           5,
		"socialLevel":        "moderate",
		"networkPersonality": "friendly",
	}
}

func defaultNewsFeatures() map[string]any {
	return map[string]any{
		"enabled":             true,
		"updateInterval":      1800,
		"maxStoredItems":      20,
		"readingPersonality":  "casual",
		"preferredCategories": []any{"general", "lifestyle"},
		"feeds":               []any{},
	}
}

func defaultBattleSystem() map[string]any {
	return map[string]any{
		"enabled":      true,
		"aiDifficulty": "balanced",
		"battleStats": map[string]any{
			"hp":      map[string]any{"base": 75, "growth": 2.5},
			"attack":  map[string]any{"base": 12, "growth": 1.8},
			"defense": map[string]any{"base": 10, "growth": 2.0},
			"speed":   map[string]any{"base": 8, "growth": 1.5},
		},
		"availableActions": []any{"attack", "defend", "heal"},
	}
}

func defaultGeneralEvents() []any {
	return []any{
		map[string]any{
			"name":        "friendly_chat",
			"description": "A casual conversation moment",
			"responses": []any{
				"I've been thinking about our friendship today! 😊",
				"What's been on your mind lately?",
				"I love our little conversations!",
			},
			"choices": []any{
				map[string]any{
					"text":      "Share your thoughts",
					"effects":   map[string]any{"happiness": 5, "affection": 3},
					"responses": []any{"Thank you for sharing! I really appreciate that! 💕"},
					"animation": "happy",
				},
			},
			"cooldown": 3600,
			"category": "conversation",
		},
	}
}

func defaultProgression() map[string]any {
	return map[string]any{
		"levels": []any{
			map[string]any{
				"name":        "New Friend",
				"requirement": map[string]any{"age": 0},
				"size":        128,
			},
			map[string]any{
				"name":        "Good Friend",
				"requirement": map[string]any{"age": 86400, "affection": 20},
				"size":        132,
			},
			map[string]any{
				"name":        "Close Friend",
				"requirement": map[string]any{"age": 259200, "affection": 45, "trust": 30},
				"size":        136,
			},
		},
	}
}

func defaultBehavior() map[string]any {
	return map[string]any{
		"idleTimeout":     30,
		"movementEnabled": true,
		"defaultSize":     128,
	}
}
