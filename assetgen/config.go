package assetgen

import (
	"encoding/json"
	"fmt"
	"time"
)

// Models accepted by the downstream gif-generator pipeline.
var Models = []string{"flux1d", "flux1s", "sdxl"}

// ArtStyles accepted by the downstream gif-generator pipeline.
var ArtStyles = []string{"anime", "pixel_art", "realistic", "cartoon", "chibi"}

// TransparencyCue is the phrase every base prompt must carry so generated
// frames composite cleanly on the desktop.
const TransparencyCue = "transparent background"

// AnimationDescriptor is the per-state generation metadata for one named
// animation: what to render, how many frames, and optional per-state
// overrides of the generation settings.
type AnimationDescriptor struct {
	PromptModifier   string         `json:"promptModifier"`
	NegativePrompt   string         `json:"negativePrompt,omitempty"`
	StateDescription string         `json:"stateDescription"`
	FrameCount       int            `json:"frameCount"`
	CustomSettings   map[string]any `json:"customSettings,omitempty"`
}

// Resolution is the output frame size. Desktop companion sprites are
// fixed at 128x128.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// QualitySettings tune the diffusion pass.
type QualitySettings struct {
	Steps     int     `json:"steps"`
	CFGScale  float64 `json:"cfgScale"`
	Seed      int     `json:"seed"`
	Sampler   string  `json:"sampler"`
	Scheduler string  `json:"scheduler"`
}

// AnimationSettings tune GIF assembly.
type AnimationSettings struct {
	FrameRate           int     `json:"frameRate"`
	Duration            float64 `json:"duration"`
	LoopType            string  `json:"loopType"`
	Optimization        string  `json:"optimization"`
	MaxFileSize         int     `json:"maxFileSize"`
	TransparencyEnabled bool    `json:"transparencyEnabled"`
	ColorPalette        string  `json:"colorPalette"`
}

// GenerationSettings is the model/style/resolution block of an AssetConfig.
type GenerationSettings struct {
	Model             string            `json:"model"`
	ArtStyle          string            `json:"artStyle"`
	Resolution        Resolution        `json:"resolution"`
	QualitySettings   QualitySettings   `json:"qualitySettings"`
	AnimationSettings AnimationSettings `json:"animationSettings"`
}

// AssetMetadata records provenance of a synthesized config.
type AssetMetadata struct {
	Version     string `json:"version"`
	GeneratedAt string `json:"generatedAt"`
	GeneratedBy string `json:"generatedBy"`
}

// BackupSettings control pre-rewrite backups of the card file.
type BackupSettings struct {
	Enabled         bool   `json:"enabled"`
	BackupPath      string `json:"backupPath"`
	MaxBackups      int    `json:"maxBackups"`
	CompressBackups bool   `json:"compressBackups"`
}

// AssetConfig is the complete assetGeneration block of a character card.
// Field names and enum values are wire format shared with existing card
// documents and must not change.
type AssetConfig struct {
	BasePrompt         string                         `json:"basePrompt"`
	AnimationMappings  map[string]AnimationDescriptor `json:"animationMappings"`
	GenerationSettings GenerationSettings             `json:"generationSettings"`
	AssetMetadata      AssetMetadata                  `json:"assetMetadata"`
	BackupSettings     BackupSettings                 `json:"backupSettings"`
}

// DefaultGenerationSettings returns the fixed generation settings attached
// to every synthesized config.
func DefaultGenerationSettings() GenerationSettings {
	return GenerationSettings{
		Model:    "flux1d",
		ArtStyle: "anime",
		Resolution: Resolution{
			Width:  128,
			Height: 128,
		},
		QualitySettings: QualitySettings{
			Steps:     25,
			CFGScale:  7.5,
			Seed:      -1,
			Sampler:   "euler_a",
			Scheduler: "normal",
		},
		AnimationSettings: AnimationSettings{
			FrameRate:           12,
			Duration:            2.5,
			LoopType:            "seamless",
			Optimization:        "balanced",
			MaxFileSize:         450,
			TransparencyEnabled: true,
			ColorPalette:        "adaptive",
		},
	}
}

// DefaultBackupSettings returns the fixed backup policy attached to every
// synthesized config.
func DefaultBackupSettings() BackupSettings {
	return BackupSettings{
		Enabled:         true,
		BackupPath:      "backups",
		MaxBackups:      5,
		CompressBackups: true,
	}
}

// NewAssetMetadata stamps provenance with the given clock.
func NewAssetMetadata(now time.Time) AssetMetadata {
	return AssetMetadata{
		Version:     "1.0.0",
		GeneratedAt: now.UTC().Format(time.RFC3339),
		GeneratedBy: "gif-generator v1.0.0",
	}
}

// ToMap round-trips the config through JSON so it can be merged into a
// raw card document without leaking typed structs into the map model.
func (c *AssetConfig) ToMap() (map[string]any, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal asset config: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal asset config: %w", err)
	}
	return m, nil
}
