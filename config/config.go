package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration tree
type Config struct {
	Game  GameConfig  `json:"game" mapstructure:"game"`
	Court CourtConfig `json:"court" mapstructure:"court"`
	Store StoreConfig `json:"store" mapstructure:"store"`
	Web   WebConfig   `json:"web" mapstructure:"web"`
	Log   LogConfig   `json:"log" mapstructure:"log"`
	Audio AudioConfig `json:"audio" mapstructure:"audio"`
}

// GameConfig holds gesture and shot tuning
type GameConfig struct {
	// Gesture to force mapping
	ScreenScale      float64 `json:"screenScale" mapstructure:"screenScale"`
	Strength         float64 `json:"strength" mapstructure:"strength"`
	MinSwipeDistance float64 `json:"minSwipeDistance" mapstructure:"minSwipeDistance"`

	// Commit-time force shaping
	LateralAdjust     float64 `json:"lateralAdjust" mapstructure:"lateralAdjust"`
	VerticalAdjust    float64 `json:"verticalAdjust" mapstructure:"verticalAdjust"`
	AssistFactor      float64 `json:"assistFactor" mapstructure:"assistFactor"`
	ReferenceDistance float64 `json:"referenceDistance" mapstructure:"referenceDistance"`

	// Trajectory preview sampling
	TrajectorySamples int     `json:"trajectorySamples" mapstructure:"trajectorySamples"`
	TrajectoryStep    float64 `json:"trajectoryStep" mapstructure:"trajectoryStep"`

	// Shot lifecycle safety nets
	MaxShotTime time.Duration `json:"maxShotTime" mapstructure:"maxShotTime"`
	ResetDelay  time.Duration `json:"resetDelay" mapstructure:"resetDelay"`
	StallSpeed  float64       `json:"stallSpeed" mapstructure:"stallSpeed"`
	BoundsX     float64       `json:"boundsX" mapstructure:"boundsX"`
	BoundsZ     float64       `json:"boundsZ" mapstructure:"boundsZ"`
	FloorKillY  float64       `json:"floorKillY" mapstructure:"floorKillY"`
}

// CourtConfig holds world geometry and ball material properties
type CourtConfig struct {
	Gravity float64 `json:"gravity" mapstructure:"gravity"`

	BallOriginX float64 `json:"ballOriginX" mapstructure:"ballOriginX"`
	BallOriginY float64 `json:"ballOriginY" mapstructure:"ballOriginY"`
	BallOriginZ float64 `json:"ballOriginZ" mapstructure:"ballOriginZ"`

	BallRadius      float64 `json:"ballRadius" mapstructure:"ballRadius"`
	BallMass        float64 `json:"ballMass" mapstructure:"ballMass"`
	BallRestitution float64 `json:"ballRestitution" mapstructure:"ballRestitution"`
	BallFriction    float64 `json:"ballFriction" mapstructure:"ballFriction"`

	RimX              float64 `json:"rimX" mapstructure:"rimX"`
	RimY              float64 `json:"rimY" mapstructure:"rimY"`
	RimZ              float64 `json:"rimZ" mapstructure:"rimZ"`
	RimRadius         float64 `json:"rimRadius" mapstructure:"rimRadius"`
	TriggerHalfHeight float64 `json:"triggerHalfHeight" mapstructure:"triggerHalfHeight"`

	BackboardWidth     float64 `json:"backboardWidth" mapstructure:"backboardWidth"`
	BackboardHeight    float64 `json:"backboardHeight" mapstructure:"backboardHeight"`
	BackboardThickness float64 `json:"backboardThickness" mapstructure:"backboardThickness"`
}

// StoreConfig selects the high-score persistence backend
type StoreConfig struct {
	Backend string `json:"backend" mapstructure:"backend"`
	Path    string `json:"path" mapstructure:"path"`
}

// WebConfig holds the browser-mode HTTP server settings
// Empty OriginPatterns restricts websocket upgrades to same-origin
type WebConfig struct {
	Addr            string        `json:"addr" mapstructure:"addr"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout" mapstructure:"shutdownTimeout"`
	OriginPatterns  []string      `json:"originPatterns" mapstructure:"originPatterns"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

// AudioConfig toggles sound synthesis
type AudioConfig struct {
	Enabled      bool    `json:"enabled" mapstructure:"enabled"`
	MasterVolume float64 `json:"masterVolume" mapstructure:"masterVolume"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.screenScale", 0.01)
	v.SetDefault("game.strength", 2.3)
	v.SetDefault("game.minSwipeDistance", 20.0)
	v.SetDefault("game.lateralAdjust", 0.7)
	v.SetDefault("game.verticalAdjust", 1.8)
	v.SetDefault("game.assistFactor", 0.1)
	v.SetDefault("game.referenceDistance", 4.8)
	v.SetDefault("game.trajectorySamples", 20)
	v.SetDefault("game.trajectoryStep", 0.1)
	v.SetDefault("game.maxShotTime", 2000*time.Millisecond)
	v.SetDefault("game.resetDelay", 800*time.Millisecond)
	v.SetDefault("game.stallSpeed", 0.1)
	v.SetDefault("game.boundsX", 10.0)
	v.SetDefault("game.boundsZ", 10.0)
	v.SetDefault("game.floorKillY", -5.0)

	v.SetDefault("court.gravity", -9.8)
	v.SetDefault("court.ballOriginX", 0.0)
	v.SetDefault("court.ballOriginY", 1.5)
	v.SetDefault("court.ballOriginZ", 2.0)
	v.SetDefault("court.ballRadius", 0.12)
	v.SetDefault("court.ballMass", 0.62)
	v.SetDefault("court.ballRestitution", 0.75)
	v.SetDefault("court.ballFriction", 0.92)
	v.SetDefault("court.rimX", 0.0)
	v.SetDefault("court.rimY", 3.05)
	v.SetDefault("court.rimZ", -2.5)
	v.SetDefault("court.rimRadius", 0.23)
	v.SetDefault("court.triggerHalfHeight", 0.15)
	v.SetDefault("court.backboardWidth", 1.8)
	v.SetDefault("court.backboardHeight", 1.05)
	v.SetDefault("court.backboardThickness", 0.05)

	v.SetDefault("store.backend", "sqlite")
	v.SetDefault("store.path", "swish.db")

	v.SetDefault("web.addr", ":8080")
	v.SetDefault("web.shutdownTimeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.masterVolume", 0.8)
}

// Default returns the built-in configuration without reading any file
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		// Defaults are static and always decodable
		panic(fmt.Sprintf("config: decode defaults: %v", err))
	}
	return cfg
}

// Load reads configuration from the given JSON file path.
// An empty path searches the working directory for swish.json;
// a missing file is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("swish")
		v.SetConfigType("json")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read swish.json: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}
