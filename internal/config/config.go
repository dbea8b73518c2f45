package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/pulseboard/internal/insight"
	"github.com/alexanderramin/pulseboard/internal/scoring"
)

// EnvConfigPath names the environment variable pointing at the config file.
const EnvConfigPath = "PULSEBOARD_CONFIG"

// Config is the optional YAML tuning file. Every field has a default; a
// missing file or a file that sets only some fields is fine.
type Config struct {
	Thresholds    ThresholdsConfig `yaml:"thresholds"`
	HealthWeights WeightsConfig    `yaml:"health_weights"`
	RiskWeights   WeightsConfig    `yaml:"risk_weights"`
}

type ThresholdsConfig struct {
	CriticalHealth    float64 `yaml:"critical_health"`
	WarningHealth     float64 `yaml:"warning_health"`
	GoodHealth        float64 `yaml:"good_health"`
	StaleDays         int     `yaml:"stale_days"`
	CriticalStaleDays int     `yaml:"critical_stale_days"`
	AtRiskRatio       float64 `yaml:"at_risk_ratio"`
	LowProgress       int     `yaml:"low_progress"`
	HighProgress      int     `yaml:"high_progress"`
}

type WeightsConfig struct {
	Completion float64 `yaml:"completion"`
	Progress   float64 `yaml:"progress"`
	Status     float64 `yaml:"status"`
	Recency    float64 `yaml:"recency"`
	Health     float64 `yaml:"health"`
}

// Default returns the config matching the documented default scoring model.
func Default() Config {
	t := insight.DefaultThresholds()
	h := scoring.DefaultHealthWeights()
	r := scoring.DefaultRiskWeights()
	return Config{
		Thresholds: ThresholdsConfig{
			CriticalHealth:    t.CriticalHealth,
			WarningHealth:     t.WarningHealth,
			GoodHealth:        t.GoodHealth,
			StaleDays:         t.StaleDays,
			CriticalStaleDays: t.CriticalStaleDays,
			AtRiskRatio:       t.AtRiskRatio,
			LowProgress:       t.LowProgress,
			HighProgress:      t.HighProgress,
		},
		HealthWeights: WeightsConfig{
			Completion: h.Completion,
			Progress:   h.Progress,
			Status:     h.Status,
			Recency:    h.Recency,
		},
		RiskWeights: WeightsConfig{
			Status:   r.Status,
			Progress: r.Progress,
			Health:   r.Health,
			Recency:  r.Recency,
		},
	}
}

// Load reads the config file named by PULSEBOARD_CONFIG, or the given path
// when set. Unset fields keep their defaults; a missing file is not an error
// unless it was requested explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.HealthWeights.Completion < 0 || c.HealthWeights.Progress < 0 ||
		c.HealthWeights.Status < 0 || c.HealthWeights.Recency < 0 {
		return fmt.Errorf("health weights must be non-negative")
	}
	if c.RiskWeights.Status < 0 || c.RiskWeights.Progress < 0 ||
		c.RiskWeights.Health < 0 || c.RiskWeights.Recency < 0 {
		return fmt.Errorf("risk weights must be non-negative")
	}
	if c.Thresholds.StaleDays <= 0 || c.Thresholds.CriticalStaleDays <= 0 {
		return fmt.Errorf("staleness thresholds must be positive")
	}
	return nil
}

// InsightThresholds converts the file representation to insight thresholds.
func (c Config) InsightThresholds() insight.Thresholds {
	return insight.Thresholds{
		CriticalHealth:    c.Thresholds.CriticalHealth,
		WarningHealth:     c.Thresholds.WarningHealth,
		GoodHealth:        c.Thresholds.GoodHealth,
		StaleDays:         c.Thresholds.StaleDays,
		CriticalStaleDays: c.Thresholds.CriticalStaleDays,
		AtRiskRatio:       c.Thresholds.AtRiskRatio,
		LowProgress:       c.Thresholds.LowProgress,
		HighProgress:      c.Thresholds.HighProgress,
	}
}

// ScoringWeights converts the file representation to scorer weights.
func (c Config) ScoringWeights() (scoring.HealthWeights, scoring.RiskWeights) {
	h := scoring.HealthWeights{
		Completion: c.HealthWeights.Completion,
		Progress:   c.HealthWeights.Progress,
		Status:     c.HealthWeights.Status,
		Recency:    c.HealthWeights.Recency,
	}
	r := scoring.RiskWeights{
		Status:   c.RiskWeights.Status,
		Progress: c.RiskWeights.Progress,
		Health:   c.RiskWeights.Health,
		Recency:  c.RiskWeights.Recency,
	}
	return h, r
}
