package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/constants"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/engine"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Caller *struct {
		// Number of balls drawn per request. Bounded so the declared
		// pause time of a batch fits the platform response window.
		BatchSize int `json:"batch_size"`
		// Probability of an ambient flavor phrase before a ball.
		AmbientChance *float64 `json:"ambient_chance"`
		// Progress announcement interval in cumulative balls.
		CheckpointEvery *int `json:"checkpoint_every"`
		// Pacing table: speed name -> Go duration string (e.g. "1500ms").
		Pacing map[string]string `json:"pacing"`
	} `json:"caller"`
}

// LoadedConfig carries the server address and the batch tuning.
type LoadedConfig struct {
	ServerAddress string
	Batch         engine.BatchConfig
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: constants.DefaultServerAddr,
		Batch:         engine.DefaultBatchConfig(),
	}
}

// LoadConfig reads the configuration file at path, applying defaults for
// any omitted keys and validating the rest. It returns an error the caller
// can check with os.IsNotExist when the file is absent.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := Default()
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Caller == nil {
		return out, nil
	}

	c := rc.Caller
	if c.BatchSize != 0 {
		if c.BatchSize < 0 {
			return nil, fmt.Errorf("config file %s: batch_size must be positive", path)
		}
		out.Batch.BatchSize = c.BatchSize
	}
	if c.AmbientChance != nil {
		if *c.AmbientChance < 0 || *c.AmbientChance > 1 {
			return nil, fmt.Errorf("config file %s: ambient_chance must be within [0,1]", path)
		}
		out.Batch.AmbientChance = *c.AmbientChance
	}
	if c.CheckpointEvery != nil {
		if *c.CheckpointEvery < 0 {
			return nil, fmt.Errorf("config file %s: checkpoint_every must not be negative", path)
		}
		out.Batch.CheckpointEvery = *c.CheckpointEvery
	}
	for name, val := range c.Pacing {
		d, err := time.ParseDuration(val)
		if err != nil {
			return nil, fmt.Errorf("config file %s: invalid pacing duration for '%s': %w", path, name, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("config file %s: pacing duration for '%s' must be positive", path, name)
		}
		out.Batch.Pacing[game.Speed(name)] = d
	}
	if _, ok := out.Batch.Pacing[game.SpeedNormal]; !ok {
		return nil, fmt.Errorf("config file %s: pacing table must include 'normal'", path)
	}
	return out, nil
}
