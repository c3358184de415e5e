// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/idobn/ttsaudio/encode"
	"github.com/idobn/ttsaudio/normalize"
)

// Config is the complete pipeline configuration.
type Config struct {
	Audio   AudioConfig             `yaml:"audio"`
	Formats map[string]FormatConfig `yaml:"formats"`
}

// AudioConfig parameterizes the per-stream normalizer.
type AudioConfig struct {
	SampleRate              int     `yaml:"sample_rate"`
	GapTrimMS               float64 `yaml:"gap_trim_ms"`
	DynamicGapTrimPaddingMS float64 `yaml:"dynamic_gap_trim_padding_ms"`
}

// FormatConfig overrides encoder settings for one output format. Nil fields
// keep the format's defaults.
type FormatConfig struct {
	BitrateMode      *string  `yaml:"bitrate_mode"`
	CompressionLevel *float64 `yaml:"compression_level"`
}

// Default returns the configuration the pipeline runs with when no file is
// given: 24 kHz, 1 ms gap trim, 410 ms dynamic padding budget, no encoder
// overrides.
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate:              normalize.DefaultSampleRate,
			GapTrimMS:               normalize.DefaultGapTrimMS,
			DynamicGapTrimPaddingMS: normalize.DefaultDynamicGapTrimPaddingMS,
		},
	}
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("audio config: %w", err)
	}

	for name, fc := range c.Formats {
		if _, err := encode.ParseFormat(name); err != nil {
			return fmt.Errorf("formats config: %w", err)
		}
		if err := fc.Validate(name); err != nil {
			return fmt.Errorf("formats config: %w", err)
		}
	}

	return nil
}

// Validate checks the normalizer parameters.
func (a *AudioConfig) Validate() error {
	if a.SampleRate < 1 {
		return fmt.Errorf("sample_rate must be positive, got %d", a.SampleRate)
	}

	if a.GapTrimMS < 0 {
		return fmt.Errorf("gap_trim_ms cannot be negative, got %v", a.GapTrimMS)
	}

	if a.DynamicGapTrimPaddingMS < 0 {
		return fmt.Errorf("dynamic_gap_trim_padding_ms cannot be negative, got %v", a.DynamicGapTrimPaddingMS)
	}

	return nil
}

// Validate checks a per-format override block.
func (f *FormatConfig) Validate(name string) error {
	if f.BitrateMode != nil {
		switch *f.BitrateMode {
		case "constant", "variable":
		default:
			return fmt.Errorf("%s: bitrate_mode must be 'constant' or 'variable', got %q", name, *f.BitrateMode)
		}
	}

	if f.CompressionLevel != nil && (*f.CompressionLevel < 0 || *f.CompressionLevel > 1) {
		return fmt.Errorf("%s: compression_level must be between 0 and 1, got %v", name, *f.CompressionLevel)
	}

	return nil
}

// NormalizerConfig maps the audio section onto the normalizer parameters.
func (a *AudioConfig) NormalizerConfig() normalize.Config {
	return normalize.Config{
		SampleRate:              a.SampleRate,
		GapTrimMS:               a.GapTrimMS,
		DynamicGapTrimPaddingMS: a.DynamicGapTrimPaddingMS,
	}
}

// EncoderOverrides maps the formats section onto typed encoder overrides.
// Call only after Validate; unknown tags and bad modes fail there.
func (c *Config) EncoderOverrides() encode.Overrides {
	if len(c.Formats) == 0 {
		return nil
	}

	overrides := make(encode.Overrides, len(c.Formats))
	for name, fc := range c.Formats {
		format, err := encode.ParseFormat(name)
		if err != nil {
			continue
		}

		var ov encode.Override
		if fc.BitrateMode != nil {
			mode := encode.BitrateConstant
			if *fc.BitrateMode == "variable" {
				mode = encode.BitrateVariable
			}
			ov.BitrateMode = &mode
		}
		ov.CompressionLevel = fc.CompressionLevel

		overrides[format] = ov
	}

	return overrides
}
