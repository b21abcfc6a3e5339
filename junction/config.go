package junction

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the kernel's tunable thresholds. The zero value is not
// valid; use DefaultConfig or LoadConfig.
type Config struct {
	// RampMaxAngleDegrees is the maximum angle, in degrees, between a
	// candidate ramp's edge and the main road's edge for the on/off-ramp
	// handler (see §4.6) to treat them as tangential.
	RampMaxAngleDegrees float64 `yaml:"ramp_max_angle_degrees"`

	// RampMaxGapMeters is the maximum distance, in meters, from a ramp
	// edge's junction-side end to the point where that edge crosses one of
	// the main road's edges, for the on/off-ramp pattern to apply.
	RampMaxGapMeters float64 `yaml:"ramp_max_gap_meters"`
}

// DefaultConfig returns the kernel's documented default thresholds.
func DefaultConfig() *Config {
	return &Config{
		RampMaxAngleDegrees: 30.0,
		RampMaxGapMeters:    0.5,
	}
}

// LoadConfig reads a YAML config file, starting from DefaultConfig and
// overriding only the fields present in the file. Mirrors the
// yaml.UnmarshalStrict config-loading pattern used by the corpus's
// simulation entry point.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// orDefault returns cfg if non-nil, else DefaultConfig().
func orDefault(cfg *Config) *Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return cfg
}
