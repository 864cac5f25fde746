package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the built-in simulation config.
// Panics only if the embedded default is malformed, which is a build error.
func DefaultLanderConfig() LanderConfig {
	var cfg LanderConfig
	if err := yaml.Unmarshal(defaultLanderYAML, &cfg); err != nil {
		panic("config: embedded lander.yaml is invalid: " + err.Error())
	}
	cfg.Normalize()
	return cfg
}
