// Package config handles objtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig holds settings for reading model files.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // Source text encoding (utf-8, euc-kr, windows-1252, iso-8859-1)
	Cache    bool   `yaml:"cache"`    // Keep parsed models in memory
}

// MeshConfig holds settings for mesh export.
type MeshConfig struct {
	GenerateNormals bool    `yaml:"generate_normals"`
	Scale           float32 `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Encoding: "utf-8",
			Cache:    true,
		},
		Mesh: MeshConfig{
			GenerateNormals: true,
			Scale:           1.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
