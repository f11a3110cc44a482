package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagEncoding    = flag.String("encoding", "", "Input text encoding")
	flagNoCache     = flag.Bool("no-cache", false, "Disable the parsed model cache")
	flagScale       = flag.Float64("scale", 0, "Uniform scale applied on mesh export")
	flagNoNormals   = flag.Bool("no-normals", false, "Leave missing normals zero on mesh export")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagEncoding != "" {
		cfg.Input.Encoding = *flagEncoding
	}
	if *flagNoCache {
		cfg.Input.Cache = false
	}
	if *flagScale > 0 {
		cfg.Mesh.Scale = float32(*flagScale)
	}
	if *flagNoNormals {
		cfg.Mesh.GenerateNormals = false
	}
}
