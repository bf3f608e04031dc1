package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and strict projection checks")
	flagSeed       = flag.Int64("seed", 0, "Skyline seed (0 = random)")
	flagScale      = flag.Int("scale", 0, "Window scale factor")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Render.StrictProjection = true
	}
	if *flagSeed != 0 {
		cfg.Skyline.Seed = *flagSeed
	}
	if *flagScale > 0 {
		cfg.Window.Scale = *flagScale
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
}
