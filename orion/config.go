package orion

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	LogLevel slog.Level

	// directory of the side loaded shader files
	ShaderDir string

	// one of cpu, mem or trace. Empty disables profiling
	Profile string

	// forces a window driver, see glimpse.WindowOptions
	WindowDriver string

	// log level of the native wgpu library, see pulse.SetLogLevel
	WGPULogLevel string

	// request the software fallback adapter
	FallbackAdapter bool
}

func ConfigFromEnv() Config {
	return configFromLookup(os.Getenv)
}

func configFromLookup(getenv func(string) string) Config {
	config := Config{
		LogLevel:     slog.LevelInfo,
		ShaderDir:    "shaders",
		Profile:      strings.ToLower(getenv("GO3D_PROFILE")),
		WindowDriver: strings.ToLower(getenv("GO3D_WINDOW_DRIVER")),

		WGPULogLevel:    getenv("WGPU_LOG_LEVEL"),
		FallbackAdapter: getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1",
	}

	if dir := getenv("GO3D_SHADER_DIR"); dir != "" {
		config.ShaderDir = dir
	}

	switch strings.ToLower(getenv("GO3D_LOG_LEVEL")) {
	case "debug":
		config.LogLevel = slog.LevelDebug
	case "warn":
		config.LogLevel = slog.LevelWarn
	case "error":
		config.LogLevel = slog.LevelError
	}

	return config
}
