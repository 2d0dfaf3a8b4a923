// Package logging configures the process-wide zap logger for textify.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/frizadiga/textify/pkg/version"
)

// Logger is the process-wide logger, built by Setup before any command
// runs. It stays nil until then; main treats a nil Logger as "nothing to
// flush".
var Logger *zap.Logger

// Setup builds the global logger. Debug mode uses zap's development config
// for colored, debug-level console output so skipped-file decisions are
// readable; otherwise production JSON at info level, with stack traces
// suppressed since every fatal path here is a plain filesystem error.
func Setup(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.DisableStacktrace = true
	}

	cfg.InitialFields = map[string]interface{}{
		"app":        "textify",
		"appVersion": version.Get().Version,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewNop()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
