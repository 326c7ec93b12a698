package logging

import (
	"go.uber.org/zap"
)

var Logger *zap.SugaredLogger

// InitLogger configures the process logger. Debug mode enables the
// development config with full output; otherwise only warnings and worse
// reach the console so report output stays readable.
func InitLogger(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = logger.Sugar()
}
