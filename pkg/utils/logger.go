package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger builds the application logger. Entries always go to stdout;
// when LogPath is set they are also written to <LogPath>/<Name>.log and rotated.
func InitLogger(cfg AppConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Debug {
		level.SetLevel(zap.DebugLevel)
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	var enc zapcore.Encoder = zapcore.NewJSONEncoder(encCfg)
	if cfg.Debug {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	cores := []zapcore.Core{zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level)}

	if cfg.LogPath != "" {
		if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
			return nil, err
		}
		name := cfg.Name
		if name == "" {
			name = "movie-catalog"
		}
		rotating := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogPath, name+".log"),
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotating), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).
		With(zap.String("app", cfg.Name)), nil
}
