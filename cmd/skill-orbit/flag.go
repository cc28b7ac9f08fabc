package main

import (
	"flag"
	"fmt"
	"log/slog"
)

// logLevelFlag accepts any name slog understands, including offsets like "INFO+2"
type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	var v slog.Level
	if err := v.UnmarshalText([]byte(value)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag   logLevelFlag
	configFlag  = flag.String("config", "", "path to a YAML config file")
	logFileFlag = flag.String("logfile", defaultLogFile, "log file path, empty disables logging")
	muteFlag    = flag.Bool("mute", false, "disable audio cues")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "log level name: DEBUG, INFO, WARN, ERROR")
}
