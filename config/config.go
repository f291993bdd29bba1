package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys providing flag defaults
const (
	EnvDebug      = "VIPONG_DEBUG"
	EnvMute       = "VIPONG_MUTE"
	EnvStatusAddr = "VIPONG_STATUS_ADDR"
	EnvColor      = "VIPONG_COLOR"
)

// DefaultEnvFile is read when -env is not given
const DefaultEnvFile = ".env"

// ErrInvalidColorMode rejects an unknown -color value
var ErrInvalidColorMode = errors.New("invalid color mode")

// ColorMode selects the terminal palette
type ColorMode string

const (
	ColorAuto      ColorMode = "auto"
	Color256       ColorMode = "256"
	ColorTrueColor ColorMode = "truecolor"
)

// ParseColorMode validates s
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, Color256, ColorTrueColor:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
}

// Config holds runtime settings; game physics are fixed and not configurable
type Config struct {
	Debug      bool
	Mute       bool
	StatusAddr string // empty disables the status server
	EnvFile    string
	ColorMode  ColorMode
}

// Load parses args (without the program name)
// The env file is loaded first without overriding variables already set; VIPONG_* variables
// become flag defaults, so an explicit flag always wins
func Load(args []string) (Config, error) {
	envFile := envFileArg(args)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	var color string
	fsFlags := newFlagSet(&cfg, &color, io.Discard)

	if err := fsFlags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if fsFlags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fsFlags.Args())
	}

	mode, err := ParseColorMode(color)
	if err != nil {
		return Config{}, err
	}
	cfg.ColorMode = mode
	return cfg, nil
}

// Usage returns the flag help text with the current defaults
func Usage() string {
	var b strings.Builder
	var cfg Config
	var color string
	b.WriteString("Usage: vi-pong [flags]\n")
	newFlagSet(&cfg, &color, &b).PrintDefaults()
	return b.String()
}

func newFlagSet(cfg *Config, color *string, out io.Writer) *flag.FlagSet {
	fsFlags := flag.NewFlagSet("vi-pong", flag.ContinueOnError)
	fsFlags.SetOutput(out)
	fsFlags.BoolVar(&cfg.Debug, "debug", envBool(EnvDebug), "write debug log to logs/")
	fsFlags.BoolVar(&cfg.Mute, "mute", envBool(EnvMute), "disable sound")
	fsFlags.StringVar(&cfg.StatusAddr, "status", os.Getenv(EnvStatusAddr), "serve read-only status on `addr`")
	fsFlags.StringVar(&cfg.EnvFile, "env", DefaultEnvFile, "environment `file` with VIPONG_* defaults")
	fsFlags.StringVar(color, "color", envOr(EnvColor, string(ColorAuto)), "palette: auto, 256 or truecolor")
	return fsFlags
}

// envFileArg finds -env ahead of full parsing, since the file feeds the other defaults
func envFileArg(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if name == a {
			continue
		}
		if v, ok := strings.CutPrefix(name, "env="); ok {
			return v
		}
		if name == "env" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return DefaultEnvFile
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
