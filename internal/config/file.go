package config

// This file layers the optional TOML config file and SNAPMERGE_* environment
// variables on top of DefaultConfig. Flags are applied last (flags.go).

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is looked up in the working directory when --config is not given.
const DefaultFileName = "snapmerge.toml"

// Environment variable names read by [ApplyEnv].
const (
	EnvSource  = "SNAPMERGE_SOURCE"
	EnvOutput  = "SNAPMERGE_OUTPUT"
	EnvQuality = "SNAPMERGE_QUALITY"
	EnvFFmpeg  = "SNAPMERGE_FFMPEG"
	EnvFFprobe = "SNAPMERGE_FFPROBE"
	EnvLogFile = "SNAPMERGE_LOG"
)

// ResolvePath returns the config file to load and whether it exists. An
// explicit path that does not exist is an error; a missing default file is not.
func ResolvePath(explicit string) (string, bool, error) {
	path := explicit
	if path == "" {
		path = DefaultFileName
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit != "" {
				return "", false, fmt.Errorf("config file %q not found", explicit)
			}
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %q is a directory", path)
	}
	return path, true, nil
}

// LoadFile decodes the TOML file at path into cfg. Keys absent from the file
// keep their current values; unknown keys are rejected so typos surface.
func LoadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is fine.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays SNAPMERGE_* variables onto cfg. lookup is usually
// os.LookupEnv; tests pass a map-backed function.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSource); ok && v != "" {
		cfg.SourceDir = NormalizeDirArg(v)
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		cfg.OutputDir = NormalizeDirArg(v)
	}
	if v, ok := lookup(EnvQuality); ok && v != "" {
		q, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s must be a whole number (got %q)", EnvQuality, v)
		}
		cfg.Quality = q
	}
	if v, ok := lookup(EnvFFmpeg); ok && v != "" {
		cfg.FFmpegPath = v
	}
	if v, ok := lookup(EnvFFprobe); ok && v != "" {
		cfg.FFprobePath = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.LogFile = v
	}
	return nil
}
