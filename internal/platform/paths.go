// Package platform resolves per-user file locations.
package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const defaultAppName = "tasklane"

// Paths are the per-user locations of one app.
type Paths struct {
	ConfigPath string
	LogDir     string
}

// Options selects the app directory name.
type Options struct {
	AppName string
	DevMode bool
}

// dirName is the per-app directory, suffixed with -dev in dev mode.
func (o Options) dirName() string {
	name := strings.TrimSpace(o.AppName)
	if name == "" {
		name = defaultAppName
	}
	if o.DevMode {
		name += "-dev"
	}
	return name
}

// baseOverride names the env vars that relocate the config and data bases on one OS.
type baseOverride struct {
	config string
	data   string
}

var overrides = map[string]baseOverride{
	"linux":   {config: "XDG_CONFIG_HOME", data: "XDG_DATA_HOME"},
	"windows": {config: "APPDATA", data: "LOCALAPPDATA"},
}

// Default resolves paths for the running OS and user.
func Default(opts Options) (Paths, error) {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("user config dir: %w", err)
	}
	dataBase := configBase
	if runtime.GOOS == "linux" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("user home dir: %w", err)
		}
		dataBase = filepath.Join(home, ".local", "share")
	}
	return Resolve(runtime.GOOS, os.Getenv, configBase, dataBase, opts)
}

// Resolve builds paths from explicit base dirs. Env overrides apply on linux and windows only.
func Resolve(goos string, getenv func(string) string, configBase, dataBase string, opts Options) (Paths, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	if o, ok := overrides[goos]; ok {
		if v := strings.TrimSpace(getenv(o.config)); v != "" {
			configBase = v
		}
		if v := strings.TrimSpace(getenv(o.data)); v != "" {
			dataBase = v
		}
	}
	if configBase == "" || dataBase == "" {
		return Paths{}, errors.New("empty base dirs")
	}

	dir := opts.dirName()
	return Paths{
		ConfigPath: filepath.Join(configBase, dir, "config.toml"),
		LogDir:     filepath.Join(dataBase, dir, "log"),
	}, nil
}
