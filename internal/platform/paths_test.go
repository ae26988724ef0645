package platform

import (
	"path/filepath"
	"testing"
)

func envOf(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		env        map[string]string
		configBase string
		dataBase   string
		opts       Options
		wantConfig string
		wantLog    string
	}{
		{
			name:       "linux xdg overrides",
			goos:       "linux",
			env:        map[string]string{"XDG_CONFIG_HOME": "/xdg/config", "XDG_DATA_HOME": "/xdg/data"},
			configBase: "/home/me/.config",
			dataBase:   "/home/me/.local/share",
			opts:       Options{AppName: "tasklane"},
			wantConfig: filepath.Join("/xdg/config", "tasklane", "config.toml"),
			wantLog:    filepath.Join("/xdg/data", "tasklane", "log"),
		},
		{
			name:       "linux without xdg",
			goos:       "linux",
			configBase: "/home/me/.config",
			dataBase:   "/home/me/.local/share",
			opts:       Options{AppName: "tasklane"},
			wantConfig: filepath.Join("/home/me/.config", "tasklane", "config.toml"),
			wantLog:    filepath.Join("/home/me/.local/share", "tasklane", "log"),
		},
		{
			name:       "windows appdata",
			goos:       "windows",
			env:        map[string]string{"APPDATA": `C:\Roaming`, "LOCALAPPDATA": `C:\Local`},
			configBase: `C:\fallback`,
			dataBase:   `C:\fallback`,
			opts:       Options{AppName: "tasklane"},
			wantConfig: filepath.Join(`C:\Roaming`, "tasklane", "config.toml"),
			wantLog:    filepath.Join(`C:\Local`, "tasklane", "log"),
		},
		{
			name:       "darwin ignores xdg",
			goos:       "darwin",
			env:        map[string]string{"XDG_CONFIG_HOME": "/ignored", "XDG_DATA_HOME": "/ignored"},
			configBase: "/Users/me/Library/Application Support",
			dataBase:   "/Users/me/Library/Application Support",
			opts:       Options{AppName: "tasklane"},
			wantConfig: filepath.Join("/Users/me/Library/Application Support", "tasklane", "config.toml"),
			wantLog:    filepath.Join("/Users/me/Library/Application Support", "tasklane", "log"),
		},
		{
			name:       "dev mode and blank app name",
			goos:       "freebsd",
			configBase: "/cfg",
			dataBase:   "/data",
			opts:       Options{DevMode: true},
			wantConfig: filepath.Join("/cfg", "tasklane-dev", "config.toml"),
			wantLog:    filepath.Join("/data", "tasklane-dev", "log"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Resolve(tc.goos, envOf(tc.env), tc.configBase, tc.dataBase, tc.opts)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if p.ConfigPath != tc.wantConfig || p.LogDir != tc.wantLog {
				t.Fatalf("unexpected paths %#v", p)
			}
		})
	}
}

func TestResolveEmptyBaseFails(t *testing.T) {
	if _, err := Resolve("darwin", nil, "", "/tmp/data", Options{}); err == nil {
		t.Fatal("expected error for empty base dir")
	}
}

func TestResolveEnvFillsEmptyBase(t *testing.T) {
	p, err := Resolve("linux", envOf(map[string]string{"XDG_DATA_HOME": "/xdg/data"}), "/cfg", "", Options{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if p.LogDir != filepath.Join("/xdg/data", "tasklane", "log") {
		t.Fatalf("unexpected log dir %q", p.LogDir)
	}
}

func TestDefaultDevMode(t *testing.T) {
	p, err := Default(Options{AppName: "tasklane", DevMode: true})
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if filepath.Base(filepath.Dir(p.ConfigPath)) != "tasklane-dev" {
		t.Fatalf("expected dev config dir suffix, got %q", p.ConfigPath)
	}
	if filepath.Base(filepath.Dir(p.LogDir)) != "tasklane-dev" {
		t.Fatalf("expected dev log dir suffix, got %q", p.LogDir)
	}
}
