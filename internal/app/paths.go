package app

import (
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "ACRO_CONFIG"

// Paths holds the resolved locations of acro's configuration.
type Paths struct {
	ConfigDir  string // <config home>/acro/
	ConfigFile string // <config home>/acro/config.yaml
}

// NewPaths constructs the paths under a config home such as ~/.config.
func NewPaths(configHome string) *Paths {
	dir := filepath.Join(configHome, "acro")
	return &Paths{
		ConfigDir:  dir,
		ConfigFile: filepath.Join(dir, "config.yaml"),
	}
}

// ResolvePaths picks the config location: $ACRO_CONFIG, then
// $XDG_CONFIG_HOME/acro, then ~/.config/acro. Empty if none can be found.
func ResolvePaths() *Paths {
	if p := os.Getenv(EnvConfig); p != "" {
		return &Paths{ConfigDir: filepath.Dir(p), ConfigFile: p}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return NewPaths(xdg)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return NewPaths(filepath.Join(home, ".config"))
	}
	return &Paths{}
}

// EnsureDirs creates the config directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.ConfigDir, 0755)
}
