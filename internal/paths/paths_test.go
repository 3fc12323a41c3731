package paths

import (
	"path/filepath"
	"testing"
)

func TestConfigDirHonorsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join("/custom", "config"))
	if got, want := ConfigDir(), filepath.Join("/custom", "config", "avctl"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", filepath.Join("/home", "tester"))
	if got, want := ConfigDir(), filepath.Join("/home", "tester", ".config", "avctl"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigFileIsUnderConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join("/custom", "config"))
	if got, want := ConfigFile(), filepath.Join(ConfigDir(), "config.toml"); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestEndpointIsFixed(t *testing.T) {
	if Endpoint() == "" {
		t.Fatal("Endpoint() is empty")
	}
	// The endpoint is a build-time constant; two calls must agree.
	if Endpoint() != Endpoint() {
		t.Fatal("Endpoint() is not stable")
	}
}
