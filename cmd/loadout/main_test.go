package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()

	path := dir + "/loadout.yaml"
	content := `version: "1"
destinations:
  mod: mods
providers:
  modrinth:
    displayName: Modrinth
    baseURL: https://api.modrinth.com/v2
    enabled: true
    resourceTypes: [mod, resourcepack, shaderpack]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRun_Version(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	t.Setenv("LOADOUT_CONFIG", writeConfig(t, tmpDir))

	os.Args = []string{"loadout", "version"}

	assert.Equal(t, 0, run())
}

func TestRun_MissingConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	t.Setenv("LOADOUT_CONFIG", tmpDir+"/does-not-exist.yaml")

	os.Args = []string{"loadout", "version"}

	assert.Equal(t, 1, run())
}
