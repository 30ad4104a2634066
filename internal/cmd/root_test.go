package cmd

import (
	"testing"
)

// TestTopLevelCommands tests that every surface is registered on the root
func TestTopLevelCommands(t *testing.T) {
	expected := map[string]bool{
		"auth":       false,
		"products":   false,
		"categories": false,
		"browse":     false,
		"cart":       false,
		"orders":     false,
		"addresses":  false,
		"invoices":   false,
		"profile":    false,
		"admin":      false,
		"version":    false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "api-url", "output", "timeout"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not found", name)
		}
	}
}
