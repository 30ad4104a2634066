package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

// TestAuthSubcommands tests that all auth subcommands are registered
func TestAuthSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"send-otp": false,
		"login":    false,
		"logout":   false,
		"whoami":   false,
	}

	for _, cmd := range authCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in auth command", name)
		}
	}
}

// TestAuthLoginFlags tests that auth login has correct flags
func TestAuthLoginFlags(t *testing.T) {
	var loginCmd *cobra.Command
	for _, cmd := range authCmd.Commands() {
		if cmd.Name() == "login" {
			loginCmd = cmd
			break
		}
	}

	if loginCmd == nil {
		t.Fatal("login subcommand not found")
	}

	if loginCmd.Flags().Lookup("phone") == nil {
		t.Error("flag 'phone' not found on auth login command")
	}
	if loginCmd.Flags().Lookup("otp") == nil {
		t.Error("flag 'otp' not found on auth login command")
	}
}

// TestAdminSubcommands tests the permission-gated admin surface
func TestAdminSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"menu":          false,
		"users":         false,
		"products":      false,
		"categories":    false,
		"notifications": false,
		"notify":        false,
		"permissions":   false,
	}

	for _, cmd := range adminCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in admin command", name)
		}
	}
}

// TestCartSubcommands tests the cart surface
func TestCartSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"add":    false,
		"update": false,
		"remove": false,
		"clear":  false,
	}

	for _, cmd := range cartCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in cart command", name)
		}
	}
}
