// ABOUTME: Tests for CLI commands
// ABOUTME: Tests command structure, flags, and subcommands

package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "moodlog" {
		t.Errorf("expected Use to be 'moodlog', got %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("expected root command to have a short description")
	}
	for _, name := range []string{"backend", "data-dir", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s persistent flag to exist", name)
		}
	}
}

func TestAddCommand(t *testing.T) {
	if addCmd.Use != "add <text...>" {
		t.Errorf("expected Use to be 'add <text...>', got %q", addCmd.Use)
	}
	if f := addCmd.Flags().Lookup("mood"); f == nil || f.DefValue != "😐" {
		t.Error("expected --mood flag defaulting to 😐")
	}
	if addCmd.Flags().Lookup("favorite") == nil {
		t.Error("expected --favorite flag to exist")
	}
}

func TestEditCommand(t *testing.T) {
	if editCmd.Use != "edit <entry-id>" {
		t.Errorf("expected Use to be 'edit <entry-id>', got %q", editCmd.Use)
	}
	for _, name := range []string{"mood", "text", "favorite", "no-favorite"} {
		if editCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestDeleteCommand(t *testing.T) {
	if deleteCmd.Use != "delete <entry-id>" {
		t.Errorf("expected Use to be 'delete <entry-id>', got %q", deleteCmd.Use)
	}
	if len(deleteCmd.Aliases) == 0 {
		t.Error("expected delete command to have aliases")
	}
	if deleteCmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag to exist")
	}
}

func TestListCommand(t *testing.T) {
	if listCmd.Use != "list" {
		t.Errorf("expected Use to be 'list', got %q", listCmd.Use)
	}
	if len(listCmd.Aliases) == 0 {
		t.Error("expected list command to have aliases")
	}
	for _, name := range []string{"search", "favorites", "limit"} {
		if listCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestShowCommand(t *testing.T) {
	if showCmd.Use != "show <entry-id>" {
		t.Errorf("expected Use to be 'show <entry-id>', got %q", showCmd.Use)
	}
	for _, name := range []string{"plain", "copy"} {
		if showCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestResetCommand(t *testing.T) {
	if resetCmd.Use != "reset" {
		t.Errorf("expected Use to be 'reset', got %q", resetCmd.Use)
	}
	if resetCmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag to exist")
	}
}

func TestExportCommand(t *testing.T) {
	if exportCmd.Flags().Lookup("format") == nil {
		t.Error("expected --format flag to exist")
	}
	if exportCmd.Flags().Lookup("output") == nil {
		t.Error("expected --output flag to exist")
	}
}

func TestCommandsWithoutJournal(t *testing.T) {
	for _, c := range []*cobra.Command{versionCmd, setupCmd} {
		if c.Annotations[annotationNoJournal] != "true" {
			t.Errorf("expected %s to skip opening the journal", c.Name())
		}
	}
	if listCmd.Annotations[annotationNoJournal] == "true" {
		t.Error("list must open the journal")
	}
}

func TestAllCommandsRegistered(t *testing.T) {
	want := []string{"add", "edit", "delete", "list", "show", "stats", "title", "reset", "export", "mcp", "setup", "version"}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("expected %q command to be registered", name)
		}
	}
}
