package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestHasChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "example"}
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("notes", "", "")

	if hasChangedFlags(cmd, "name", "notes") {
		t.Fatal("expected no changed flags")
	}

	if err := cmd.Flags().Set("notes", "hello"); err != nil {
		t.Fatalf("set notes: %v", err)
	}

	if !hasChangedFlags(cmd, "name", "notes") {
		t.Fatal("expected changed flags")
	}
}
