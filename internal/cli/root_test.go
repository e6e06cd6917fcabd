package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCommand("test")
	want := map[string]bool{"check": false, "usage": false, "tags": false, "version": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func writeYAML(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestCheckStrictFailsOnDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "schema.yaml", "entityKinds:\n  - id: npc\n")
	writeYAML(t, dir, "generators.yaml", "- id: raiders\n  select:\n    kind: ghost\n")

	root := NewRootCommand("test")
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetArgs([]string{"check", dir, "--strict"})

	err := root.Execute()
	if err == nil {
		t.Fatalf("strict check on a project with diagnostics should fail")
	}
	if !strings.Contains(err.Error(), "invalid refs") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckCleanProjectSucceeds(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "schema.yaml", "entityKinds:\n  - id: npc\n")
	writeYAML(t, dir, "eras.yaml", "- id: founding\n  generatorWeights:\n    raiders: 1\n")
	writeYAML(t, dir, "generators.yaml", "- id: raiders\n  select:\n    kind: npc\n")

	root := NewRootCommand("test")
	root.SilenceUsage = true
	root.SetArgs([]string{"check", dir, "--strict"})

	if err := root.Execute(); err != nil {
		t.Fatalf("clean project failed strict check: %v", err)
	}
}

func TestUsageCommandRequiresTypeAndID(t *testing.T) {
	root := NewRootCommand("test")
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetArgs([]string{"usage", "entityKind"})

	if err := root.Execute(); err == nil {
		t.Fatalf("usage without an id should fail argument validation")
	}
}

func TestUsageCommandOnProject(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "schema.yaml", "entityKinds:\n  - id: npc\n")
	writeYAML(t, dir, "eras.yaml", "- id: founding\n  generatorWeights:\n    raiders: 1\n")
	writeYAML(t, dir, "generators.yaml", "- id: raiders\n  select:\n    kind: npc\n")

	root := NewRootCommand("test")
	root.SilenceUsage = true
	root.SetArgs([]string{"usage", "entityKind", "npc", "--path", dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("usage command failed: %v", err)
	}
}

func TestTagsCommandOnProject(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "generators.yaml", "- id: raiders\n  creates:\n    - kind: npc\n      tags: [fierce]\n")

	root := NewRootCommand("test")
	root.SilenceUsage = true
	root.SetArgs([]string{"tags", dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("tags command failed: %v", err)
	}
}
