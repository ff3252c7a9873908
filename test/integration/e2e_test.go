//go:build integration

package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/youware-labs/ywscaffold/internal/layout"
	"github.com/youware-labs/ywscaffold/internal/manifest"
)

// TestFullFlowZeroArgScaffold runs the bare command in an empty directory
// and checks the whole tree.
func TestFullFlowZeroArgScaffold(t *testing.T) {
	env := setupTestEnv(t)

	if err := runCLI(t); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	paths, err := layout.Paths()
	if err != nil {
		t.Fatalf("layout.Paths: %v", err)
	}
	for _, p := range paths {
		assertFileExists(t, filepath.Join(env.ProjectDir, filepath.FromSlash(p)))
	}

	assertDirExists(t, filepath.Join(env.ProjectDir, "src", "pages", "admin"))
	assertFileContains(t, filepath.Join(env.ProjectDir, "src", "components", "Logo.jsx"), "export default function Logo()")
	assertFileContains(t, filepath.Join(env.ProjectDir, "src", "main.jsx"), `import App from "./App";`)
	assertFileContains(t, filepath.Join(env.ProjectDir, "vite.config.js"), "defineConfig")

	result, err := manifest.ValidateFile(filepath.Join(env.ProjectDir, "package.json"))
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Errorf("generated package.json is invalid: %v", result.Issues)
	}

	if got := readFile(t, filepath.Join(env.ProjectDir, "yw_manifest.json")); got != "{}" {
		t.Errorf("yw_manifest.json = %q, want {}", got)
	}
}

// TestFullFlowReinstallOverwrites checks that a second run restores every
// file byte for byte, discarding manual edits.
func TestFullFlowReinstallOverwrites(t *testing.T) {
	env := setupTestEnv(t)

	if err := runCLI(t); err != nil {
		t.Fatalf("first run: %v", err)
	}
	appPath := filepath.Join(env.ProjectDir, "src", "App.jsx")
	original := readFile(t, appPath)

	writeFile(t, appPath, "// my changes")

	if err := runCLI(t); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := readFile(t, appPath); got != original {
		t.Errorf("App.jsx not restored:\n%s", got)
	}
}

// TestFullFlowFailureLeavesPartialTree checks that a write failure stops
// the run and leaves earlier files in place.
func TestFullFlowFailureLeavesPartialTree(t *testing.T) {
	env := setupTestEnv(t)

	// index.css is declared after App.jsx and main.jsx and before index.html.
	writeFile(t, filepath.Join(env.ProjectDir, "src", "index.css", "blocker"), "x")

	if err := runCLI(t); err == nil {
		t.Fatal("expected failure when src/index.css is a directory")
	}

	assertFileExists(t, filepath.Join(env.ProjectDir, "src", "App.jsx"))
	assertFileExists(t, filepath.Join(env.ProjectDir, "src", "main.jsx"))
	assertFileNotExists(t, filepath.Join(env.ProjectDir, "src", "index.html"))
	assertFileNotExists(t, filepath.Join(env.ProjectDir, "package.json"))
}

// TestFullFlowDirFlag scaffolds into a directory that does not exist yet.
func TestFullFlowDirFlag(t *testing.T) {
	env := setupTestEnv(t)
	target := filepath.Join(env.ProjectDir, "nested", "app")

	if err := runCLI(t, "--dir", target); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	assertFileExists(t, filepath.Join(target, "package.json"))
	assertFileNotExists(t, filepath.Join(env.ProjectDir, "package.json"))
}
