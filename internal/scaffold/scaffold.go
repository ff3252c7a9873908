package scaffold

import (
	"fmt"

	"github.com/youware-labs/ywscaffold/internal/fsys"
	"github.com/youware-labs/ywscaffold/internal/manifest"
	"github.com/youware-labs/ywscaffold/internal/rules"
)

// Step names the part of the per-file pipeline that failed.
type Step string

const (
	StepRender Step = "render"
	StepMkdir  Step = "mkdir"
	StepWrite  Step = "write"
)

// PathError records which declared path failed and at which step.
type PathError struct {
	Path string
	Step Step
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// Reporter is told about every file once it is on disk.
type Reporter interface {
	Created(path string)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(path string)

// Created calls f(path).
func (f ReporterFunc) Created(path string) { f(path) }

// Result holds the outcome of a scaffold run.
type Result struct {
	Root     string
	Files    []string
	Warnings []string
}

// Generate writes every path in order. On failure it returns the files
// written so far together with a *PathError.
func Generate(w *fsys.Writer, paths []string, table *rules.Table, report Reporter) (*Result, error) {
	result := &Result{
		Root: w.Root(),
	}

	for _, p := range paths {
		content, _, err := table.Render(p)
		if err != nil {
			return result, &PathError{Path: p, Step: StepRender, Err: err}
		}

		if err := w.EnsureDirForFile(p); err != nil {
			return result, &PathError{Path: p, Step: StepMkdir, Err: err}
		}

		if err := w.WriteFile(p, content.Data); err != nil {
			return result, &PathError{Path: p, Step: StepWrite, Err: err}
		}

		result.Files = append(result.Files, p)
		if report != nil {
			report.Created(p)
		}
	}

	result.Warnings = validateManifests(w, result.Files)

	return result, nil
}

// validateManifests checks generated package.json files. Problems are
// reported as warnings; the files stay written.
func validateManifests(w *fsys.Writer, files []string) []string {
	var warnings []string
	for _, p := range files {
		if rules.NewTarget(p).Base != manifest.PackageFile {
			continue
		}

		data, err := w.ReadFile(p)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not validate %s: %v", p, err))
			continue
		}

		valResult, err := manifest.Validate(data)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not validate %s: %v", p, err))
			continue
		}
		for _, issue := range valResult.Issues {
			warnings = append(warnings, p+": "+issue.String())
		}
	}
	return warnings
}
