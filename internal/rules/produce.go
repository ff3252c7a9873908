package rules

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/youware-labs/ywscaffold/internal/manifest"
)

//go:embed templates
var templateFS embed.FS

const templatesDir = "templates"

// Fixed produces the same text for every target.
func Fixed(s string) Producer {
	return func(Target) (Content, error) { return Text(s), nil }
}

// Empty produces a zero-length binary file.
func Empty() Producer {
	return func(Target) (Content, error) { return Binary(nil), nil }
}

// Static copies an embedded template verbatim.
func Static(name string) Producer {
	return func(Target) (Content, error) {
		data, err := templateFS.ReadFile(templatesDir + "/" + name)
		if err != nil {
			return Content{}, fmt.Errorf("reading template %s: %w", name, err)
		}
		return Content{Kind: KindText, Data: data}, nil
	}
}

// componentData is the data passed to .tmpl templates.
type componentData struct {
	Name string
}

// Component executes an embedded .tmpl template with the component name
// derived from the target's stem.
func Component(name string) Producer {
	return func(t Target) (Content, error) {
		if !strings.HasSuffix(name, ".tmpl") {
			return Content{}, fmt.Errorf("template %s is not a .tmpl file", name)
		}
		raw, err := templateFS.ReadFile(templatesDir + "/" + name)
		if err != nil {
			return Content{}, fmt.Errorf("reading template %s: %w", name, err)
		}

		tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
		if err != nil {
			return Content{}, fmt.Errorf("parsing template %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, componentData{Name: ComponentName(t.Stem)}); err != nil {
			return Content{}, fmt.Errorf("executing template %s: %w", name, err)
		}
		return Content{Kind: KindText, Data: buf.Bytes()}, nil
	}
}

// Record encodes a structured value as indented JSON.
func Record(v any) Producer {
	return func(Target) (Content, error) {
		data, err := manifest.Marshal(v)
		if err != nil {
			return Content{}, err
		}
		return Content{Kind: KindText, Data: data}, nil
	}
}
