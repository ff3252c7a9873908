package manifest

import (
	"encoding/json"
	"fmt"
)

// Marshal encodes v with two-space indentation and no trailing newline.
// Map keys come out sorted, which keeps the output byte-stable across runs.
func Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// ParsePackage decodes package.json bytes.
func ParsePackage(data []byte) (*Package, error) {
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", PackageFile, err)
	}
	return &p, nil
}

// ParseWorkspace decodes yw_manifest.json bytes into a generic record.
func ParseWorkspace(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", WorkspaceFile, err)
	}
	if m == nil {
		return nil, fmt.Errorf("parsing %s: not an object", WorkspaceFile)
	}
	return m, nil
}
