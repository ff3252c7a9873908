package manifest

// File names of the structured records.
const (
	PackageFile   = "package.json"
	WorkspaceFile = "yw_manifest.json"
)

// Package is the package.json record. Field order is the on-disk key order.
type Package struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         Scripts           `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Scripts are the npm run targets wired to vite.
type Scripts struct {
	Dev     string `json:"dev"`
	Build   string `json:"build"`
	Preview string `json:"preview"`
}

// Workspace is the yw_manifest.json record. It is intentionally empty.
type Workspace struct{}

// DefaultPackage returns the package.json laid down in a new project.
func DefaultPackage() Package {
	return Package{
		Name:    "youware-project",
		Version: "0.1.0",
		Private: true,
		Scripts: Scripts{
			Dev:     "vite",
			Build:   "vite build",
			Preview: "vite preview",
		},
		Dependencies: map[string]string{
			"react":            "^18.2.0",
			"react-dom":        "^18.2.0",
			"react-router-dom": "^6.0.0",
		},
		DevDependencies: map[string]string{
			"vite": "^5.0.0",
		},
	}
}
