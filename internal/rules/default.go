package rules

import "github.com/youware-labs/ywscaffold/internal/manifest"

// Placeholder bodies for files without a dedicated template.
const (
	PlaceholderJS   = "// placeholder js\n"
	PlaceholderCSS  = "/* placeholder css */\n"
	PlaceholderFile = "// placeholder file\n"
)

var defaultTable = MustNewTable([]Rule{
	// Name rules first.
	{Name: "auth-context", Match: All(Ext("jsx"), StemContains("AuthContext")), Produce: Static("AuthContext.jsx")},
	{Name: "theme-context", Match: All(Ext("jsx"), StemContains("ThemeContext")), Produce: Static("ThemeContext.jsx")},
	{Name: "app-shell", Match: Name("App.jsx"), Produce: Static("App.jsx")},
	{Name: "protected-route", Match: Name("ProtectedRoute.jsx"), Produce: Static("ProtectedRoute.jsx")},
	{Name: "react-root", Match: Name("main.jsx"), Produce: Static("main.jsx")},
	{Name: "storage-util", Match: Name("storage.js"), Produce: Static("storage.js")},
	{Name: "validators-util", Match: Name("validators.js"), Produce: Static("validators.js")},
	{Name: "tailwind-config", Match: Name("tailwind.config.js"), Produce: Static("tailwind.config.js")},
	{Name: "vite-config", Match: Name("vite.config.js"), Produce: Static("vite.config.js")},
	{Name: "globals-css", Match: Name("globals.css"), Produce: Static("globals.css")},
	{Name: "index-css", Match: Name("index.css"), Produce: Static("index.css")},
	{Name: "index-html", Match: Name("index.html"), Produce: Static("index.html")},
	{Name: "readme", Match: Name("YOUWARE.md"), Produce: Static("YOUWARE.md")},
	{Name: "package-json", Match: Name(manifest.PackageFile), Produce: Record(manifest.DefaultPackage())},
	{Name: "workspace-manifest", Match: Name(manifest.WorkspaceFile), Produce: Record(manifest.Workspace{})},

	// Extension defaults.
	{Name: "image", Match: Ext("png"), Produce: Empty()},
	{Name: "diagram", Match: Ext("svg"), Produce: Static("diagram.svg")},
	{Name: "component", Match: All(Ext("jsx"), ComponentStem()), Produce: Component("component.jsx.tmpl")},
	{Name: "script", Match: Ext("js"), Produce: Fixed(PlaceholderJS)},
	{Name: "stylesheet", Match: Ext("css"), Produce: Fixed(PlaceholderCSS)},

	{Name: "fallback", Produce: Fixed(PlaceholderFile)},
}...)

// Default returns the rule table used by the scaffolder.
func Default() *Table {
	return defaultTable
}
