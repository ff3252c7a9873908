package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/youware-labs/ywscaffold/internal/branding"
	"github.com/youware-labs/ywscaffold/internal/config"
	"github.com/youware-labs/ywscaffold/internal/fsys"
	"github.com/youware-labs/ywscaffold/internal/layout"
	"github.com/youware-labs/ywscaffold/internal/print"
	"github.com/youware-labs/ywscaffold/internal/rules"
	"github.com/youware-labs/ywscaffold/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var printer = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` writes the YOUWARE starter project: React pages, contexts, routes,
styles, utilities and the package.json/vite/tailwind configuration. Every run
overwrites the generated files.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			print.Warn(err)
		}

		settings := config.Current()
		print.SetOutput(cmd.OutOrStdout())
		print.SetVerbose(settings.Verbose)
		print.SetColoured(!settings.NoColor && runtime.GOOS != "windows")
		print.Verb("Using configuration:", settings.Dump())
		return nil
	},
	RunE: runScaffold,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyDir, ".", "Directory to scaffold into")
	flags.BoolP(config.KeyVerbose, "v", false, "Output detailed information")
	flags.Bool("no-color", false, "Disable ANSI colours")

	_ = viper.BindPFlag(config.KeyDir, flags.Lookup(config.KeyDir))
	_ = viper.BindPFlag(config.KeyVerbose, flags.Lookup(config.KeyVerbose))
	_ = viper.BindPFlag(config.KeyNoColor, flags.Lookup("no-color"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func runScaffold(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(config.Current().Dir)
	if err != nil {
		return fmt.Errorf("resolving target directory: %w", err)
	}
	if err := os.MkdirAll(root, fsys.PermDir); err != nil {
		return fmt.Errorf("creating target directory %s: %w", root, err)
	}

	paths, err := layout.Paths()
	if err != nil {
		return err
	}
	print.Verb("Scaffolding", len(paths), "files into", root)

	result, err := scaffold.Generate(fsys.NewOS(root), paths, rules.Default(), scaffold.ReporterFunc(print.Created))
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		print.Warn(w)
	}

	print.Plain()
	print.Plain(printer.Sprintf("Wrote %d files under %s.", len(result.Files), root))
	print.Plain("Project scaffold complete. Open this folder in VS Code.")
	return nil
}
