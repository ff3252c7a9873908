package main

import (
	"os"

	"github.com/youware-labs/ywscaffold/internal/cli"
	"github.com/youware-labs/ywscaffold/internal/print"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		print.Erro(err)
		os.Exit(1)
	}
}
