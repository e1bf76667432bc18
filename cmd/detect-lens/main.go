// Command detect-lens locates the lens circle in a camera artwork and prints
// its position as pixels and as percentages of the image size.
package main

import (
	"os"

	"github.com/palide/detect-lens/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = GitCommit
	cli.Date = BuildTime

	os.Exit(cli.Execute(cli.NewRootCommand()))
}
