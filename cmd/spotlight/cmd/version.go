package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/go-drift/spotlight/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long: `Show the CLI version, build time, Go runtime and the spotlight.yaml
format version this build reads.`,
		Usage: "spotlight version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	fmt.Fprintf(stdout, "spotlight version %s (built %s)\n", Version, BuildTime)
	fmt.Fprintf(stdout, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(stdout, "  config:  %s.x\n", config.SupportedMajor)
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		fmt.Fprintf(stdout, "  module:  %s %s\n", info.Main.Path, info.Main.Version)
	}
	return nil
}
