// Package cmd implements the spotlight CLI commands.
//
// The root command dispatches to subcommands (render, preview, version)
// registered from init functions.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"github.com/go-drift/spotlight/pkg/config"
	"github.com/go-drift/spotlight/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "spotlight",
	Short: "Spotlight - dim the screen around what matters",
	Long: `Spotlight draws a dimmed overlay that leaves chosen regions visible,
with a caption and a dismiss control. This tool renders and previews the
overlay on a sample screen.

Use "spotlight <command> --help" for more information about a command.`,
	Usage: "spotlight <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// configDir is where spotlight.yaml and .env are looked up.
var configDir = "."

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --config
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				return runVersion(nil)
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 < len(args) {
				configDir = args[i+1]
				i++
			} else {
				return fmt.Errorf("--config requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				configDir = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// loadConfig resolves the configuration and installs the logger it names,
// for this package and for gg.
func loadConfig() (*config.Resolved, error) {
	cfg, err := config.Resolve(configDir)
	if err != nil {
		return nil, err
	}
	logger := logging.Init(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	gg.SetLogger(logger)
	logger.Debug("configuration loaded", "dir", cfg.Root, "version", cfg.Version)
	return cfg, nil
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --config DIR         Directory holding spotlight.yaml and .env (default: .)")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "  SPOTLIGHT_*          Override any spotlight.yaml setting")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  spotlight render --out frames    Write the fade in and out as PNGs")
	fmt.Fprintln(stdout, "  spotlight preview                Try the overlay in the terminal")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
