package main

import (
	"fmt"
	"os"

	"github.com/pthm/hxstyle/lib/generator"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "clean":
		if err := runClean(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("hxstyle version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hxstyle - Composable styling for server-rendered Go apps

Usage:
  hxstyle <command> [arguments]

Commands:
  generate [dirs]       Generate style fragments from .css files (e.g. ./... or ./components)
  clean [dirs]          Remove generated files (*_hx.go)
  version               Print version
  help                  Show this help

Options for generate:
  --dry-run             Show what would be generated without writing files
  --package <name>      Package name for generated files (default: directory name)

Examples:
  hxstyle generate ./...                  Generate for all directories
  hxstyle generate ./components           Generate for one directory
  hxstyle generate --dry-run ./...        Preview generation
  hxstyle clean ./...                     Remove all generated files`)
}

func runGenerate(args []string) error {
	var opts generator.Options
	var patterns []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--dry-run":
			opts.DryRun = true
		case "--package":
			if i+1 >= len(args) {
				return fmt.Errorf("--package requires a value")
			}
			i++
			opts.Package = args[i]
		default:
			patterns = append(patterns, args[i])
		}
	}

	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	return generator.New(opts).Generate(patterns...)
}

func runClean(args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	return generator.New(generator.Options{}).Clean(patterns...)
}
