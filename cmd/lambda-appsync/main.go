package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dfeyer/lambda-appsync/internal/directive"
	"github.com/dfeyer/lambda-appsync/internal/gen"
	"github.com/dfeyer/lambda-appsync/internal/model"
	"github.com/dfeyer/lambda-appsync/internal/schemaload"
)

const version = "0.5.0"

const rootUsage = `lambda-appsync — AppSync Direct Lambda resolver generator

USAGE:
  lambda-appsync <command> [flags]

COMMANDS:
  generate         Generate resolver types, operations and runtime wiring
  version          Print the tool version
  help             Show help for any command
`

const generateUsage = `generate FLAGS:
  -directive <string>   Generation directive: schema path followed by
                        options, overrides and client declarations, e.g.
                          "schema.graphql, batch = true, hook = verifyRequest"
                        (required)
  -out <dir>            Output directory for generated files (default: .)
  -package <name>       Package name of generated files (default: main)
  -from <dir>           Base directory for schema path resolution
                        (default: current directory)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("lambda-appsync", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "generate":
		return cmdGenerate(cmdArgs)
	case "version":
		fmt.Println("lambda-appsync " + version)
		return nil
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "generate":
		fmt.Print(generateUsage)
	case "version":
		fmt.Println("version prints the tool version")
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdGenerate(args []string) error {
	directiveStr := ""
	outDir := "."
	pkg := "main"
	fromDir := ""

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&directiveStr, "directive", directiveStr, "Generation directive")
	fs.StringVar(&outDir, "out", outDir, "Output directory for generated files")
	fs.StringVar(&pkg, "package", pkg, "Package name of generated files")
	fs.StringVar(&fromDir, "from", fromDir, "Base directory for schema path resolution")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, generateUsage)
		return err
	}
	if directiveStr == "" {
		fmt.Fprint(os.Stderr, generateUsage)
		return fmt.Errorf("-directive is required")
	}
	if fromDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		fromDir = wd
	}

	cfg, err := directive.Parse(directiveStr)
	if err != nil {
		return fmt.Errorf("parse directive: %w", err)
	}
	doc, schemaPath, err := schemaload.Load(cfg.SchemaPath, fromDir, cfg.SchemaPathPos)
	if err != nil {
		return err
	}
	decls := model.Build(doc, cfg)

	files, err := gen.Generate(cfg, decls, gen.Options{Package: pkg})
	if err != nil {
		return err
	}
	if err := gen.WriteFiles(outDir, files); err != nil {
		return err
	}

	log.Printf("generated %d file(s) from %s", len(files), schemaPath)
	for _, f := range files {
		log.Printf("  %s", f.Name)
	}
	return nil
}
