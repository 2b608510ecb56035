/*
File    : sloth/cmd/sloth/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Sloth interpreter. It provides
two modes of operation:
1. REPL mode (default): an interactive read-eval-print loop
2. File mode (-file): run a Sloth source file non-interactively

The interpreter uses a lexer-parser-evaluator pipeline to process Sloth
source text.
*/
package main

import (
	"flag"
	"os"

	"github.com/akashmaji946/sloth/eval"
	"github.com/akashmaji946/sloth/lexer"
	"github.com/akashmaji946/sloth/object"
	"github.com/akashmaji946/sloth/parser"
	"github.com/akashmaji946/sloth/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the Sloth interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "sloth >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  ▄▄▄▄▄  ▄▄▄     ▄▄▄▄▄  ▄▄▄▄▄  ▄ ▄
  ██     ██     ██  ██    ██   ██ ██
  ▀▀▀█▄  ██     ██  ██    ██   ██▀▀██
  ▄▄▄▄█  ██▄▄▄  ▀█▄▄█▀  ▄▄██▄▄ ██  ██
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output.
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main parses command-line flags and either runs a script file or
// starts the interactive REPL.
//
// Usage:
//
//	sloth               - start in REPL (interactive) mode
//	sloth -file <path>  - execute the given Sloth source file
//	sloth -version      - display version information
func main() {
	filePath := flag.String("file", "", "run the Sloth script at this path instead of starting the REPL")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *filePath != "" {
		runFile(*filePath)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func printVersion() {
	cyanColor.Println("Sloth - a small interpreted scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Sloth source file, reporting parse
// errors or a runtime Fault on stderr and exiting non-zero.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	executeWithRecovery(string(source))
}

// executeWithRecovery runs one full program through the
// lexer/parser/evaluator pipeline, recovering from any host-level panic
// so a bug in the interpreter is reported rather than crashing the
// process silently.
func executeWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.New(lexer.New(source))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := eval.Eval(program, env)

	if result == nil {
		return
	}

	if result.Type() == object.FaultObj {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	if result.Type() != object.NullObj {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
