/*
File    : monkeylang/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Monkey
interpreter. For each line of input it builds a fresh Lexer, feeds it to a
Parser, and prints either the pretty-printed form of the parsed program
(on success, with the evaluated result alongside it) or a decorative
error banner followed by each accumulated parse error.

The REPL never terminates on its own; termination is by end-of-input on
the input stream (Ctrl+D) or the `.exit` command.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/monkeylang/evaluator"
	"github.com/akashmaji946/monkeylang/lexer"
	"github.com/akashmaji946/monkeylang/parser"
)

// Color definitions for REPL output, mirroring the CLI's styling:
// - blueColor: separators
// - yellowColor: version line and pretty-printed programs
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational text and evaluated results
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const parserErrorBanner = `Woops! We ran into some monkey business here!
 parser errors:`

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl instance with the given cosmetic configuration.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// printBanner displays the welcome banner and usage instructions.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome! Type Monkey code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, use up/down arrows for history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against reader/writer until EOF, an error
// from readline, or the `.exit` command.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)

		r.execute(writer, line)
	}
}

// execute parses and evaluates a single line, printing either the
// accumulated parse errors or the pretty-printed program and its
// evaluated result.
func (r *Repl) execute(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		printParserErrors(writer, errs)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", program.String())

	if result := evaluator.Eval(program); result != nil {
		cyanColor.Fprintf(writer, "=> %s\n", result.Inspect())
	}
}

// printParserErrors renders the decorative error banner followed by each
// accumulated message, one per line.
func printParserErrors(writer io.Writer, errs []string) {
	redColor.Fprintln(writer, parserErrorBanner)
	for _, msg := range errs {
		redColor.Fprintf(writer, "\t%s\n", msg)
	}
}
