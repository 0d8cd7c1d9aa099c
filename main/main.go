/*
File    : monkeylang/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the process entry point for the Monkey interpreter. It
offers three modes of operation:
 1. REPL mode (default): interactive Read-Eval-Print Loop on stdin/stdout
 2. File mode: execute a Monkey source file given as an argument
 3. Server mode: a TCP REPL server, one independent session per connection

The interpreter itself is only reachable through the lexer -> parser ->
evaluator pipeline; this package is pure I/O and argument plumbing around
it.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/monkeylang/evaluator"
	"github.com/akashmaji946/monkeylang/lexer"
	"github.com/akashmaji946/monkeylang/parser"
	"github.com/akashmaji946/monkeylang/repl"
)

// VERSION is the interpreter's version string.
var VERSION = "v1.0.0"

// AUTHOR is the interpreter's contact information.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// PROMPT is the command prompt shown in REPL mode.
var PROMPT = "monkey >> "

// BANNER is the ASCII logo shown at REPL startup.
var BANNER = `
            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

// LINE is the separator used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch {
		case arg == "--help" || arg == "-h":
			showHelp()
			return
		case arg == "--version" || arg == "-v":
			showVersion()
			return
		case arg == "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: monkey server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Monkey - a small expression-oriented language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkey                    Start interactive REPL mode")
	yellowColor.Println("  monkey <path-to-file>      Execute a Monkey source file")
	yellowColor.Println("  monkey server <port>       Start a REPL server on the given port")
	yellowColor.Println("  monkey --help               Display this help message")
	yellowColor.Println("  monkey --version            Display version information")
}

func showVersion() {
	cyanColor.Println("Monkey - a small expression-oriented language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Monkey source file: parse errors are
// printed and the process exits non-zero, otherwise the evaluated result
// (if any) is printed.
func runFile(fileName string) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	executeWithRecovery(os.Stdout, string(src), true)
}

// startServer listens on port and hands each accepted connection its own
// goroutine and its own Repl instance. Sessions share no state: this is
// the only place concurrency enters the system, and it is host-level
// plumbing around independent single-threaded evaluations, not a
// language-visible concurrency primitive.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("monkey REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

// executeWithRecovery parses and evaluates src, recovering from any
// panic so a single bad file can't crash the process without a clear
// message. exitOnError controls whether a parse/eval failure terminates
// the process (file mode, the only caller) or merely reports it.
func executeWithRecovery(stdout *os.File, src string, exitOnError bool) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", r)
			if exitOnError {
				os.Exit(1)
			}
		}
	}()

	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		if exitOnError {
			os.Exit(1)
		}
		return
	}

	result := evaluator.Eval(program)
	if result != nil {
		yellowColor.Fprintf(stdout, "%s\n", result.Inspect())
	}
}
