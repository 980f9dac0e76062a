package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/xyproto/env/v2"

	"go.creack.net/rankexpr/ast"
	"go.creack.net/rankexpr/parser"
)

type config struct {
	fold    bool   // EXPR_FOLD: fold constant subtrees before printing.
	pretty  bool   // EXPR_PRETTY: print the Go structure instead of the dump.
	verbose bool   // EXPR_VERBOSE: log every line.
	prompt  string // EXPR_PROMPT: prompt shown when reading stdin.
}

func loadConfig() config {
	return config{
		fold:    env.Bool("EXPR_FOLD"),
		pretty:  env.Bool("EXPR_PRETTY"),
		verbose: env.Bool("EXPR_VERBOSE"),
		prompt:  env.Str("EXPR_PROMPT", "> "),
	}
}

func render(cfg config, expr ast.Expr) string {
	if cfg.fold {
		expr = ast.Fold(expr)
	}
	if cfg.pretty {
		return pretty.Sprint(expr)
	}
	return expr.Dump()
}

// parseLine parses one expression and writes the result to stdout, or the
// error with a caret under the failing column to stderr.
func parseLine(cfg config, line string, stdout, stderr io.Writer) error {
	expr, err := parser.Parse(line)
	if err != nil {
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintf(stderr, "%s\n%s\n", syntaxErr, syntaxErr.Snippet(line))
		} else {
			fmt.Fprintf(stderr, "%s\n", err)
		}
		return fmt.Errorf("parse %q: %w", line, err)
	}
	fmt.Fprintln(stdout, render(cfg, expr))
	return nil
}

// run parses every argument, or every stdin line when there are none.
// It returns the exit code.
func run(cfg config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	exitCode := 0
	handle := func(line string) {
		if err := parseLine(cfg, line, stdout, stderr); err != nil {
			if cfg.verbose {
				log.Printf("Fail: %s.", err)
			}
			exitCode = 1
		} else if cfg.verbose {
			log.Printf("Parsed %q.", line)
		}
	}

	if len(args) > 0 {
		for _, arg := range args {
			handle(arg)
		}
		return exitCode
	}

	interactive := stdin == os.Stdin && isTerminal(os.Stdin)
	scanner := bufio.NewScanner(stdin)
	for {
		if interactive {
			fmt.Fprint(stdout, cfg.prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		handle(line)
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Read stdin: %s.", err)
		return 1
	}
	return exitCode
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	os.Exit(run(loadConfig(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
