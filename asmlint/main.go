package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/WJQSERVER/asmlex"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

const usage = `asmlint: a tool for inspecting assembly source at the token level.

Usage:
  asmlint <command> [arguments]

Commands:
  tokens [path ...]   print the token stream of each file
  lint [path ...]     lint files and report issues
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	tokensCmd := flag.NewFlagSet("tokens", flag.ExitOnError)
	tokensJSON := tokensCmd.Bool("json", false, "Output tokens in JSON format")

	lintCmd := flag.NewFlagSet("lint", flag.ExitOnError)
	lintJSON := lintCmd.Bool("json", false, "Output issues in JSON format")
	concurrent := lintCmd.Bool("concurrent", false, "Lint files concurrently")

	switch os.Args[1] {
	case "tokens":
		tokensCmd.Parse(os.Args[2:])
		paths := tokensCmd.Args()
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "Error: missing file paths for tokens command.")
			os.Exit(1)
		}
		if err := dumpTokens(os.Stdout, os.Stderr, paths, *tokensJSON); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "lint":
		lintCmd.Parse(os.Args[2:])
		paths := lintCmd.Args()
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "Error: missing file paths for lint command.")
			os.Exit(1)
		}
		if err := lintFiles(os.Stdout, os.Stderr, paths, *lintJSON, *concurrent); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

type fileTokens struct {
	Path   string         `json:"path"`
	Tokens []asmlex.Token `json:"tokens"`
	Error  string         `json:"error,omitempty"`
}

func dumpTokens(w, stderr io.Writer, paths []string, jsonOutput bool) error {
	var all []fileTokens
	failed := false
	for _, path := range paths {
		toks, err := tokenizeFile(path)
		ft := fileTokens{Path: path, Tokens: toks}
		if err != nil {
			ft.Error = err.Error()
			failed = true
		}
		if jsonOutput {
			all = append(all, ft)
			continue
		}
		fmt.Fprintf(w, "%s:\n", path)
		for _, tok := range toks {
			fmt.Fprintf(w, "  %s\n", tok)
		}
		if err != nil {
			// Tokenizer and open errors already name the file.
			fmt.Fprintln(stderr, err)
		}
	}

	if jsonOutput {
		if err := json.MarshalWrite(w, all, jsontext.Expand(true), jsontext.WithIndent("  ")); err != nil {
			return fmt.Errorf("could not marshal json: %w", err)
		}
	}
	if failed {
		return fmt.Errorf("errors encountered during tokenizing")
	}
	return nil
}

func tokenizeFile(path string) ([]asmlex.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return asmlex.Tokenize(f, asmlex.WithFilename(path))
}

type fileDiagnostics struct {
	path  string
	diags []asmlex.Diagnostic
	err   error
}

func lintFiles(stdout, stderr io.Writer, paths []string, jsonOutput, concurrent bool) error {
	results := make([]fileDiagnostics, len(paths))
	if !concurrent {
		for i, path := range paths {
			results[i] = lintFile(path)
		}
	} else {
		numWorkers := runtime.NumCPU()
		jobs := make(chan int, len(paths))
		var wg sync.WaitGroup

		for i := 0; i < numWorkers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for idx := range jobs {
					results[idx] = lintFile(paths[idx])
				}
			}()
		}

		for i := range paths {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	var readErrs []error
	var allDiags []asmlex.Diagnostic
	hasErrors := false
	for _, res := range results {
		if res.err != nil {
			readErrs = append(readErrs, fmt.Errorf("could not read file %s: %w", res.path, res.err))
			continue
		}
		for _, d := range res.diags {
			if d.Level == asmlex.LevelError {
				hasErrors = true
			}
		}
		allDiags = append(allDiags, res.diags...)
	}

	if jsonOutput {
		if err := json.MarshalWrite(stdout, allDiags, jsontext.Expand(true), jsontext.WithIndent("  ")); err != nil {
			return fmt.Errorf("could not marshal json: %w", err)
		}
	} else if len(allDiags) > 0 {
		fmt.Fprintln(stderr, "Linter found issues:")
		for _, res := range results {
			for _, d := range res.diags {
				fmt.Fprintf(stderr, "  - [%s] %s:%d:%d: %s\n", d.Level, res.path, d.Line, d.Column, d.Message)
			}
		}
	}

	if len(readErrs) > 0 {
		return errors.Join(readErrs...)
	}
	if hasErrors {
		return fmt.Errorf("linting found errors")
	}
	return nil
}

func lintFile(path string) fileDiagnostics {
	f, err := os.Open(path)
	if err != nil {
		return fileDiagnostics{path: path, err: err}
	}
	defer f.Close()
	_, diags := asmlex.Lint(f, asmlex.WithFilename(path))
	return fileDiagnostics{path: path, diags: diags}
}
