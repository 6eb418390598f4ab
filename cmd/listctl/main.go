// Loads line-oriented inputs into linked lists, runs list operations over them and prints the resulting list.
//
// Usage: listctl [flags] [files...]
// Every non-blank line is one element; stdin is read when no file is given.

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nobletooth/dlist/pkg/config"
	"github.com/nobletooth/dlist/pkg/textlist"
	"github.com/nobletooth/dlist/pkg/utils"
)

var printVersion = flag.Bool("print_version", false, "Print the version and exit.")

func main() {
	config.InitFlags()
	utils.InitLogging()

	if *printVersion {
		fmt.Printf("listctl version=%s commit=%s build=%s\n", utils.Version, utils.Commit, utils.BuildTime)
		return
	}

	if err := run(os.Stdout, os.Stdin, flag.Args(), textlist.OptionsFromFlags()); err != nil {
		slog.Error("listctl failed.", "err", err)
		os.Exit(1)
	}
}

// run loads the inputs named by `paths` (or `stdin`), applies `opts` and writes the result to `out`.
func run(out io.Writer, stdin io.Reader, paths []string, opts textlist.Options) error {
	inputs, err := textlist.LoadFiles(paths, stdin)
	if err != nil {
		return fmt.Errorf("failed to load inputs: %w", err)
	}
	result, err := textlist.Run(opts, inputs)
	if err != nil {
		return fmt.Errorf("failed to process inputs: %w", err)
	}
	slog.Info("Processed inputs.", "inputs", len(inputs), "lines", result.List.Len())

	if _, err := fmt.Fprintln(out, result.List); err != nil {
		return err
	}
	if result.Searched {
		if _, err := fmt.Fprintf(out, "found=%t\n", result.Found); err != nil {
			return err
		}
	}
	return nil
}
