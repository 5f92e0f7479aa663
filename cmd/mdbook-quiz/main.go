package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	mdquiz "github.com/mdquiz/go-mdquiz"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	// mdbook probes renderer support with "supports <renderer>" before
	// sending the book.
	if len(flags.args) == 2 && flags.args[0] == "supports" {
		if mdquiz.New().SupportsRenderer(flags.args[1]) {
			os.Exit(ExitSuccess)
		}
		os.Exit(ExitGeneral)
	}

	if flags.version {
		fmt.Printf("mdbook-quiz %s\n", Version)
		return
	}

	ctx := context.Background()

	if flags.preview != "" {
		if err := runPreview(ctx, flags.preview, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitCodeFor(err))
		}
		return
	}

	if err := run(ctx, flags, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
