package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line options.
type cliFlags struct {
	workers   int
	keepGoing bool
	verbose   bool
	preview   string
	version   bool
	args      []string
}

// parseFlags parses argv into cliFlags. Positional arguments (the optional
// "supports <renderer>" probe) are returned in args.
func parseFlags(argv []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("mdbook-quiz", flag.ContinueOnError)

	f := &cliFlags{}
	fs.IntVar(&f.workers, "workers", 0, "chapters rewritten concurrently (0 = auto)")
	fs.BoolVar(&f.keepGoing, "keep-going", false, "continue past failing chapters, aggregating errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.StringVar(&f.preview, "preview", "", "render the given markdown file to HTML on stdout and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(argv[1:]); err != nil {
		return nil, err
	}
	f.args = fs.Args()
	return f, nil
}
