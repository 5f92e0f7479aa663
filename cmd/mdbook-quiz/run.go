package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	mdquiz "github.com/mdquiz/go-mdquiz"
)

// Sentinel errors for protocol and preview operations.
var (
	ErrReadInput    = errors.New("failed to read preprocessor input")
	ErrDecodeInput  = errors.New("preprocessor input is not a [context, book] pair")
	ErrEncodeOutput = errors.New("failed to write rewritten book")
	ErrReadPreview  = errors.New("failed to read preview file")
)

// run executes mdbook's preprocessor protocol: decode the [context, book]
// pair from stdin, rewrite every chapter, and write the book back to stdout.
func run(ctx context.Context, flags *cliFlags, stdin io.Reader, stdout, stderr io.Writer) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	rc, book, err := decodeInput(data)
	if err != nil {
		return err
	}

	cfg, err := mdquiz.ParseConfig(rc.Options(mdquiz.ProcessorName))
	if err != nil {
		return err
	}

	proc := mdquiz.New(
		mdquiz.WithConfig(cfg),
		mdquiz.WithWorkers(flags.workers),
		mdquiz.WithKeepGoing(flags.keepGoing),
	)

	if flags.verbose {
		fmt.Fprintf(stderr, "mdbook-quiz: rewriting book at %s for renderer %q\n", rc.Root, rc.Renderer)
	}

	if err := proc.Run(ctx, rc, book); err != nil {
		return err
	}

	out, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeOutput, err)
	}
	if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeOutput, err)
	}
	return nil
}

// decodeInput splits the [context, book] JSON pair mdbook writes on stdin.
func decodeInput(data []byte) (*mdquiz.RunContext, *mdquiz.Book, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecodeInput, err)
	}
	if len(pair) != 2 {
		return nil, nil, fmt.Errorf("%w: got %d elements", ErrDecodeInput, len(pair))
	}

	var rc mdquiz.RunContext
	if err := json.Unmarshal(pair[0], &rc); err != nil {
		return nil, nil, fmt.Errorf("%w: context: %v", ErrDecodeInput, err)
	}
	var book mdquiz.Book
	if err := json.Unmarshal(pair[1], &book); err != nil {
		return nil, nil, fmt.Errorf("%w: book: %v", ErrDecodeInput, err)
	}
	return &rc, &book, nil
}

// runPreview renders one markdown file to an HTML fragment on stdout.
// Useful for checking how an expanded chapter will render.
func runPreview(ctx context.Context, path string, stdout io.Writer) error {
	content, err := os.ReadFile(path) // #nosec G304 -- preview path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadPreview, err)
	}

	frag, err := mdquiz.PreviewHTML(ctx, string(content))
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, frag)
	return err
}
