package mdquiz

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"sync"
)

// ProcessorName is the preprocessor's name in mdbook configuration
// ([preprocessor.quiz] in book.toml).
const ProcessorName = "quiz"

// Worker pool bounds for chapter processing.
const (
	minWorkers = 1
	maxWorkers = 8
)

// Processor rewrites quiz directives across a whole book.
type Processor struct {
	cfg       Config
	workers   int
	keepGoing bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithConfig sets the run-wide quiz options.
func WithConfig(cfg Config) Option {
	return func(p *Processor) { p.cfg = cfg }
}

// WithWorkers sets how many chapters are rewritten concurrently.
// Zero or negative selects a size based on GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Processor) { p.workers = n }
}

// WithKeepGoing isolates failures per chapter instead of aborting the run
// on the first error. Failed chapters keep their original content and all
// errors are aggregated in the returned error.
func WithKeepGoing(keepGoing bool) Option {
	return func(p *Processor) { p.keepGoing = keepGoing }
}

// New creates a Processor with default configuration.
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	p.workers = resolveWorkers(p.workers)
	return p
}

// resolveWorkers determines the pool size.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	n = runtime.GOMAXPROCS(0)
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// SupportsRenderer reports whether the rewritten book works for the given
// renderer. The placeholder is plain markup, so everything is supported.
func (p *Processor) SupportsRenderer(renderer string) bool {
	return renderer != "not-supported"
}

// Run rewrites every chapter of book in place. Chapters are independent:
// each rewrite touches only its own content and shares the read-only
// Config, so chapters are processed by a bounded worker pool. A chapter is
// only mutated when its whole rewrite succeeds.
//
// By default any chapter error fails the run and the book should be
// discarded; WithKeepGoing keeps successful chapters and aggregates the
// failures.
func (p *Processor) Run(ctx context.Context, rc *RunContext, book *Book) error {
	srcDir := filepath.Join(rc.Root, filepath.FromSlash(rc.SrcDir()))

	var chapters []*Chapter
	collectChapters(book.Sections, &chapters)

	sem := make(chan struct{}, p.workers)
	errs := make([]error, len(chapters))
	var wg sync.WaitGroup

	for i, ch := range chapters {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ch *Chapter) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = p.rewrite(srcDir, ch)
		}(i, ch)
	}
	wg.Wait()

	if p.keepGoing {
		return errors.Join(errs...)
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// rewrite expands directives in one chapter. Draft chapters have no source
// file on disk and pass through untouched.
func (p *Processor) rewrite(srcDir string, ch *Chapter) error {
	if ch.Path == nil {
		return nil
	}

	chapterPath := filepath.Join(srcDir, filepath.FromSlash(*ch.Path))
	content, err := RewriteChapter(ch.Content, chapterPath, filepath.Dir(chapterPath), p.cfg)
	if err != nil {
		return err
	}
	ch.Content = content
	return nil
}

// collectChapters flattens the book tree into the chapters carrying content.
func collectChapters(items []BookItem, out *[]*Chapter) {
	for i := range items {
		ch := items[i].Chapter
		if ch == nil {
			continue
		}
		*out = append(*out, ch)
		collectChapters(ch.SubItems, out)
	}
}
