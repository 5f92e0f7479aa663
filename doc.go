// Package mdquiz expands quiz directives in mdbook chapters.
//
// A chapter references a quiz with a single-line directive:
//
//	{{#quiz ../quizzes/rust-variables.toml}}
//
// The preprocessor replaces each directive with a placeholder element the
// client-side quiz renderer hydrates at read time:
//
//	<div class="quiz-placeholder" data-quiz-name="rust-variables" data-quiz-questions="..." ></div>
//
// # Pipeline
//
// Rewriting one chapter follows these stages:
//
//  1. Tokenize the chapter into line tokens (code blocks are opaque)
//  2. Match each text token against the directive pattern
//  3. Load the referenced definition file (TOML, YAML, or JSON)
//  4. Encode the definition as the JSON blob the renderer decodes
//  5. Build the placeholder element with escaped data attributes
//  6. Serialize the token stream back to markdown
//
// Tokens that are not a full-line directive pass through byte for byte, so
// a chapter without directives serializes back to its exact input.
//
// # Usage
//
// Create a Processor and run it over the book mdbook hands you on stdin:
//
//	proc := mdquiz.New(mdquiz.WithConfig(cfg))
//	if err := proc.Run(ctx, runContext, book); err != nil {
//	    log.Fatal(err)
//	}
//
// The cmd/mdbook-quiz binary wires this to mdbook's JSON preprocessor
// protocol.
package mdquiz
