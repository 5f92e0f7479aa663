package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		argv          []string
		wantWorkers   int
		wantKeepGoing bool
		wantVerbose   bool
		wantPreview   string
		wantArgs      []string
		wantErr       bool
	}{
		{
			name: "no arguments",
			argv: []string{"mdbook-quiz"},
		},
		{
			name:     "supports probe",
			argv:     []string{"mdbook-quiz", "supports", "html"},
			wantArgs: []string{"supports", "html"},
		},
		{
			name:          "all flags",
			argv:          []string{"mdbook-quiz", "--workers", "4", "--keep-going", "--verbose"},
			wantWorkers:   4,
			wantKeepGoing: true,
			wantVerbose:   true,
		},
		{
			name:        "verbose shorthand",
			argv:        []string{"mdbook-quiz", "-v"},
			wantVerbose: true,
		},
		{
			name:        "preview file",
			argv:        []string{"mdbook-quiz", "--preview", "ch1.md"},
			wantPreview: "ch1.md",
		},
		{
			name:    "unknown flag",
			argv:    []string{"mdbook-quiz", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.argv)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}

			if got.workers != tt.wantWorkers {
				t.Errorf("workers = %d, want %d", got.workers, tt.wantWorkers)
			}
			if got.keepGoing != tt.wantKeepGoing {
				t.Errorf("keepGoing = %v, want %v", got.keepGoing, tt.wantKeepGoing)
			}
			if got.verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", got.verbose, tt.wantVerbose)
			}
			if got.preview != tt.wantPreview {
				t.Errorf("preview = %q, want %q", got.preview, tt.wantPreview)
			}
			if len(got.args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", got.args, tt.wantArgs)
			}
			for i := range got.args {
				if got.args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, got.args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
