package main

import (
	"errors"
	"io"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing and validation
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    cliFlags
		wantErr error
	}{
		{
			name: "no flags",
			args: nil,
			want: cliFlags{},
		},
		{
			name: "short flags",
			args: []string{"-c", "site", "-o", "dist", "-v"},
			want: cliFlags{config: "site", output: "dist", verbose: true},
		},
		{
			name: "long flags",
			args: []string{"--config=./blog.yaml", "--output", "dist", "--quiet"},
			want: cliFlags{config: "./blog.yaml", output: "dist", quiet: true},
		},
		{
			name: "version",
			args: []string{"--version"},
			want: cliFlags{version: true},
		},
		{
			name: "help",
			args: []string{"-h"},
			want: cliFlags{help: true},
		},
		{
			name:    "positional argument",
			args:    []string{"posts"},
			wantErr: ErrUnexpectedArgs,
		},
		{
			name:    "quiet and verbose",
			args:    []string{"-q", "-v"},
			wantErr: ErrConflictFlags,
		},
		{
			name:    "unknown flag",
			args:    []string{"--watch"},
			wantErr: ErrUsage,
		},
		{
			name:    "missing flag value",
			args:    []string{"--output"},
			wantErr: ErrUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("parseFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags(%v) unexpected error: %v", tt.args, err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags(%v) = %+v, want %+v", tt.args, *got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Pre-parse verbose detection
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"-v"}, true},
		{[]string{"-o", "dist", "--verbose"}, true},
		{[]string{"-q"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
