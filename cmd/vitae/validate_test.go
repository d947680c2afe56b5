package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"vitae-hq/vitae/pkg/report"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml", "ignore.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("name: x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("neither flag", func(t *testing.T) {
		if _, err := collectFiles("", ""); err == nil {
			t.Error("expected error when no file or dir given")
		}
	})

	t.Run("single file", func(t *testing.T) {
		files, err := collectFiles("resume.yml", "")
		if err != nil {
			t.Fatal(err)
		}
		if len(files) != 1 || files[0] != "resume.yml" {
			t.Errorf("files = %v", files)
		}
	})

	t.Run("directory", func(t *testing.T) {
		files, err := collectFiles("", dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(files) != 2 {
			t.Errorf("expected 2 yaml files, got %v", files)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		if _, err := collectFiles("", t.TempDir()); err == nil {
			t.Error("expected error for directory without résumé files")
		}
	})
}

func TestExitStatus(t *testing.T) {
	clean := FileResult{File: "clean.yml", Valid: true}
	invalid := FileResult{
		File:  "invalid.yml",
		Valid: false,
		Messages: []report.Message{
			{Level: report.LevelError, Message: "Required field 'email' is missing"},
		},
	}
	warned := FileResult{
		File:  "warned.yml",
		Valid: true,
		Messages: []report.Message{
			{Level: report.LevelWarning, FieldPath: "emial", Message: "Unknown field 'emial'"},
		},
		UnknownFields: []string{"emial"},
	}

	tests := []struct {
		name    string
		results []FileResult
		strict  bool
		wantErr bool
	}{
		{
			name:    "all clean",
			results: []FileResult{clean},
		},
		{
			name:    "errors fail",
			results: []FileResult{clean, invalid},
			wantErr: true,
		},
		{
			name:    "warnings pass by default",
			results: []FileResult{warned},
		},
		{
			name:    "warnings fail under strict",
			results: []FileResult{warned},
			strict:  true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exitStatus(tt.results, tt.strict)
			if tt.wantErr && err == nil {
				t.Error("exitStatus() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("exitStatus() = %v, want nil", err)
			}
		})
	}
}

// runValidate drives the full command the way a shell invocation would, so
// the exit contract is checked end to end for each output format.
func runValidate(t *testing.T, args ...string) error {
	t.Helper()

	t.Cleanup(func() {
		cfgFile = ""
		schemaFile = ""
		validateFlags.file = ""
		validateFlags.dir = ""
		validateFlags.strict = false
		validateFlags.format = "text"
	})

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"validate"}, args...))
	return rootCmd.Execute()
}

func TestValidateExitContract(t *testing.T) {
	dir := t.TempDir()

	schemaPath := filepath.Join(dir, "schema.yml")
	schema := `
type: object
required:
  - name
  - email
properties:
  name:
    type: string
  email:
    type: string
`
	if err := os.WriteFile(schemaPath, []byte(schema), 0o644); err != nil {
		t.Fatal(err)
	}

	invalidPath := filepath.Join(dir, "invalid.yml")
	if err := os.WriteFile(invalidPath, []byte("name: Ada\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	warnedPath := filepath.Join(dir, "warned.yml")
	warned := "name: Ada\nemail: ada@example.com\nhobbies: [chess]\n"
	if err := os.WriteFile(warnedPath, []byte(warned), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "json invalid document fails",
			args:    []string{"--schema", schemaPath, "--file", invalidPath, "--format", "json"},
			wantErr: true,
		},
		{
			name: "json warnings pass by default",
			args: []string{"--schema", schemaPath, "--file", warnedPath, "--format", "json"},
		},
		{
			name:    "json strict fails on warnings",
			args:    []string{"--schema", schemaPath, "--file", warnedPath, "--format", "json", "--strict"},
			wantErr: true,
		},
		{
			name:    "text invalid document fails",
			args:    []string{"--schema", schemaPath, "--file", invalidPath},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runValidate(t, tt.args...)
			if tt.wantErr && err == nil {
				t.Error("Execute() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Execute() = %v, want nil", err)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  report.Message
		want string
	}{
		{
			name: "message only",
			msg:  report.Message{Message: "Required field 'email' is missing"},
			want: "Required field 'email' is missing",
		},
		{
			name: "with path",
			msg:  report.Message{Message: "Expected string, got integer", FieldPath: "name"},
			want: "Expected string, got integer (at name)",
		},
		{
			name: "with suggestion",
			msg: report.Message{
				Message:    "Unknown field 'emial'",
				FieldPath:  "emial",
				Suggestion: "Did you mean 'email'?",
			},
			want: "Unknown field 'emial' (at emial) - Did you mean 'email'?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.msg); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
