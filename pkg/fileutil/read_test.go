package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/dotconf/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFileWithLimit(path)
	if err != nil {
		t.Fatalf("ReadFileWithLimit: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("data = %q", data)
	}
}

func TestReadFileWithLimit_TooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	if err := os.WriteFile(path, make([]byte, MaxFileSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFileWithLimit(path)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestReadFileWithLimit_Missing(t *testing.T) {
	_, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadAllWithLimit(t *testing.T) {
	data, err := ReadAllWithLimit(bytes.NewReader([]byte("stream")))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "stream" {
		t.Errorf("data = %q", data)
	}

	_, err = ReadAllWithLimit(bytes.NewReader(make([]byte, MaxFileSize+1)))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("err = %v, want ErrFileTooLarge", err)
	}
}
