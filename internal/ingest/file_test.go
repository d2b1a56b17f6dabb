package ingest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadJSONFile_MissingFile(t *testing.T) {
	_, err := ReadJSONFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestReadJSONFile_MalformedContent(t *testing.T) {
	path := writeFile(t, "bad.json", "{oops")

	_, err := ReadJSONFile(path)
	if err == nil {
		t.Fatal("expected a decode error, got nil")
	}
	if errors.Is(err, ErrFileNotFound) {
		t.Fatalf("parse failure must not masquerade as a missing file: %v", err)
	}
}

func TestReadJSONFile_KeepsNumbersRaw(t *testing.T) {
	path := writeFile(t, "orders.json", `[{"quantity": 2}]`)

	doc, err := ReadJSONFile(path)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	list, ok := doc.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected a one-element list, got %#v", doc)
	}
	rec := list[0].(map[string]any)
	if _, ok := rec["quantity"].(json.Number); !ok {
		t.Fatalf("expected quantity to decode as json.Number, got %T", rec["quantity"])
	}
}
