// Package ingest reads raw order collections and turns them into domain
// entities, filtering out records that fail validation.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrFileNotFound is returned when the input path does not resolve. A file
// that exists but holds malformed JSON fails differently.
var ErrFileNotFound = errors.New("file does not exist")

// ReadJSONFile decodes the JSON document at path. Numbers are kept as
// json.Number so integer fields survive the trip into validation intact.
func ReadJSONFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
