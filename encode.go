package investrak

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file contains the code to persist entity collections as JSONL
// streams, one self-describing record per line, in a way that is still
// human-readable and git-friendly.

// decodeCollection reads a JSONL stream and returns the records in storage
// order. filename is for error messages only.
func decodeCollection[T any](filename string, r io.Reader) ([]T, error) {
	items := make([]T, 0, 64)
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, i, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return items, nil
}

// encodeCollection writes each record as a JSON line, preserving order.
func encodeCollection[T any](w io.Writer, items []T) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("cannot marshal record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write record: %w", err)
		}
	}
	return nil
}
