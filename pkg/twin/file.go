package twin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jusunglee/kmrl-twin/internal/models"
	"go.uber.org/multierr"
)

// Encode writes doc as JSON with 2-space indentation
func Encode(w io.Writer, doc *models.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// WriteFile replaces the file at path with the encoded document and returns the bytes written
func WriteFile(path string, doc *models.Document) (n int, err error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return 0, fmt.Errorf("encode dataset: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	n, err = f.Write(buf.Bytes())
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

// ReadFile parses a dataset previously written by WriteFile
func ReadFile(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}
