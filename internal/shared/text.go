package shared

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextExtension is the advisory extension of playlist exports.
const TextExtension = ".txt"

// HasTextExtension reports whether name ends in .txt (case-insensitive).
//
// The extension is advisory: callers warn on a mismatch but still try the content.
func HasTextExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), TextExtension)
}

// DetectText reports whether data looks like text, and the sniffed content type.
func DetectText(data []byte) (string, bool) {
	ct := http.DetectContentType(data)
	return ct, strings.HasPrefix(ct, "text/")
}

// DecodeText converts raw export bytes to a string.
//
// UTF-8 (with or without a byte order mark) and UTF-16 with a byte order mark are
// accepted. Content that does not sniff as text is rejected with [ErrUnsupportedFileType].
func DecodeText(data []byte) (string, error) {
	if ct, ok := DetectText(data); !ok {
		return "", fmt.Errorf("%w: detected %s", ErrUnsupportedFileType, ct)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}

	return string(out), nil
}

// ReadText reads at most limit bytes from r and decodes them with [DecodeText].
//
// A limit of zero or less disables the check. Larger inputs fail with [ErrFileTooLarge].
func ReadText(r io.Reader, limit int64) (string, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if limit > 0 && int64(len(data)) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, limit)
	}

	return DecodeText(data)
}

// ReadTextFile reads and decodes the export at path. Directories are rejected.
func ReadTextFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrUnsupportedFileType, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return DecodeText(data)
}
