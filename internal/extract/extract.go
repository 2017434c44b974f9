// Package extract turns uploaded files into analyzable text. Only text-based
// formats are accepted; binary document parsing (PDF, DOCX, OCR) is out of
// scope for this service.
package extract

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrUnsupportedType is wrapped into errors for files outside the allow-list.
var ErrUnsupportedType = fmt.Errorf("unsupported file type")

var supportedTypes = map[string]struct{}{
	"txt": {}, "csv": {}, "json": {}, "xml": {}, "html": {}, "md": {},
	"log": {}, "py": {}, "js": {}, "ts": {}, "yaml": {}, "yml": {},
	"ini": {}, "conf": {}, "cfg": {},
}

// FileType derives the lowercase extension-based type, "unknown" when absent.
func FileType(fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		return "unknown"
	}
	return strings.ToLower(ext)
}

// DecodeText validates the file type and decodes the payload to a string.
// UTF-8 is preferred; anything else falls back to a Latin-1 interpretation,
// which accepts every byte sequence.
func DecodeText(data []byte, fileName string) (string, string, error) {
	fileType := FileType(fileName)
	if _, ok := supportedTypes[fileType]; !ok {
		return "", fileType, fmt.Errorf("%w %q: supported types: %s; for PDF/DOCX, extract text first",
			ErrUnsupportedType, fileType, SupportedTypes())
	}
	if utf8.Valid(data) {
		return string(data), fileType, nil
	}
	return decodeLatin1(data), fileType, nil
}

// SupportedTypes lists the accepted extensions for error messages and docs.
func SupportedTypes() string {
	types := make([]string, 0, len(supportedTypes))
	for t := range supportedTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return strings.Join(types, ", ")
}

func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
