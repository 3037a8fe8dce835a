package domain

import (
	"path"
	"path/filepath"
	"strings"
)

// maxFilenameLen caps sanitised filenames.
const maxFilenameLen = 255

// KindFromFilename derives the source kind from a filename extension.
// Unrecognised extensions yield KindUnknown.
func KindFromFilename(filename string) SourceKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".txt", ".text", ".log":
		return KindText
	case ".md", ".markdown":
		return KindMarkdown
	case ".csv":
		return KindCSV
	case ".json":
		return KindJSON
	default:
		return KindUnknown
	}
}

// SanitizeFilename strips path components and characters outside
// [A-Za-z0-9_.-] from an upload's filename, so a hostile name can never
// escape into anything path-like downstream.
func SanitizeFilename(filename string) string {
	// Handle both separators regardless of host platform.
	filename = path.Base(strings.ReplaceAll(filename, "\\", "/"))

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	safe := b.String()
	if len(safe) > maxFilenameLen {
		safe = safe[:maxFilenameLen]
	}
	if safe == "" || safe == "." || safe == ".." {
		safe = "upload"
	}
	return safe
}
