package domain

// SourceKind identifies the original format of an uploaded document.
// It drives loader selection only; downstream components never branch on it.
type SourceKind string

const (
	// KindPDF is a PDF document.
	KindPDF SourceKind = "pdf"

	// KindText is a plain text document.
	KindText SourceKind = "text"

	// KindMarkdown is a Markdown document.
	KindMarkdown SourceKind = "markdown"

	// KindCSV is a comma-separated values document.
	KindCSV SourceKind = "csv"

	// KindJSON is a JSON document.
	KindJSON SourceKind = "json"

	// KindUnknown is an unrecognised format.
	KindUnknown SourceKind = ""
)

// Kinds returns all recognised source kinds.
func Kinds() []SourceKind {
	return []SourceKind{KindPDF, KindText, KindMarkdown, KindCSV, KindJSON}
}

// Valid reports whether k is a recognised source kind.
func (k SourceKind) Valid() bool {
	switch k {
	case KindPDF, KindText, KindMarkdown, KindCSV, KindJSON:
		return true
	}
	return false
}

// Document is a normalised document held in volatile memory.
// It is immutable once constructed: no component mutates a Document in place.
type Document struct {
	// ID is the stable identifier, derived from the original filename and
	// disambiguated on collision by the corpus store.
	ID string

	// Filename is the sanitised original filename.
	Filename string

	// Kind is the original format of the upload.
	Kind SourceKind

	// Text is the normalised content: valid UTF-8 with invalid sequences
	// replaced, control characters stripped, line endings normalised to \n.
	Text string

	// Offsets maps character positions in Text to page/line coordinates.
	// Its domain always covers the whole of Text.
	Offsets *OffsetMap

	// SizeBytes is the size of the original upload, before normalisation.
	// The ingest size ceiling is enforced against this value.
	SizeBytes int64

	// Warnings records non-fatal extraction problems, such as a PDF page
	// that could not be decoded.
	Warnings []string
}

// CharCount returns the length of the document text in characters.
func (d *Document) CharCount() int {
	if d.Offsets == nil {
		return 0
	}
	return d.Offsets.RuneLen()
}

// LineCount returns the number of lines in the document text.
func (d *Document) LineCount() int {
	if d.Offsets == nil {
		return 0
	}
	return d.Offsets.LineCount()
}

// ViewLine is a single line served by the paginated viewer.
type ViewLine struct {
	// Number is the 1-based line number, stable across calls.
	Number int

	// Page is the page the line belongs to (always 1 for non-paged kinds).
	Page int

	// Text is the line content without the trailing newline.
	Text string
}

// ViewPage is one page of lines from the paginated viewer.
type ViewPage struct {
	// DocumentID identifies the document being viewed.
	DocumentID string

	// Lines are the served lines, in document order.
	Lines []ViewLine

	// HasMore reports whether lines exist past the end of this page.
	HasMore bool
}
