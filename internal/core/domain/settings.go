package domain

// Default values for tunable session settings.
const (
	// DefaultPageSize is the number of lines per viewer page.
	DefaultPageSize = 50
	// DefaultMaxFileSizeMB is the per-upload size ceiling in megabytes.
	DefaultMaxFileSizeMB = 50
	// DefaultTopTokens is how many ranked tokens an analysis returns.
	DefaultTopTokens = 25
)

// Settings are the resolved session tunables. Presentation adapters
// build one from the config store plus flags; the engine itself never
// reads configuration.
type Settings struct {
	// ContextChars is the number of characters captured on each side
	// of a match.
	ContextChars int
	// PageSize is the number of lines per viewer page.
	PageSize int
	// MaxFileSizeMB caps uploads, in megabytes.
	MaxFileSizeMB int
	// Workers bounds concurrent per-document searches. Zero means one
	// worker per CPU.
	Workers int
	// StopwordLang is an ISO 639-1 code for stopword removal during
	// analysis. Empty disables the filter.
	StopwordLang string
}

// DefaultSettings returns the out-of-the-box session settings.
func DefaultSettings() Settings {
	return Settings{
		ContextChars:  DefaultContextChars,
		PageSize:      DefaultPageSize,
		MaxFileSizeMB: DefaultMaxFileSizeMB,
	}
}

// MaxFileSizeBytes returns the upload ceiling in bytes.
func (s Settings) MaxFileSizeBytes() int64 {
	return int64(s.MaxFileSizeMB) * 1024 * 1024
}
