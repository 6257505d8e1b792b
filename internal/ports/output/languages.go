package output

// LanguageRegistry resolves provider language codes to display names.
type LanguageRegistry interface {
	// Lookup returns the display name for code. It reports false for unknown
	// codes and for the unknown-language marker.
	Lookup(code string) (string, bool)
}
