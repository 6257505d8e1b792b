package languages

import (
	_ "embed"
	"errors"
	"path/filepath"
	"strings"

	"papagowf/internal/domain"
	"papagowf/internal/ports/output"
	"papagowf/pkg/jsonfile"
)

//go:embed schema.json
var schemaJSON string

var schema = jsonfile.MustCompileSchema("available_language_codes.schema.json", schemaJSON)

var _ output.LanguageRegistry = (*Registry)(nil)

// Registry maps provider language codes to display names. It is immutable
// once built.
type Registry struct {
	names map[string]string
}

// NewRegistry copies names into a new Registry.
func NewRegistry(names map[string]string) *Registry {
	copied := make(map[string]string, len(names))
	for code, name := range names {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		copied[code] = name
	}
	return &Registry{names: copied}
}

// Lookup returns the display name of code. The unknown-language marker is
// never supported, even when the file lists it.
func (r *Registry) Lookup(code string) (string, bool) {
	if r == nil || code == domain.LangUnknown {
		return "", false
	}
	name, ok := r.names[code]
	return name, ok
}

// FileLoader reads a Registry from a flat JSON object of code -> name.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load reads the language file. Every failure is a *domain.ConfigurationError.
func (l *FileLoader) Load() (*Registry, error) {
	source := filepath.Base(l.path)

	var names map[string]string
	if err := jsonfile.Read(l.path, schema, &names); err != nil {
		code := domain.CodeLanguagesMissing
		if errors.Is(err, jsonfile.ErrInvalid) {
			code = domain.CodeLanguagesInvalid
		}
		return nil, &domain.ConfigurationError{Code: code, Source: source, Err: err}
	}

	return NewRegistry(names), nil
}
