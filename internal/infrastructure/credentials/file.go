package credentials

import (
	_ "embed"
	"errors"
	"path/filepath"
	"strings"

	"papagowf/internal/domain"
	"papagowf/internal/domain/entities"
	"papagowf/pkg/jsonfile"
)

//go:embed schema.json
var schemaJSON string

var schema = jsonfile.MustCompileSchema("client_key.schema.json", schemaJSON)

// FileStore reads the provider client id and secret from a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and validates the credential file. Every failure is a
// *domain.ConfigurationError.
func (s *FileStore) Load() (entities.Credentials, error) {
	source := filepath.Base(s.path)

	var creds entities.Credentials
	if err := jsonfile.Read(s.path, schema, &creds); err != nil {
		code := domain.CodeCredentialsMissing
		if errors.Is(err, jsonfile.ErrInvalid) {
			code = domain.CodeCredentialsInvalid
		}
		return entities.Credentials{}, &domain.ConfigurationError{Code: code, Source: source, Err: err}
	}

	creds.ClientID = strings.TrimSpace(creds.ClientID)
	creds.ClientSecret = strings.TrimSpace(creds.ClientSecret)
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return entities.Credentials{}, &domain.ConfigurationError{Code: domain.CodeCredentialsEmpty, Source: source}
	}

	return creds, nil
}
