package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyQuery          = errors.New("query is empty")
	ErrTooManyArguments    = errors.New("expected a single query argument")
	ErrUnsupportedLanguage = errors.New("language is not supported for translation")
)

// Configuration error codes.
const (
	CodeConfigInvalid      = "config_invalid"
	CodeCredentialsMissing = "credentials_missing"
	CodeCredentialsInvalid = "credentials_invalid"
	CodeCredentialsEmpty   = "credentials_empty"
	CodeLanguagesMissing   = "languages_missing"
	CodeLanguagesInvalid   = "languages_invalid"
)

// Codes for the remaining error kinds.
const (
	CodeEmptyQuery          = "empty_query"
	CodeTooManyArguments    = "too_many_arguments"
	CodeUnsupportedLanguage = "unsupported_language"
	CodeProvider            = "provider_error"
	CodeParse               = "parse_error"
	CodeTransport           = "transport_error"
)

// Codes lists every code Code can return.
var Codes = []string{
	CodeConfigInvalid,
	CodeCredentialsMissing,
	CodeCredentialsInvalid,
	CodeCredentialsEmpty,
	CodeLanguagesMissing,
	CodeLanguagesInvalid,
	CodeEmptyQuery,
	CodeTooManyArguments,
	CodeUnsupportedLanguage,
	CodeProvider,
	CodeParse,
	CodeTransport,
}

// ConfigurationError reports a missing, unreadable or malformed local source
// (environment, credential file, language file).
type ConfigurationError struct {
	Code   string
	Source string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("configuration %s: %s", e.Code, e.Source)
	}
	return fmt.Sprintf("configuration %s: %s: %v", e.Code, e.Source, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ProviderError is a non-200 answer from one of the provider endpoints.
type ProviderError struct {
	Endpoint   string
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: error code:%d", e.Endpoint, e.StatusCode)
}

// ParseError is a 200 answer whose body lacks the expected fields.
type ParseError struct {
	Endpoint string
	Field    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("provider %s: response has no %s", e.Endpoint, e.Field)
}

// TransportError wraps a failure to reach the provider at all.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Code returns the stable code of a domain error, or "" for foreign errors.
func Code(err error) string {
	if err == nil {
		return ""
	}

	var cfgErr *ConfigurationError
	var provErr *ProviderError
	var parseErr *ParseError
	var transportErr *TransportError
	switch {
	case errors.As(err, &cfgErr):
		return cfgErr.Code
	case errors.As(err, &provErr):
		return CodeProvider
	case errors.As(err, &parseErr):
		return CodeParse
	case errors.As(err, &transportErr):
		return CodeTransport
	case errors.Is(err, ErrUnsupportedLanguage):
		return CodeUnsupportedLanguage
	case errors.Is(err, ErrEmptyQuery):
		return CodeEmptyQuery
	case errors.Is(err, ErrTooManyArguments):
		return CodeTooManyArguments
	}
	return ""
}
