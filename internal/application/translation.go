package application

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"

	"papagowf/internal/domain"
	"papagowf/internal/domain/entities"
	"papagowf/internal/ports/input"
	"papagowf/internal/ports/output"
)

const (
	detectedLangPath   = "langCode"
	translatedTextPath = "message.result.translatedText"
)

var _ input.TranslationUseCase = (*TranslationService)(nil)

// TranslationService detects the language of a query and translates it
// between Korean and that language.
type TranslationService struct {
	client   output.ProviderClient
	registry output.LanguageRegistry
	logger   zerolog.Logger
}

func NewTranslationService(client output.ProviderClient, registry output.LanguageRegistry, logger zerolog.Logger) *TranslationService {
	return &TranslationService{
		client:   client,
		registry: registry,
		logger:   logger.With().Str("component", "translation").Logger(),
	}
}

// Translate runs detection, direction selection and translation for query.
// Unsupported languages stop before the translate call.
func (s *TranslationService) Translate(ctx context.Context, query string) (*entities.Translation, error) {
	query = norm.NFC.String(query)
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}

	detected, err := s.detect(ctx, query)
	if err != nil {
		return nil, err
	}

	sourceName, ok := s.registry.Lookup(detected)
	if !ok {
		s.logger.Debug().Str("lang", detected).Msg("unsupported language")
		return nil, domain.ErrUnsupportedLanguage
	}

	direction := entities.DirectionFor(detected)
	s.logger.Debug().Str("source", direction.Source).Str("target", direction.Target).Msg("direction selected")

	text, err := s.translate(ctx, direction, query)
	if err != nil {
		return nil, err
	}

	return &entities.Translation{
		Text:           text,
		Direction:      direction,
		SourceLangName: sourceName,
	}, nil
}

func (s *TranslationService) detect(ctx context.Context, query string) (string, error) {
	body, err := s.call(ctx, output.EndpointDetectLangs, url.Values{"query": {query}})
	if err != nil {
		return "", err
	}

	code := gjson.GetBytes(body, detectedLangPath)
	if code.Type != gjson.String {
		return "", &domain.ParseError{Endpoint: output.EndpointDetectLangs, Field: detectedLangPath}
	}
	return code.String(), nil
}

func (s *TranslationService) translate(ctx context.Context, direction entities.Direction, query string) (string, error) {
	form := url.Values{
		"source": {direction.Source},
		"target": {direction.Target},
		"text":   {query},
	}
	body, err := s.call(ctx, output.EndpointTranslate, form)
	if err != nil {
		return "", err
	}

	text := gjson.GetBytes(body, translatedTextPath)
	if text.Type != gjson.String {
		return "", &domain.ParseError{Endpoint: output.EndpointTranslate, Field: translatedTextPath}
	}
	return text.String(), nil
}

// call executes one provider request and turns non-200 answers into a
// ProviderError. The body is never parsed on that path.
func (s *TranslationService) call(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	status, body, err := s.client.Execute(ctx, endpoint, form)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		s.logger.Debug().Str("endpoint", endpoint).Int("status", status).Bytes("body", body).Msg("provider rejected request")
		return nil, &domain.ProviderError{Endpoint: endpoint, StatusCode: status}
	}
	if !gjson.ValidBytes(body) {
		return nil, &domain.ParseError{Endpoint: endpoint, Field: "body"}
	}
	return body, nil
}
