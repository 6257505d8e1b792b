package alfred

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"papagowf/internal/domain"
	"papagowf/internal/domain/entities"
	"papagowf/internal/infrastructure/i18n"
	"papagowf/internal/ports/output"
)

// DefaultIconPath is relative to the workflow directory.
const DefaultIconPath = "icon.png"

type Icon struct {
	Path string `json:"path"`
}

// Item is one script filter result row.
type Item struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     Icon   `json:"icon"`
	Arg      string `json:"arg"`
}

// Response is the script filter document read by the launcher.
type Response struct {
	Items []Item `json:"items"`
}

// Presenter accumulates the single result item of a run.
type Presenter struct {
	translator output.T
	locale     string
	item       Item
}

// NewPresenter starts with the clipboard hint as subtitle.
func NewPresenter(translator output.T, locale, iconPath string) *Presenter {
	if iconPath == "" {
		iconPath = DefaultIconPath
	}
	return &Presenter{
		translator: translator,
		locale:     locale,
		item: Item{
			Subtitle: translator.T(locale, i18n.KeySubtitleHint, nil),
			Icon:     Icon{Path: iconPath},
		},
	}
}

// SetError replaces the subtitle with message. Title and arg are left empty.
func (p *Presenter) SetError(message string) {
	p.item.Subtitle = message
}

// SetErrorFrom resolves err to a localized message and sets it.
func (p *Presenter) SetErrorFrom(err error) {
	p.SetError(p.errorMessage(err))
}

// SetSuccess puts the translation in title and arg. Non-Korean input also
// gets the detected language appended to the subtitle.
func (p *Presenter) SetSuccess(t *entities.Translation) {
	p.item.Title = t.Text
	p.item.Arg = t.Text
	if !t.FromKorean() {
		p.item.Subtitle += p.translator.T(p.locale, i18n.KeyInputLanguage, map[string]any{
			i18n.TemplateLanguage: t.SourceLangName,
		})
	}
}

// Item returns a copy of the current result item.
func (p *Presenter) Item() Item {
	return p.item
}

// Emit writes the result document as one JSON line and flushes it.
func (p *Presenter) Emit(w io.Writer) error {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Response{Items: []Item{p.item}}); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush result: %w", err)
	}
	return nil
}

func (p *Presenter) errorMessage(err error) string {
	code := domain.Code(err)
	if code == "" {
		return p.translator.T(p.locale, i18n.KeyErrorUnknown, nil)
	}

	data := map[string]any{}
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		data[i18n.TemplateSource] = cfgErr.Source
	}
	var provErr *domain.ProviderError
	if errors.As(err, &provErr) {
		data[i18n.TemplateStatusCode] = provErr.StatusCode
	}
	return p.translator.T(p.locale, i18n.KeyErrorPrefix+code, data)
}
