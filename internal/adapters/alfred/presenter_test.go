package alfred

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papagowf/internal/domain"
	"papagowf/internal/domain/entities"
	"papagowf/internal/infrastructure/i18n"
)

const hint = "[Enter] 를 누르면 결과를 클립보드로 복사합니다."

func newTestPresenter() *Presenter {
	return NewPresenter(i18n.NewTranslator("ko", zerolog.Nop()), "ko", "")
}

func TestPresenterInitialState(t *testing.T) {
	item := newTestPresenter().Item()

	assert.Equal(t, hint, item.Subtitle)
	assert.Equal(t, DefaultIconPath, item.Icon.Path)
	assert.Empty(t, item.Title)
	assert.Empty(t, item.Arg)
}

func TestPresenterSetSuccessKorean(t *testing.T) {
	p := newTestPresenter()
	p.SetSuccess(&entities.Translation{
		Text:           "Hello",
		Direction:      entities.DirectionFor("ko"),
		SourceLangName: "한국어",
	})

	item := p.Item()
	assert.Equal(t, "Hello", item.Title)
	assert.Equal(t, "Hello", item.Arg)
	assert.Equal(t, hint, item.Subtitle)
}

func TestPresenterSetSuccessForeign(t *testing.T) {
	p := newTestPresenter()
	p.SetSuccess(&entities.Translation{
		Text:           "안녕하세요",
		Direction:      entities.DirectionFor("en"),
		SourceLangName: "영어",
	})

	item := p.Item()
	assert.Equal(t, "안녕하세요", item.Title)
	assert.Equal(t, "안녕하세요", item.Arg)
	assert.Equal(t, hint+" (입력 언어: 영어)", item.Subtitle)
}

func TestPresenterErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing credentials",
			err:  &domain.ConfigurationError{Code: domain.CodeCredentialsMissing, Source: "client_key.json"},
			want: "client_key.json 을 찾을 수 없습니다",
		},
		{
			name: "empty credentials",
			err:  &domain.ConfigurationError{Code: domain.CodeCredentialsEmpty, Source: "client_key.json"},
			want: "client_id 또는 client_secret 설정해주세요 : pconf",
		},
		{
			name: "missing languages",
			err:  &domain.ConfigurationError{Code: domain.CodeLanguagesMissing, Source: "available_language_codes.json"},
			want: "available_language_codes.json 을 찾을 수 없습니다",
		},
		{
			name: "unsupported",
			err:  domain.ErrUnsupportedLanguage,
			want: "번역 가능한 언어가 아닙니다.",
		},
		{
			name: "provider",
			err:  &domain.ProviderError{Endpoint: "n2mt", StatusCode: 429},
			want: "번역 서버 오류 (error code:429)",
		},
		{
			name: "malformed credentials",
			err:  &domain.ConfigurationError{Code: domain.CodeCredentialsInvalid, Source: "client_key.json"},
			want: "client_key.json 형식이 올바르지 않습니다",
		},
		{
			name: "malformed languages",
			err:  &domain.ConfigurationError{Code: domain.CodeLanguagesInvalid, Source: "available_language_codes.json"},
			want: "available_language_codes.json 형식이 올바르지 않습니다",
		},
		{
			name: "bad environment variable",
			err:  &domain.ConfigurationError{Code: domain.CodeConfigInvalid, Source: "PAPAGO_BASE_URL"},
			want: "워크플로 환경 설정이 올바르지 않습니다: PAPAGO_BASE_URL",
		},
		{
			name: "empty query",
			err:  domain.ErrEmptyQuery,
			want: "번역할 내용을 입력해주세요.",
		},
		{
			name: "too many arguments",
			err:  domain.ErrTooManyArguments,
			want: "번역할 내용은 하나의 인자로 전달해주세요.",
		},
		{
			name: "parse",
			err:  &domain.ParseError{Endpoint: "n2mt", Field: "message.result.translatedText"},
			want: "번역 결과를 읽을 수 없습니다.",
		},
		{
			name: "transport",
			err:  &domain.TransportError{Endpoint: "detectLangs", Err: errors.New("dial tcp: connection refused")},
			want: "번역 서버에 연결할 수 없습니다.",
		},
		{
			name: "foreign error",
			err:  errors.New("boom"),
			want: "알 수 없는 오류가 발생했습니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPresenter()
			p.SetErrorFrom(tt.err)

			item := p.Item()
			assert.Equal(t, tt.want, item.Subtitle)
			assert.Empty(t, item.Title)
			assert.Empty(t, item.Arg)
		})
	}
}

func TestPresenterEmit(t *testing.T) {
	p := NewPresenter(i18n.NewTranslator("ko", zerolog.Nop()), "ko", "custom.png")
	p.SetSuccess(&entities.Translation{
		Text:           "<b>hi</b>",
		Direction:      entities.DirectionFor("ko"),
		SourceLangName: "한국어",
	})

	var buf bytes.Buffer
	require.NoError(t, p.Emit(&buf))

	out := buf.String()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")), "one line")
	assert.Contains(t, out, "<b>hi</b>")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	items, ok := decoded["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item := items[0].(map[string]any)
	assert.Equal(t, "<b>hi</b>", item["title"])
	assert.Equal(t, "<b>hi</b>", item["arg"])
	assert.Equal(t, hint, item["subtitle"])
	assert.Equal(t, map[string]any{"path": "custom.png"}, item["icon"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPresenterEmitWriteError(t *testing.T) {
	err := newTestPresenter().Emit(failingWriter{})
	assert.Error(t, err)
}
