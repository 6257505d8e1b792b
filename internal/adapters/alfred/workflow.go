package alfred

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"papagowf/internal/application"
	"papagowf/internal/config"
	"papagowf/internal/domain/entities"
	"papagowf/internal/infrastructure/credentials"
	"papagowf/internal/infrastructure/languages"
	"papagowf/internal/infrastructure/papago"
	"papagowf/internal/ports/input"
	"papagowf/internal/ports/output"
)

// Workflow wires the loaders, the provider client and the translation
// service for one query and writes exactly one result document.
type Workflow struct {
	translator output.T
	locale     string
	iconPath   string
	out        io.Writer
	logger     zerolog.Logger
}

func NewWorkflow(translator output.T, locale, iconPath string, out io.Writer, logger zerolog.Logger) *Workflow {
	return &Workflow{
		translator: translator,
		locale:     locale,
		iconPath:   iconPath,
		out:        out,
		logger:     logger,
	}
}

// Run translates query with cfg and emits the result.
func (w *Workflow) Run(ctx context.Context, cfg *config.Config, query string) error {
	translation, err := w.translate(ctx, cfg, query)
	return w.Finish(translation, err)
}

// Finish emits either the translation or err. It is the only place a result
// is written.
func (w *Workflow) Finish(translation *entities.Translation, err error) error {
	presenter := NewPresenter(w.translator, w.locale, w.iconPath)
	if err != nil {
		w.logger.Debug().Err(err).Msg("query failed")
		presenter.SetErrorFrom(err)
	} else {
		presenter.SetSuccess(translation)
	}
	return presenter.Emit(w.out)
}

func (w *Workflow) translate(ctx context.Context, cfg *config.Config, query string) (*entities.Translation, error) {
	creds, err := credentials.NewFileStore(cfg.CredentialsFile).Load()
	if err != nil {
		return nil, err
	}

	registry, err := languages.NewFileLoader(cfg.LanguagesFile).Load()
	if err != nil {
		return nil, err
	}

	client := papago.NewClient(cfg.BaseURL, creds, nil, w.logger)
	var useCase input.TranslationUseCase = application.NewTranslationService(client, registry, w.logger)
	return useCase.Translate(ctx, query)
}
