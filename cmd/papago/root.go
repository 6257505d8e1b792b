package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"papagowf/internal/adapters/alfred"
	"papagowf/internal/config"
	"papagowf/internal/domain"
	"papagowf/internal/infrastructure/i18n"
	"papagowf/internal/logging"
)

const defaultLocale = "ko"

// newRootCommand takes the query as its only argument. Flag parsing is off so
// queries such as "-v" or "--help" reach the translator unchanged.
func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "papago <text>",
		Short:              "Translate text between Korean and its detected language as a launcher result",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

// run always writes exactly one result document to stdout; failures are
// reported inside it.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, cfgErr := config.Load()

	locale, iconPath := defaultLocale, alfred.DefaultIconPath
	logger := zerolog.Nop()
	if cfgErr == nil {
		locale, iconPath = cfg.Locale, cfg.IconPath

		var err error
		logger, err = logging.New(stderr, cfg.Environment, cfg.LogLevel)
		if err != nil {
			logger.Warn().Err(err).Msg("invalid LOG_LEVEL, logging warnings only")
		}
	}

	translator := i18n.NewTranslator(locale, logger)
	workflow := alfred.NewWorkflow(translator, locale, iconPath, stdout, logger)

	switch {
	case cfgErr != nil:
		return workflow.Finish(nil, cfgErr)
	case len(args) > 1:
		return workflow.Finish(nil, domain.ErrTooManyArguments)
	}

	var query string
	if len(args) == 1 {
		query = args[0]
	}
	return workflow.Run(ctx, cfg, query)
}
