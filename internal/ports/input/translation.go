package input

import (
	"context"

	"papagowf/internal/domain/entities"
)

type TranslationUseCase interface {
	Translate(ctx context.Context, query string) (*entities.Translation, error)
}
