package entities

import "papagowf/internal/domain"

// Direction is the ordered (source, target) language pair of one request.
type Direction struct {
	Source string
	Target string
}

// DirectionFor picks the translation direction for a detected language:
// Korean goes to English, everything else goes to Korean.
func DirectionFor(detected string) Direction {
	if detected == domain.LangKorean {
		return Direction{Source: domain.LangKorean, Target: domain.LangEnglish}
	}
	return Direction{Source: detected, Target: domain.LangKorean}
}

// Translation is the outcome of one successful query.
type Translation struct {
	Text           string
	Direction      Direction
	SourceLangName string // registry name of the detected language
}

// FromKorean reports whether the input was detected as Korean.
func (t *Translation) FromKorean() bool {
	return t.Direction.Source == domain.LangKorean
}
