package domain

// Language codes with special meaning to the translation flow.
const (
	LangKorean  = "ko"
	LangEnglish = "en"
	LangUnknown = "unk"
)
