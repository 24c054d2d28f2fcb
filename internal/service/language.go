package service

import (
	"regexp"

	"rentassist/internal/model"
)

// malayMarkers matches common Malay words on word boundaries. Boundary
// matching keeps markers from firing inside unrelated English words
// ("nak" in "snake").
var malayMarkers = regexp.MustCompile(`(?i)\b(saya|nak|cari|rumah|bilik|harga|murah|dengan|sewa|bawah)\b`)

// DetectLanguage classifies an utterance as Malay or English. A single
// Malay marker word is enough; everything else is treated as English.
func DetectLanguage(utterance string) model.Language {
	if malayMarkers.MatchString(utterance) {
		return model.LanguageMalay
	}
	return model.LanguageEnglish
}
