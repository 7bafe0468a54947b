package services

import "campus-faq-bot/models"

// Script blocks checked by DetectLanguage, in priority order. The first block
// that appears anywhere in the text wins, so mixed-script input is classified
// by the highest-priority script it contains.
var scriptBlocks = []struct {
	lo, hi rune
	lang   models.LanguageCode
}{
	{0x0900, 0x097F, models.LangHindi},   // Devanagari (hi/mr)
	{0x0980, 0x09FF, models.LangBengali}, // Bengali
	{0x0B80, 0x0BFF, models.LangTamil},   // Tamil
}

// DetectLanguage classifies text by Unicode script range. It is total over
// all strings and defaults to English. Marathi shares Devanagari with Hindi,
// so it is never produced here; callers must pass it explicitly.
func DetectLanguage(text string) models.LanguageCode {
	for _, block := range scriptBlocks {
		for _, r := range text {
			if r >= block.lo && r <= block.hi {
				return block.lang
			}
		}
	}
	return models.LangEnglish
}
