package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const UnknownLanguage = "unknown"

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

var fallbackDetectLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Chinese,
	lingua.Japanese,
}

func buildLanguageDetector() {
	codes := viper.GetStringSlice("language.detect")
	languages := lo.Filter(lingua.AllLanguages(), func(item lingua.Language, _ int) bool {
		return lo.ContainsBy(codes, func(code string) bool {
			return strings.EqualFold(item.IsoCode639_1().String(), code)
		})
	})
	if len(languages) < 2 {
		languages = fallbackDetectLanguages
	}

	languageDetector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		WithLowAccuracyMode().
		Build()
	log.Info().Int("count", len(languages)).Msg("Loaded language detector.")
}

// DetectLanguage returns the lowercase ISO 639-1 code of the content language.
func DetectLanguage(content string) string {
	languageDetectorOnce.Do(buildLanguageDetector)
	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}
	return UnknownLanguage
}
