package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "en.yaml"))
}

// NewLocalizer returns a localizer for the given language. Without a
// loaded bundle every lookup misses and callers fall back to their
// built-in English text.
func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		return i18n.NewLocalizer(i18n.NewBundle(language.English), lang)
	}
	return i18n.NewLocalizer(bundle, lang)
}
