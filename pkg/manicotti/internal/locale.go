package internal

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localizer *i18n.Localizer

// InitLocale selects the language for built-in chrome strings (back hints,
// dialog buttons). lang is a BCP 47 tag such as "en" or "it"; unknown or
// empty values fall back to English.
func InitLocale(lang string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"locales/en.toml", "locales/it.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			GetFrameworkLogger().Error("Failed to load locale file", "file", file, "error", err)
		}
	}

	if lang == "" {
		lang = "en"
	}
	localizer = i18n.NewLocalizer(bundle, lang, "en")
}

// T returns the chrome string for messageID in the active language. The
// messageID itself is returned when no translation exists, so chrome never
// renders empty.
func T(messageID string) string {
	if localizer == nil {
		InitLocale("")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
