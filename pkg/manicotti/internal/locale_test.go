package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocaleEnglish(t *testing.T) {
	InitLocale("en")
	assert.Equal(t, "Back", T("back"))
	assert.Equal(t, "Close", T("close"))
}

func TestLocaleItalian(t *testing.T) {
	InitLocale("it")
	assert.Equal(t, "Indietro", T("back"))
	assert.Equal(t, "Annulla", T("cancel"))
}

func TestLocaleFallsBackToEnglish(t *testing.T) {
	InitLocale("de")
	assert.Equal(t, "Back", T("back"))
}

func TestLocaleUnknownMessageID(t *testing.T) {
	InitLocale("en")
	assert.Equal(t, "no_such_string", T("no_such_string"))
}
