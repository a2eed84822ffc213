package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageForExtensionKnown(t *testing.T) {
	assert.Equal(t, LanguagePython, LanguageForExtension(".py"))
	assert.Equal(t, LanguagePython, LanguageForExtension(".pyi"))
	assert.Equal(t, LanguageGo, LanguageForExtension(".go"))
	assert.Equal(t, LanguageTSX, LanguageForExtension(".tsx"))
	assert.Equal(t, LanguageCPP, LanguageForExtension(".hpp"))
}

func TestLanguageForExtensionUnknown(t *testing.T) {
	assert.Equal(t, LanguageNone, LanguageForExtension(".unknown"))
	assert.Equal(t, LanguageNone, LanguageForExtension(""))
}

func TestSupportedLanguagesCoversEveryMappedLanguage(t *testing.T) {
	supported := make(map[Language]bool)
	for _, l := range SupportedLanguages() {
		supported[l] = true
	}
	for ext, lang := range extensionToLanguage {
		assert.True(t, supported[lang], "extension %s maps to unlisted language %s", ext, lang)
	}
}

func TestLanguageNoneIsZeroValue(t *testing.T) {
	var l Language
	assert.Equal(t, LanguageNone, l)
}
