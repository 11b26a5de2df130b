package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverTranslationsKeyParity(t *testing.T) {
	en := coverTranslations["en"]
	require.NotEmpty(t, en)

	for lang, bundle := range coverTranslations {
		assert.Len(t, bundle, len(en), "bundle %q has a different key set", lang)
		for key := range en {
			assert.Contains(t, bundle, key, "bundle %q is missing %q", lang, key)
			assert.NotEmpty(t, bundle[key], "bundle %q has empty value for %q", lang, key)
		}
	}
}

func TestCoverTranslationsLookup(t *testing.T) {
	fr := CoverTranslations("fr")
	assert.Equal(t, "Projet", fr["cover_project_label"])

	unknown := CoverTranslations("xx")
	assert.Equal(t, coverTranslations["en"], unknown)

	// Returned bundle is a copy, mutation must not leak into the table.
	unknown["cover_project_label"] = "mutated"
	assert.Equal(t, "Project", coverTranslations["en"]["cover_project_label"])
}
