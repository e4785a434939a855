package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestValidateCatalog(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateCatalog())
}

func TestLookupVietnameseGreeting(t *testing.T) {
	t.Parallel()

	key := Resolve("xin chào", language.Vietnamese)
	require.Equal(t, KeyGreeting, key)
	assert.Equal(t, "Xin chào! Tôi là Trợ lý NLT. Tôi có thể giúp gì cho bạn hôm nay?", Lookup(language.Vietnamese, key))
}

func TestLookupUnknownLocaleFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Lookup(DefaultLocale, KeyTeam), Lookup(language.French, KeyTeam))
}

func TestLookupUnknownKeyReturnsKeyName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "payroll", Lookup(language.English, ResponseKey("payroll")))
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tag, err := ParseLocale("vi")
	require.NoError(t, err)
	assert.Equal(t, language.Vietnamese, tag)

	tag, err = ParseLocale("en")
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)

	_, err = ParseLocale("fr")
	require.Error(t, err)

	_, err = ParseLocale("!!")
	require.Error(t, err)
}
