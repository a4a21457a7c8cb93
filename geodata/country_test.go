package geodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Brazil", CountryName("BR"))
	assert.Equal(t, "Nigeria", CountryName("ng"))
	assert.Equal(t, "Mexico", CountryName(" MX "))
	assert.Equal(t, "", CountryName(""))
	assert.Equal(t, "Q1", CountryName("Q1"))
}

func TestFlagEmoji(t *testing.T) {
	assert.Equal(t, "\U0001F1E7\U0001F1F7", FlagEmoji("BR"))
	assert.Equal(t, "🇺🇸", FlagEmoji("us"))
	assert.Equal(t, "", FlagEmoji("USA"))
	assert.Equal(t, "", FlagEmoji("1A"))
	assert.Equal(t, "", FlagEmoji(""))
}
