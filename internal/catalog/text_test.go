package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StripHTML(t *testing.T) {
	assert.Equal(t, "Droit pénal et civil", StripHTML("<ul><li>Droit pénal et civil</li></ul>"))
	assert.Equal(t, "a & b", StripHTML("a &amp;&nbsp;b"))
	assert.Equal(t, "plain", StripHTML("plain"))
}

func Test_MatchesSearch_IgnoresCaseAndMarkup(t *testing.T) {
	assert.True(t, MatchesSearch("éducateur", "<p>Accompagner</p>", "<b>ÉDUCATEUR</b> spécialisé"))
	assert.False(t, MatchesSearch("comptable", "<p>Éducateur</p>"))
	assert.True(t, MatchesSearch("", "anything"))
}

func Test_MatchesExact(t *testing.T) {
	assert.True(t, MatchesExact("", "Douala"))
	assert.True(t, MatchesExact("douala", "Douala"))
	assert.False(t, MatchesExact("Yaoundé", "Douala"))
}

func Test_Truncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
}
