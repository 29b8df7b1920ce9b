package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FirstMatch_FirstRuleWins(t *testing.T) {
	rules := []Rule[string]{
		{Name: "a", Keywords: []string{"alpha"}, Result: "a"},
		{Name: "b", Keywords: []string{"alpha", "beta"}, Result: "b"},
	}

	result, ok := FirstMatch(rules, Input{Text: "alpha beta"})
	assert.True(t, ok)
	assert.Equal(t, "a", result)

	result, ok = FirstMatch(rules, Input{Text: "beta"})
	assert.True(t, ok)
	assert.Equal(t, "b", result)

	_, ok = FirstMatch(rules, Input{Text: "gamma"})
	assert.False(t, ok)
}

func Test_ContainsKeyword(t *testing.T) {
	assert.True(t, containsKeyword("c++ developer", "c++"))
	assert.True(t, containsKeyword("sr. engineer", "sr."))
	assert.True(t, containsKeyword("entry-level role", "entry"))
	assert.True(t, containsKeyword("internal tools", "intern"))
	assert.True(t, containsKeyword("required skills", "ui"))
	assert.True(t, containsKeyword("senior developers", "developer"))
	assert.False(t, containsKeyword("", "go"))
	assert.False(t, containsKeyword("go developer", ""))
}

func Test_ContainsWord(t *testing.T) {
	assert.True(t, containsWord("wir suchen", "wir"))
	assert.True(t, containsWord("c++ developer", "c++"))
	assert.False(t, containsWord("under pressure", "und"))
	assert.False(t, containsWord("submit your cv", "mit"))
	assert.False(t, containsWord("", "und"))
}
