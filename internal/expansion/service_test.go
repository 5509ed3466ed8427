package expansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSeparatesOriginalSynonymAndAI(t *testing.T) {
	svc := New(nil)

	result, err := svc.Expand("docs repo")
	require.NoError(t, err)

	assert.Equal(t, []string{"docs", "repo"}, result.Original)
	assert.ElementsMatch(t, []string{"documentation", "repository"}, result.Synonyms)
	assert.Empty(t, result.AI)
}

func TestExpandCorrectsTypos(t *testing.T) {
	svc := New(nil)
	result, err := svc.Expand("documentaton")
	require.NoError(t, err)
	assert.Equal(t, []string{"documentation"}, result.Synonyms)
}

func TestExpandDedupesSynonyms(t *testing.T) {
	svc := New(nil)
	result, err := svc.Expand("docs doc")
	require.NoError(t, err)
	assert.Equal(t, []string{"documentation"}, result.Synonyms)
}

func TestExpandPassesThroughUnknownTokens(t *testing.T) {
	svc := New(nil)
	result, err := svc.Expand("zzznonsense")
	require.NoError(t, err)
	assert.Equal(t, []string{"zzznonsense"}, result.Original)
	assert.Empty(t, result.Synonyms)
}
