package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	require.NotNil(t, c)
	assert.InDelta(t, 0.3+2.5, c.Cost(1_000_000, 1_000_000), 1e-9)
}

func TestLookupCost_OpenRouterPrefix(t *testing.T) {
	c := LookupCost("google/gemini-2.5-flash")
	require.NotNil(t, c)
	assert.Equal(t, 0.3, c.InputPerMTok)
}

func TestLookupCost_Unknown(t *testing.T) {
	assert.Nil(t, LookupCost("mock"))
	assert.Nil(t, LookupCost("someone/unknown-model"))
}
