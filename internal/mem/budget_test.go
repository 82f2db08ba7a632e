package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/toypascal/internal/mem"
)

func TestUnlimitedBudgetNeverFails(t *testing.T) {
	b := mem.NewBudget(0)
	require.NoError(t, b.Reserve(1_000_000))
	assert.Equal(t, 1_000_000, b.Used())
}

func TestBudgetFailsOverLimit(t *testing.T) {
	b := mem.NewBudget(10)
	require.NoError(t, b.Reserve(6))
	err := b.Reserve(5)
	require.Error(t, err)
	var limErr mem.LimitError
	require.ErrorAs(t, err, &limErr)
	assert.Equal(t, 10, limErr.Limit)
	assert.Equal(t, 6, limErr.Used)
	assert.Equal(t, 5, limErr.Requested)
	assert.Equal(t, 6, b.Used(), "a failed reservation must not be counted")
}

func TestBudgetExactlyAtLimitSucceeds(t *testing.T) {
	b := mem.NewBudget(10)
	require.NoError(t, b.Reserve(10))
}
