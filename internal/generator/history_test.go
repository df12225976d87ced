package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantHistoryEmpty(t *testing.T) {
	h := newTenantHistory(5)
	rng := rand.New(rand.NewSource(1))

	_, ok := h.Sample(rng)
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestTenantHistoryWindowEviction(t *testing.T) {
	h := newTenantHistory(3)
	for id := 1; id <= 5; id++ {
		h.Append(id)
	}
	assert.Equal(t, 3, h.Len())

	// Only the last three ids are sampleable.
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		id, ok := h.Sample(rng)
		assert.True(t, ok)
		seen[id] = true
	}
	assert.Equal(t, map[int]bool{3: true, 4: true, 5: true}, seen)
}

func TestTenantHistoryPartiallyFilled(t *testing.T) {
	h := newTenantHistory(500)
	h.Append(7)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		id, ok := h.Sample(rng)
		assert.True(t, ok)
		assert.Equal(t, 7, id)
	}
}

func TestTenantHistoryZeroCapacity(t *testing.T) {
	h := newTenantHistory(0)
	h.Append(1)

	rng := rand.New(rand.NewSource(1))
	_, ok := h.Sample(rng)
	assert.False(t, ok)
}
