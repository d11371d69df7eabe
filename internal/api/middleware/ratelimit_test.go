package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func (r *visitorRegistry) has(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.visitors[ip]
	return ok
}

func TestVisitorRegistryLimitsPerIP(t *testing.T) {
	reg := newVisitorRegistry(0.001, 2)
	now := time.Now()

	assert.True(t, reg.allow("1.1.1.1", now))
	assert.True(t, reg.allow("1.1.1.1", now))
	// Burst exhausted and refill is effectively zero at this rps.
	assert.False(t, reg.allow("1.1.1.1", now))

	// A different address has its own bucket.
	assert.True(t, reg.allow("2.2.2.2", now))
}

func TestVisitorRegistryEvictsIdleEntries(t *testing.T) {
	reg := newVisitorRegistry(1, 1)
	now := time.Now()

	reg.allow("1.1.1.1", now)
	reg.allow("2.2.2.2", now)
	assert.Equal(t, 2, reg.size())

	// Only the address seen past the idle window survives the sweep.
	later := now.Add(idleEvictAfter / 2)
	reg.allow("2.2.2.2", later)
	reg.allow("3.3.3.3", now.Add(idleEvictAfter+time.Minute))
	assert.Equal(t, 2, reg.size())
	assert.False(t, reg.has("1.1.1.1"))
	assert.True(t, reg.has("2.2.2.2"))
	assert.True(t, reg.has("3.3.3.3"))
}
