package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-faq-bot/models"
)

func TestMemorySessionStore_GetSet(t *testing.T) {
	store := NewMemorySessionStore()

	_, ok := store.Get("s1")
	assert.False(t, ok)

	want := models.SessionContext{LastIntent: "fees_deadline", LastTopic: "fee_deadlines"}
	store.Set("s1", want)

	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, want, got)

	// Overwrite, including a reset to empty context.
	store.Set("s1", models.SessionContext{})
	got, ok = store.Get("s1")
	require.True(t, ok)
	assert.Equal(t, models.SessionContext{}, got)

	assert.Equal(t, 1, store.Len())
}

func TestMemorySessionStore_Evict(t *testing.T) {
	store := NewMemorySessionStore()

	current := time.Now()
	store.now = func() time.Time { return current }

	store.Set("old", models.SessionContext{LastIntent: "fees_deadline"})

	current = current.Add(30 * time.Minute)
	store.Set("fresh", models.SessionContext{LastIntent: "timetable_change"})

	removed := store.Evict(10 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get("old")
	assert.False(t, ok)
	_, ok = store.Get("fresh")
	assert.True(t, ok)

	// Nothing left to evict.
	assert.Equal(t, 0, store.Evict(10*time.Minute))
}

func TestMemorySessionStore_ConcurrentAccess(t *testing.T) {
	store := NewMemorySessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n%10)
			store.Set(id, models.SessionContext{LastIntent: "fees_deadline"})
			store.Get(id)
			store.Len()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, store.Len())
}
