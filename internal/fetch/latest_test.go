package fetch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatestWins(t *testing.T) {
	var l Latest

	first := l.Begin()
	second := l.Begin()

	// the older response arrives last but must not win
	require.True(t, l.Commit(second))
	require.False(t, l.Commit(first))

	// commit does not consume the ticket
	require.True(t, l.Commit(second))

	third := l.Begin()
	require.False(t, l.Commit(second))
	require.True(t, l.Commit(third))
}

func TestConcurrentBegins(t *testing.T) {
	var l Latest

	const n = 100
	tickets := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tickets[i] = l.Begin()
		}(i)
	}
	wg.Wait()

	committed := 0
	for _, ticket := range tickets {
		if l.Commit(ticket) {
			committed++
		}
	}
	require.Equal(t, 1, committed)
}
