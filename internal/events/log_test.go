package events

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushNewestFirst(t *testing.T) {
	l := NewLog()
	l.Push("first")
	l.Push("second")

	assert.Equal(t, []string{"second", "first"}, l.Recent())
}

func TestCapDropsOldest(t *testing.T) {
	l := NewLog()
	for i := 0; i < Retained+5; i++ {
		l.Push(fmt.Sprintf("event %d", i))
	}

	recent := l.Recent()
	assert.Len(t, recent, Retained)
	assert.Equal(t, fmt.Sprintf("event %d", Retained+4), recent[0])
}

func TestRecentReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Push("original")

	recent := l.Recent()
	recent[0] = "mutated"
	assert.Equal(t, "original", l.Recent()[0])
}
