// Package events keeps the short human-readable feed shown to the player.
package events

// Retained is how many entries the feed keeps.
const Retained = 20

// Log is an append-only capped list of notifications, newest first.
type Log struct {
	entries []string
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Push prepends an entry, dropping the oldest once the cap is reached.
func (l *Log) Push(entry string) {
	if len(l.entries) >= Retained {
		l.entries = l.entries[:Retained-1]
	}
	l.entries = append([]string{entry}, l.entries...)
}

// Recent returns a copy of the retained entries, newest first.
func (l *Log) Recent() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return len(l.entries)
}
