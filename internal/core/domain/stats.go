package domain

import (
	"fmt"
	"sync/atomic"
)

// MinifyStats accumulates stylesheet sizes before and after minification for a session.
type MinifyStats struct {
	before atomic.Int64
	after  atomic.Int64
}

// Add records the size of one stylesheet before and after minification.
func (s *MinifyStats) Add(before, after int) {
	s.before.Add(int64(before))
	s.after.Add(int64(after))
}

// Before returns the total number of bytes before minification.
func (s *MinifyStats) Before() int64 {
	return s.before.Load()
}

// After returns the total number of bytes after minification.
func (s *MinifyStats) After() int64 {
	return s.after.Load()
}

// Saved returns the number of bytes removed by minification.
func (s *MinifyStats) Saved() int64 {
	return s.Before() - s.After()
}

// Summary renders the end of session report line.
func (s *MinifyStats) Summary() string {
	return fmt.Sprintf("minified css sheets by %d bytes (before: %d, after: %d)", s.Saved(), s.Before(), s.After())
}
