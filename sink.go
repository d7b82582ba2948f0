// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.22
//

package golsq

import (
	"fmt"
	"os"
	"sync"
)

// DiagSink receives non-fatal numerical warnings (e.g. a condition
// number above the allowed threshold). A warning never changes the
// returned result.
type DiagSink interface {
	Warnf(format string, a ...any)
}

// StderrSink writes warnings to os.Stderr.
type StderrSink struct{}

func (StderrSink) Warnf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

// CaptureSink collects warnings in memory. Safe for concurrent writes.
type CaptureSink struct {
	mu   sync.Mutex
	msgs []string
}

func (s *CaptureSink) Warnf(format string, a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, fmt.Sprintf(format, a...))
}

// Warnings returns a copy of the collected messages.
func (s *CaptureSink) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.msgs))
	copy(out, s.msgs)
	return out
}
