// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package supervisor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// MockService is a controllable suture.Service for supervisor tests.
// By default it runs until its context is cancelled; tests can script a
// fixed error or a number of failures before it settles.
type MockService struct {
	name   string
	starts atomic.Int32
	fails  atomic.Int32

	mu        sync.Mutex
	serveErr  error
	failuresN int32
}

// NewMockService creates a mock service with the given name.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// Serve implements suture.Service.
func (m *MockService) Serve(ctx context.Context) error {
	m.starts.Add(1)

	m.mu.Lock()
	serveErr := m.serveErr
	failuresN := m.failuresN
	m.mu.Unlock()

	// Scripted failures exhaust before the service settles, so restart
	// counting can be asserted.
	if failuresN > 0 && m.fails.Add(1) <= failuresN {
		return errors.New("scripted failure")
	}

	if serveErr != nil {
		return serveErr
	}

	<-ctx.Done()
	return ctx.Err()
}

// SetError makes every Serve call return err immediately. Pass a suture
// sentinel (ErrDoNotRestart, ErrTerminateSupervisorTree) to exercise
// the supervisor's special handling.
func (m *MockService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serveErr = err
}

// SetFailCount makes the next n Serve calls fail before the service
// runs normally.
func (m *MockService) SetFailCount(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failuresN = int32(n)
}

// StartCount reports how many times Serve was entered.
func (m *MockService) StartCount() int32 {
	return m.starts.Load()
}

// String identifies the service in suture's logs.
func (m *MockService) String() string {
	return m.name
}
