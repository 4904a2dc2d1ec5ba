package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockOTPQueue implements domain.OTPQueue interface for testing
type MockOTPQueue struct {
	EnqueueFunc func(ctx context.Context, job *domain.OTPJob) error

	// Jobs records every enqueued job when EnqueueFunc is nil
	Jobs []*domain.OTPJob
}

var _ domain.OTPQueue = (*MockOTPQueue)(nil)

// NewMockOTPQueue creates a new MockOTPQueue with default behaviors
func NewMockOTPQueue() *MockOTPQueue {
	return &MockOTPQueue{}
}

// Enqueue records or delegates an enqueue
func (m *MockOTPQueue) Enqueue(ctx context.Context, job *domain.OTPJob) error {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, job)
	}
	m.Jobs = append(m.Jobs, job)
	return nil
}
