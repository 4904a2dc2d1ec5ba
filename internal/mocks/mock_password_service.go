package mocks

import (
	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing.
// The default Hash prefixes the plaintext so Verify can invert it without
// real bcrypt cost.
type MockPasswordService struct {
	HashFunc   func(plaintext string) (string, error)
	VerifyFunc func(hash, plaintext string) bool
}

var _ domain.PasswordService = (*MockPasswordService)(nil)

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a plaintext value
func (m *MockPasswordService) Hash(plaintext string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(plaintext)
	}
	return "hashed_" + plaintext, nil
}

// Verify checks a plaintext value against a hash
func (m *MockPasswordService) Verify(hash, plaintext string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, plaintext)
	}
	return hash == "hashed_"+plaintext
}
