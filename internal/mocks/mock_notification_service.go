package mocks

import (
	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, htmlBody string) error

	// SentSMS and SentEmails record deliveries when the Func fields are nil
	SentSMS    []SentSMS
	SentEmails []SentEmail
}

// SentSMS is one recorded SMS delivery
type SentSMS struct {
	To      string
	Message string
}

// SentEmail is one recorded email delivery
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

var _ domain.NotificationService = (*MockNotificationService)(nil)

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records or delegates an SMS delivery
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.SentSMS = append(m.SentSMS, SentSMS{To: to, Message: message})
	return nil
}

// SendEmail records or delegates an email delivery
func (m *MockNotificationService) SendEmail(to, subject, htmlBody string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, htmlBody)
	}
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, Body: htmlBody})
	return nil
}
