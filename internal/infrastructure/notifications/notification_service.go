package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// NotificationServiceImpl implements domain.NotificationService. SMS goes
// out through Twilio, email through SMTP. When a channel is not configured
// the message is logged instead of sent, which keeps local development
// working without live credentials.
type NotificationServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
	mailer     *SMTPSender
	logger     *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(accountSID, authToken, fromNumber string, mailer *SMTPSender, logger *zap.Logger) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &NotificationServiceImpl{
		client:     client,
		fromNumber: fromNumber,
		mailer:     mailer,
		logger:     logger,
	}
}

// SendSMS implements domain.NotificationService
func (s *NotificationServiceImpl) SendSMS(to, message string) error {
	if s.fromNumber == "" {
		s.logger.Info("sms delivery not configured, logging instead",
			zap.String("to", to),
			zap.String("message", message),
		)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// SendEmail implements domain.NotificationService
func (s *NotificationServiceImpl) SendEmail(to, subject, htmlBody string) error {
	if s.mailer == nil {
		s.logger.Info("email delivery not configured, logging instead",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	if err := s.mailer.Send(to, subject, htmlBody); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
