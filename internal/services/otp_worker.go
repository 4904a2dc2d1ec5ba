package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
	"github.com/rohitchirag97/HazriPro-Server/internal/emails"
)

// OTPWorker processes queued OTP jobs: it hashes the plaintext code,
// stores the hash with the challenge TTL, then delivers the message. Any
// failure is returned to the queue for redelivery; no client is waiting
// on the outcome.
type OTPWorker struct {
	otpRepo         domain.OTPRepository
	passwordSvc     domain.PasswordService
	notificationSvc domain.NotificationService
	phoneTTL        time.Duration
	emailTTL        time.Duration
	logger          *zap.Logger
}

// NewOTPWorker creates a new OTP worker
func NewOTPWorker(otpRepo domain.OTPRepository, passwordSvc domain.PasswordService, notificationSvc domain.NotificationService, phoneTTL, emailTTL time.Duration, logger *zap.Logger) *OTPWorker {
	return &OTPWorker{
		otpRepo:         otpRepo,
		passwordSvc:     passwordSvc,
		notificationSvc: notificationSvc,
		phoneTTL:        phoneTTL,
		emailTTL:        emailTTL,
		logger:          logger,
	}
}

// Process handles a single job. The hash write overwrites any previous
// challenge under the same key, so duplicate requests collapse to the
// latest code.
func (w *OTPWorker) Process(ctx context.Context, job *domain.OTPJob) error {
	switch job.Kind {
	case domain.JobPhoneOTP:
		return w.processPhoneOTP(ctx, job)
	case domain.JobVerificationEmail:
		return w.processVerificationEmail(ctx, job)
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

func (w *OTPWorker) processPhoneOTP(ctx context.Context, job *domain.OTPJob) error {
	hash, err := w.passwordSvc.Hash(job.Code)
	if err != nil {
		return fmt.Errorf("failed to hash OTP code: %w", err)
	}
	if err := w.otpRepo.Save(ctx, domain.PhoneOTPKey(job.Phone), hash, w.phoneTTL); err != nil {
		return fmt.Errorf("failed to store OTP challenge: %w", err)
	}

	message := fmt.Sprintf("Your HazriPro login code is %s. Valid for %d minutes.", job.Code, int(w.phoneTTL.Minutes()))
	if err := w.notificationSvc.SendSMS(job.Phone, message); err != nil {
		return fmt.Errorf("failed to deliver OTP SMS: %w", err)
	}
	return nil
}

func (w *OTPWorker) processVerificationEmail(ctx context.Context, job *domain.OTPJob) error {
	hash, err := w.passwordSvc.Hash(job.Code)
	if err != nil {
		return fmt.Errorf("failed to hash OTP code: %w", err)
	}
	if err := w.otpRepo.Save(ctx, domain.EmailOTPKey(job.UserID), hash, w.emailTTL); err != nil {
		return fmt.Errorf("failed to store verification challenge: %w", err)
	}

	body, err := emails.RenderVerification(job.Name, job.Code)
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}
	if err := w.notificationSvc.SendEmail(job.Email, emails.VerificationSubject, body); err != nil {
		return fmt.Errorf("failed to deliver verification email: %w", err)
	}
	return nil
}
