package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// OTPServiceImpl implements domain.OTPService. Issuance only generates a
// code and enqueues a job; hashing, storage and delivery happen in the
// worker, so the caller's response never waits on them.
type OTPServiceImpl struct {
	queue       domain.OTPQueue
	otpRepo     domain.OTPRepository
	passwordSvc domain.PasswordService
	config      OTPConfig
	logger      *zap.Logger
}

type OTPConfig struct {
	Length   int
	PhoneTTL time.Duration
	EmailTTL time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(queue domain.OTPQueue, otpRepo domain.OTPRepository, passwordSvc domain.PasswordService, config OTPConfig, logger *zap.Logger) domain.OTPService {
	if config.Length == 0 {
		config.Length = 6
	}
	return &OTPServiceImpl{
		queue:       queue,
		otpRepo:     otpRepo,
		passwordSvc: passwordSvc,
		config:      config,
		logger:      logger,
	}
}

// IssuePhoneOTP implements domain.OTPService. A failed enqueue fails the
// request; a successful one means the challenge will eventually be stored
// and delivered by a worker.
func (s *OTPServiceImpl) IssuePhoneOTP(ctx context.Context, phone string) error {
	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	job := &domain.OTPJob{
		Kind:  domain.JobPhoneOTP,
		Phone: phone,
		Code:  code,
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue OTP job: %w", err)
	}

	s.logger.Info("phone otp requested",
		zap.String("event", string(domain.PhoneOTPRequestedEvent)),
		zap.String("job_id", job.ID),
	)
	return nil
}

// IssueEmailOTP implements domain.OTPService
func (s *OTPServiceImpl) IssueEmailOTP(ctx context.Context, user *domain.User) error {
	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	job := &domain.OTPJob{
		Kind:   domain.JobVerificationEmail,
		Email:  user.Email,
		UserID: user.ID,
		Name:   user.FullName(),
		Code:   code,
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue verification email job: %w", err)
	}
	return nil
}

// VerifyPhoneOTP implements domain.OTPService. A missing challenge and a
// wrong code both come back as sentinel errors; the HTTP layer collapses
// them into one client-facing message.
func (s *OTPServiceImpl) VerifyPhoneOTP(ctx context.Context, phone, code string) error {
	return s.verify(ctx, domain.PhoneOTPKey(phone), code)
}

// VerifyEmailOTP implements domain.OTPService
func (s *OTPServiceImpl) VerifyEmailOTP(ctx context.Context, userID, code string) error {
	return s.verify(ctx, domain.EmailOTPKey(userID), code)
}

func (s *OTPServiceImpl) verify(ctx context.Context, key, code string) error {
	hash, err := s.otpRepo.Get(ctx, key)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(hash, code) {
		// Challenge stays live so the user can retry until the TTL runs out.
		return domain.ErrOTPInvalid
	}

	// Single use: the hash is gone before the caller acts on success.
	if err := s.otpRepo.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to consume OTP challenge: %w", err)
	}
	return nil
}

// generateCode produces a uniform random zero-padded numeric code
func (s *OTPServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.config.Length)
	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
