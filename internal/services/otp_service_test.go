package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
	"github.com/rohitchirag97/HazriPro-Server/internal/mocks"
)

// storeBackedOTPRepo gives the mock repository real overwrite and
// delete semantics so single-use behavior is observable.
func storeBackedOTPRepo() (*mocks.MockOTPRepository, map[string]string) {
	store := map[string]string{}
	repo := mocks.NewMockOTPRepository()
	repo.SaveFunc = func(ctx context.Context, key, hash string, ttl time.Duration) error {
		store[key] = hash
		return nil
	}
	repo.GetFunc = func(ctx context.Context, key string) (string, error) {
		hash, ok := store[key]
		if !ok {
			return "", domain.ErrOTPExpired
		}
		return hash, nil
	}
	repo.DeleteFunc = func(ctx context.Context, key string) error {
		delete(store, key)
		return nil
	}
	return repo, store
}

func TestOTPServiceImpl_IssuePhoneOTP(t *testing.T) {
	t.Run("enqueues a phone job with a code of configured length", func(t *testing.T) {
		queue := mocks.NewMockOTPQueue()
		repo, _ := storeBackedOTPRepo()
		svc := NewOTPService(queue, repo, mocks.NewMockPasswordService(), OTPConfig{Length: 6}, zap.NewNop())

		if err := svc.IssuePhoneOTP(context.Background(), "+919876543210"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue.Jobs) != 1 {
			t.Fatalf("expected 1 job, got %d", len(queue.Jobs))
		}
		job := queue.Jobs[0]
		if job.Kind != domain.JobPhoneOTP {
			t.Errorf("expected kind %s, got %s", domain.JobPhoneOTP, job.Kind)
		}
		if job.Phone != "+919876543210" {
			t.Errorf("unexpected phone %s", job.Phone)
		}
		if len(job.Code) != 6 {
			t.Errorf("expected 6 digit code, got %q", job.Code)
		}
		for _, r := range job.Code {
			if r < '0' || r > '9' {
				t.Errorf("non-digit in code %q", job.Code)
			}
		}
	})

	t.Run("enqueue failure fails the request", func(t *testing.T) {
		queue := mocks.NewMockOTPQueue()
		queue.EnqueueFunc = func(ctx context.Context, job *domain.OTPJob) error {
			return errors.New("redis down")
		}
		repo, _ := storeBackedOTPRepo()
		svc := NewOTPService(queue, repo, mocks.NewMockPasswordService(), OTPConfig{Length: 6}, zap.NewNop())

		if err := svc.IssuePhoneOTP(context.Background(), "+919876543210"); err == nil {
			t.Fatal("expected error when enqueue fails")
		}
	})
}

func TestOTPServiceImpl_IssueEmailOTP(t *testing.T) {
	queue := mocks.NewMockOTPQueue()
	repo, _ := storeBackedOTPRepo()
	svc := NewOTPService(queue, repo, mocks.NewMockPasswordService(), OTPConfig{Length: 6}, zap.NewNop())

	user := &domain.User{ID: "user-1", Email: "owner@example.com", FirstName: "Asha", LastName: "Patel"}
	if err := svc.IssueEmailOTP(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(queue.Jobs))
	}
	job := queue.Jobs[0]
	if job.Kind != domain.JobVerificationEmail {
		t.Errorf("expected kind %s, got %s", domain.JobVerificationEmail, job.Kind)
	}
	if job.UserID != "user-1" || job.Email != "owner@example.com" {
		t.Errorf("job not bound to user: %+v", job)
	}
	if job.Name != "Asha Patel" {
		t.Errorf("expected full name, got %q", job.Name)
	}
}

func TestOTPServiceImpl_VerifyPhoneOTP(t *testing.T) {
	ctx := context.Background()
	queue := mocks.NewMockOTPQueue()
	repo, store := storeBackedOTPRepo()
	pwd := mocks.NewMockPasswordService()
	svc := NewOTPService(queue, repo, pwd, OTPConfig{Length: 6}, zap.NewNop())

	key := domain.PhoneOTPKey("+919876543210")
	store[key] = "hashed_123456"

	t.Run("wrong code leaves the challenge live", func(t *testing.T) {
		if err := svc.VerifyPhoneOTP(ctx, "+919876543210", "654321"); !errors.Is(err, domain.ErrOTPInvalid) {
			t.Fatalf("expected ErrOTPInvalid, got %v", err)
		}
		if _, ok := store[key]; !ok {
			t.Error("challenge must survive a wrong code")
		}
	})

	t.Run("correct code consumes the challenge", func(t *testing.T) {
		if err := svc.VerifyPhoneOTP(ctx, "+919876543210", "123456"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := store[key]; ok {
			t.Error("challenge must be deleted after success")
		}
	})

	t.Run("second use of the same code fails", func(t *testing.T) {
		if err := svc.VerifyPhoneOTP(ctx, "+919876543210", "123456"); !errors.Is(err, domain.ErrOTPExpired) {
			t.Fatalf("expected ErrOTPExpired, got %v", err)
		}
	})

	t.Run("missing challenge reads as expired", func(t *testing.T) {
		if err := svc.VerifyPhoneOTP(ctx, "+910000000000", "123456"); !errors.Is(err, domain.ErrOTPExpired) {
			t.Fatalf("expected ErrOTPExpired, got %v", err)
		}
	})
}

func TestOTPServiceImpl_VerifyEmailOTP(t *testing.T) {
	ctx := context.Background()
	queue := mocks.NewMockOTPQueue()
	repo, store := storeBackedOTPRepo()
	svc := NewOTPService(queue, repo, mocks.NewMockPasswordService(), OTPConfig{Length: 6}, zap.NewNop())

	store[domain.EmailOTPKey("user-1")] = "hashed_123456"

	if err := svc.VerifyEmailOTP(ctx, "user-1", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.VerifyEmailOTP(ctx, "user-1", "123456"); !errors.Is(err, domain.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired on reuse, got %v", err)
	}
}
