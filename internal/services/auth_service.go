package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo      domain.UserRepository
	employeeRepo  domain.EmployeeRepository
	companyRepo   domain.CompanyRepository
	identityCache domain.IdentityCache
	passwordSvc   domain.PasswordService
	tokenSvc      domain.TokenService
	otpSvc        domain.OTPService
	accessTTL     time.Duration
	logger        *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	employeeRepo domain.EmployeeRepository,
	companyRepo domain.CompanyRepository,
	identityCache domain.IdentityCache,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	accessTTL time.Duration,
	logger *zap.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		employeeRepo:  employeeRepo,
		companyRepo:   companyRepo,
		identityCache: identityCache,
		passwordSvc:   passwordSvc,
		tokenSvc:      tokenSvc,
		otpSvc:        otpSvc,
		accessTTL:     accessTTL,
		logger:        logger,
	}
}

// Register implements domain.AuthService. The new account starts
// unverified; the verification OTP is queued before the response, its
// storage and delivery happen asynchronously.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		IsVerified:   false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.otpSvc.IssueEmailOTP(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to issue verification OTP: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("event", string(domain.UserRegisteredEvent)),
		zap.String("user_id", user.ID),
	)
	return user, nil
}

// VerifyEmail implements domain.AuthService. A missing or already
// verified account behaves exactly like an expired challenge, so the
// endpoint does not reveal which addresses are registered.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrOTPExpired
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user.IsVerified {
		return domain.ErrOTPExpired
	}

	if err := s.otpSvc.VerifyEmailOTP(ctx, user.ID, code); err != nil {
		s.logger.Info("email verification failed",
			zap.String("event", string(domain.EmailVerifyFailureEvent)),
			zap.String("user_id", user.ID),
		)
		return err
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	if err := s.identityCache.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to invalidate identity cache: %w", err)
	}

	s.logger.Info("email verified",
		zap.String("event", string(domain.EmailVerifiedEvent)),
		zap.String("user_id", user.ID),
	)
	return nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		s.logger.Info("login failed",
			zap.String("event", string(domain.UserLoginFailureEvent)),
			zap.String("user_id", user.ID),
		)
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, domain.ErrEmailNotVerified
	}

	claims := &domain.TokenClaims{UserID: user.ID, Role: domain.RoleEmployee}

	employee, err := s.employeeRepo.FindByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee != nil {
		claims.EmployeeID = employee.ID
		claims.Role = employee.Role
		claims.IsEmployee = employee.IsEmployee
	}

	company, err := s.companyRepo.FindByOwner(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}
	if company != nil {
		claims.CompanyID = company.ID
	}

	sessionToken, err := s.tokenSvc.GenerateSessionToken(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.logger.Info("user logged in",
		zap.String("event", string(domain.UserLoginEvent)),
		zap.String("user_id", user.ID),
	)
	return &domain.AuthResult{
		User:         user,
		Employee:     employee,
		SessionToken: sessionToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// RequestOTP implements domain.AuthService. No account lookup happens
// here: requesting a code for an unknown phone is indistinguishable from
// a known one, and the profile is created lazily on verification.
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, phone string) error {
	return s.otpSvc.IssuePhoneOTP(ctx, phone)
}

// VerifyOTP implements domain.AuthService. On the first successful
// verification for a phone an employee profile is created (verify-or-
// create); tokens are issued against whatever profile resolves.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, phone, code string) (*domain.AuthResult, error) {
	if err := s.otpSvc.VerifyPhoneOTP(ctx, phone, code); err != nil {
		s.logger.Info("phone otp verification failed",
			zap.String("event", string(domain.PhoneOTPFailureEvent)),
		)
		return nil, err
	}

	employee, err := s.employeeRepo.FindByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, fmt.Errorf("failed to look up employee: %w", err)
		}
		employee = &domain.Employee{
			Phone:      phone,
			Role:       domain.RoleEmployee,
			Status:     domain.StatusActive,
			IsEmployee: true,
		}
		if err := s.employeeRepo.Create(ctx, employee); err != nil {
			return nil, fmt.Errorf("failed to create employee: %w", err)
		}
		s.logger.Info("employee created",
			zap.String("event", string(domain.EmployeeCreatedEvent)),
			zap.String("employee_id", employee.ID),
		)
	}

	claims := &domain.TokenClaims{
		UserID:     employee.UserID,
		EmployeeID: employee.ID,
		Role:       employee.Role,
		CompanyID:  employee.CompanyID,
		IsEmployee: employee.IsEmployee,
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.logger.Info("phone otp verified",
		zap.String("event", string(domain.PhoneOTPVerifiedEvent)),
		zap.String("employee_id", employee.ID),
	)
	return &domain.AuthResult{
		Employee:     employee,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}
