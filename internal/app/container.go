package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rohitchirag97/HazriPro-Server/domain"
	"github.com/rohitchirag97/HazriPro-Server/internal/config"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/auth"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/database"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/notifications"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/queue"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/repositories"
	"github.com/rohitchirag97/HazriPro-Server/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService
	Queue       *queue.RedisQueue

	// Repositories
	UserRepo      domain.UserRepository
	EmployeeRepo  domain.EmployeeRepository
	CompanyRepo   domain.CompanyRepository
	ShiftRepo     domain.ShiftRepository
	OTPRepo       domain.OTPRepository
	IdentityCache domain.IdentityCache
	CompanyCache  domain.CompanyCache

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	CompanySvc      domain.CompanyService
	ShiftSvc        domain.ShiftService
	Resolver        domain.IdentityResolver
	Worker          *services.OTPWorker
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.Casbin = cas
	return cas.SeedPolicies()
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return c.RedisClient.Ping(context.Background()).Err()
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.EmployeeRepo = repositories.NewEmployeeRepository(c.DB)
	c.CompanyRepo = repositories.NewCompanyRepository(c.DB)
	c.ShiftRepo = repositories.NewShiftRepository(c.DB)
	c.OTPRepo = repositories.NewOTPRepository(c.RedisClient)
	c.IdentityCache = repositories.NewIdentityCache(c.RedisClient, c.Config.IdentityCacheTTL)
	c.CompanyCache = repositories.NewCompanyCache(c.RedisClient, c.Config.CompanyCacheTTL)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
		c.Config.SessionTTL,
	)

	var mailer *notifications.SMTPSender
	if c.Config.SMTPHost != "" {
		m, err := notifications.NewSMTPSender(
			c.Config.SMTPHost,
			c.Config.SMTPPort,
			c.Config.SMTPUser,
			c.Config.SMTPPassword,
			c.Config.SMTPFrom,
			c.Config.SMTPFromName,
		)
		if err != nil {
			return err
		}
		mailer = m
	}
	c.NotificationSvc = notifications.NewNotificationService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
		mailer,
		c.Logger,
	)

	c.Queue = queue.NewRedisQueue(
		c.RedisClient,
		c.Config.QueueName,
		c.Config.QueueMaxAttempts,
		c.Config.QueueBackoff,
		c.Logger,
	)

	c.OTPSvc = services.NewOTPService(c.Queue, c.OTPRepo, c.PasswordSvc, services.OTPConfig{
		Length:   c.Config.OTPLength,
		PhoneTTL: c.Config.PhoneOTPTTL,
		EmailTTL: c.Config.EmailOTPTTL,
	}, c.Logger)

	c.Worker = services.NewOTPWorker(
		c.OTPRepo,
		c.PasswordSvc,
		c.NotificationSvc,
		c.Config.PhoneOTPTTL,
		c.Config.EmailOTPTTL,
		c.Logger,
	)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.EmployeeRepo,
		c.CompanyRepo,
		c.IdentityCache,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.Config.AccessTTL,
		c.Logger,
	)
	c.CompanySvc = services.NewCompanyService(c.CompanyRepo, c.EmployeeRepo, c.CompanyCache, c.IdentityCache, c.Logger)
	c.ShiftSvc = services.NewShiftService(c.ShiftRepo, c.EmployeeRepo, c.Logger)
	c.Resolver = services.NewIdentityResolver(c.UserRepo, c.EmployeeRepo)

	return nil
}

// Close releases the container's external connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return err
		}
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
