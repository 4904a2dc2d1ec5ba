package domain

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Registration and verification events
	UserRegisteredEvent     AuditEventType = "USER_REGISTERED"
	EmailVerifiedEvent      AuditEventType = "EMAIL_VERIFIED"
	EmailVerifyFailureEvent AuditEventType = "EMAIL_VERIFY_FAILED"
	PhoneOTPRequestedEvent  AuditEventType = "PHONE_OTP_REQUESTED"
	PhoneOTPVerifiedEvent   AuditEventType = "PHONE_OTP_VERIFIED"
	PhoneOTPFailureEvent    AuditEventType = "PHONE_OTP_VERIFICATION_FAILED"
	EmployeeCreatedEvent    AuditEventType = "EMPLOYEE_CREATED"

	// Authentication events
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"

	// Tenant events
	CompanyCreatedEvent AuditEventType = "COMPANY_CREATED"
	CompanyUpdatedEvent AuditEventType = "COMPANY_UPDATED"
	CompanyDeletedEvent AuditEventType = "COMPANY_DELETED"

	// Queue events
	OTPJobEnqueuedEvent   AuditEventType = "OTP_JOB_ENQUEUED"
	OTPJobProcessedEvent  AuditEventType = "OTP_JOB_PROCESSED"
	OTPJobRetriedEvent    AuditEventType = "OTP_JOB_RETRIED"
	OTPJobDeadLetterEvent AuditEventType = "OTP_JOB_DEAD_LETTERED"
)
