package domain

import "time"

// Employee roles
const (
	RoleOwner    = "OWNER"
	RoleEmployee = "EMPLOYEE"
)

// Employee statuses
const (
	StatusActive  = "ACTIVE"
	StatusPending = "PENDING"
)

// OTP job kinds
const (
	JobPhoneOTP          = "phone-otp"
	JobVerificationEmail = "verification-email"
)

// OTP challenge keys. Phone login challenges are keyed by contact handle,
// email verification challenges by user id.
func PhoneOTPKey(phone string) string  { return "otp:" + phone }
func EmailOTPKey(userID string) string { return "email-verification:" + userID }

// User represents an authenticable account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"fname"`
	LastName     string    `json:"lname"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullName returns the display name used in outbound messages
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Employee represents a company-scoped extension of an identity.
// An employee may exist without a user (phone-only login) and without a
// company (not yet assigned to one); empty string means unset.
type Employee struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId,omitempty"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	IsEmployee bool      `json:"isEmployee"`
	CompanyID  string    `json:"companyId,omitempty"`
	ShiftID    string    `json:"shiftId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Company represents a tenant organization addressed by a unique slug
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OwnerID   string    `json:"ownerId"`
	Address   string    `json:"address,omitempty"`
	Logo      string    `json:"logo,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Shift represents a named time window owned by a company
type Shift struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Department represents an organizational unit within a company
type Department struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OTPJob carries one OTP dispatch through the queue. The plaintext code
// exists only in the job payload; the worker stores a hash and discards it.
type OTPJob struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Code     string `json:"code"`
	Attempts int    `json:"attempts"`
}

// AuthIdentity is the resolved identity the auth middleware attaches to a
// request: the user record plus its employee profile when one exists. A
// phone-only login resolves to an employee without a user.
type AuthIdentity struct {
	User     *User     `json:"user,omitempty"`
	Employee *Employee `json:"employee,omitempty"`
}

// ID returns the stable identifier the identity is cached and addressed
// by: the user id when a user record exists, the employee id otherwise.
func (a *AuthIdentity) ID() string {
	if a.User != nil {
		return a.User.ID
	}
	if a.Employee != nil {
		return a.Employee.ID
	}
	return ""
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	Employee     *Employee
	AccessToken  string
	RefreshToken string
	SessionToken string
	ExpiresIn    int64
}
