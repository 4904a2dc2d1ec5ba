package repositories

import (
	"time"

	"gorm.io/gorm"
)

// DBUser is the database model for domain.User
type DBUser struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"column:password"`
	FirstName    string `gorm:"column:fname;size:255"`
	LastName     string `gorm:"column:lname;size:255"`
	IsVerified   bool   `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (DBUser) TableName() string { return "users" }

// DBEmployee is the database model for domain.Employee
type DBEmployee struct {
	ID         string  `gorm:"primaryKey;size:36"`
	UserID     *string `gorm:"uniqueIndex;size:36"`
	Phone      string  `gorm:"uniqueIndex;size:32"`
	Role       string  `gorm:"index;size:32"`
	Status     string  `gorm:"index;size:32"`
	IsEmployee bool
	CompanyID  *string `gorm:"index;size:36"`
	ShiftID    *string `gorm:"index;size:36"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DBEmployee) TableName() string { return "employees" }

// DBCompany is the database model for domain.Company
type DBCompany struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255"`
	Slug      string `gorm:"uniqueIndex;size:255"`
	OwnerID   string `gorm:"index;size:36"`
	Address   string
	Logo      string
	Phone     string `gorm:"size:32"`
	Email     string `gorm:"size:255"`
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBCompany) TableName() string { return "companies" }

// DBShift is the database model for domain.Shift
type DBShift struct {
	ID        string `gorm:"primaryKey;size:36"`
	CompanyID string `gorm:"index;size:36"`
	Name      string `gorm:"size:255"`
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBShift) TableName() string { return "shifts" }

// DBDepartment is the database model for domain.Department
type DBDepartment struct {
	ID        string `gorm:"primaryKey;size:36"`
	CompanyID string `gorm:"index;size:36"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBDepartment) TableName() string { return "departments" }

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
