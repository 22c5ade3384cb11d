package models

import "time"

type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Email string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Scope string `gorm:"type:varchar(20);not null;default:'individual'"`

	// Individual fields (null when scope is 'enterprise')
	FirstName *string `gorm:"type:varchar(100)"`
	LastName  *string `gorm:"type:varchar(100)"`
	Mobile    *string `gorm:"type:varchar(50)"`

	// Enterprise fields (null when scope is 'individual')
	CompanyName    *string `gorm:"type:varchar(255)"`
	CompanyWebsite *string `gorm:"type:varchar(255)"`
	Phone          *string `gorm:"type:varchar(50)"`

	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
