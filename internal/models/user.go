package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Name         string   `gorm:"type:varchar(25);not null" json:"name"`
	City         string   `gorm:"type:varchar(50);not null" json:"city"`
	AvatarURL    *string  `gorm:"type:varchar(255)" json:"avatarUrl"`

	// Venue-side profile fields
	Capacity *int `json:"capacity"`

	// Performer-side profile fields
	Genre     *string        `gorm:"type:varchar(80)" json:"genre"`
	Slogan    *string        `gorm:"type:varchar(140)" json:"slogan"`
	Bio       *string        `gorm:"type:text" json:"bio"`
	Musicians datatypes.JSON `gorm:"type:jsonb" json:"musicians"` // list of {name, instrument}

	// Derived rating aggregate, recomputed on every review insert/delete.
	RatingAvg   float64 `gorm:"default:0" json:"ratingAvg"`
	RatingCount int     `gorm:"default:0" json:"ratingCount"`

	EventsFinalised int `gorm:"default:0" json:"eventsFinalised"`

	// Relations
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
