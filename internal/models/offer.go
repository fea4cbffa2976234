package models

import "time"

type Offer struct {
	BaseModel
	DistributorID uint        `gorm:"not null;index" json:"distributorId"`
	Title         string      `gorm:"type:varchar(140);not null" json:"title"`
	Description   string      `gorm:"type:text" json:"description"`
	City          string      `gorm:"type:varchar(120)" json:"city"`
	VenueName     string      `gorm:"type:varchar(140)" json:"venueName"`
	Genre         *string     `gorm:"type:varchar(80)" json:"genre"`
	Budget        *float64    `gorm:"type:numeric(10,2)" json:"budget"`
	Status        OfferStatus `gorm:"type:varchar(20);default:'open';not null" json:"status"`
	EventDate     time.Time   `gorm:"not null" json:"eventDate"`
	Capacity      int         `json:"capacity"`

	// Set exactly once, when the distributor accepts a performer.
	AcceptedPerformerID *uint `gorm:"index" json:"acceptedPerformerId"`

	// Relations
	Distributor User    `gorm:"foreignKey:DistributorID" json:"-"`
	Matches     []Match `gorm:"foreignKey:OfferID" json:"-"`
}
