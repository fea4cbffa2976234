package models

// Match is a performer's application to an offer, unique per (performer, offer).
// ChatApproved gates chat access independently of acceptance.
type Match struct {
	BaseModel
	PerformerID  uint        `gorm:"not null;uniqueIndex:uq_match_performer_offer" json:"performerId"`
	OfferID      uint        `gorm:"not null;uniqueIndex:uq_match_performer_offer;index" json:"offerId"`
	Status       MatchStatus `gorm:"type:varchar(20);default:'pending';not null" json:"status"`
	Rate         float64     `gorm:"type:numeric(10,2);not null" json:"rate"`
	ChatApproved bool        `gorm:"default:false;not null" json:"chatApproved"`
	Message      string      `gorm:"type:text" json:"message"`

	// Relations
	Performer User  `gorm:"foreignKey:PerformerID" json:"-"`
	Offer     Offer `gorm:"foreignKey:OfferID" json:"-"`
}
