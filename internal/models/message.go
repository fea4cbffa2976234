package models

// Message is a chat entry tied to an offer. There is no push delivery;
// messages are plain persisted rows ordered by creation time.
type Message struct {
	BaseModel
	OfferID  uint   `gorm:"not null;index" json:"offerId"`
	AuthorID uint   `gorm:"not null;index" json:"authorId"`
	Body     string `gorm:"type:text;not null" json:"body"`

	// Relations
	Offer  Offer `gorm:"foreignKey:OfferID" json:"-"`
	Author User  `gorm:"foreignKey:AuthorID" json:"-"`
}
