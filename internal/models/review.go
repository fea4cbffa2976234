package models

// Review is a bilateral rating between the offer's distributor and its accepted
// performer, unique per (rater, rated, offer).
type Review struct {
	BaseModel
	RaterID uint   `gorm:"not null;uniqueIndex:uq_review_pair_offer;index" json:"raterId"`
	RatedID uint   `gorm:"not null;uniqueIndex:uq_review_pair_offer;index" json:"ratedId"`
	OfferID *uint  `gorm:"uniqueIndex:uq_review_pair_offer" json:"offerId"`
	Score   int    `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment string `gorm:"type:text" json:"comment"`

	// Relations
	Rater User   `gorm:"foreignKey:RaterID" json:"-"`
	Rated User   `gorm:"foreignKey:RatedID" json:"-"`
	Offer *Offer `gorm:"foreignKey:OfferID" json:"-"`
}
