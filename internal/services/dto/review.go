package dto

type CreateReviewRequest struct {
	RaterID uint   `json:"raterId" validate:"required"`
	RatedID uint   `json:"ratedId" validate:"required"`
	OfferID uint   `json:"offerId" validate:"required"`
	Score   int    `json:"score" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty"`
}
