package dto

type CreateOfferRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	City        string   `json:"city" validate:"required,max=50"`
	VenueName   string   `json:"venueName" validate:"required,max=100"`
	Genre       *string  `json:"genre,omitempty"`
	Budget      *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	EventDate   string   `json:"eventDate" validate:"required"`
	Capacity    *int     `json:"capacity,omitempty" validate:"omitempty,gte=0"`

	// Admins may create an offer on behalf of a distributor.
	DistributorID *uint `json:"distributorId,omitempty"`
}

type ConcludeOfferRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=closed cancelled"`
}
