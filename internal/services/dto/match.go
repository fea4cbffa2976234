package dto

type ApplyRequest struct {
	Rate    *float64 `json:"rate" validate:"required,gte=0"`
	Message *string  `json:"message,omitempty"`
}

type ApproveChatRequest struct {
	PerformerID uint  `json:"performerId" validate:"required"`
	Approved    *bool `json:"approved,omitempty"`
}

type AcceptRequest struct {
	PerformerID uint `json:"performerId" validate:"required"`
}
