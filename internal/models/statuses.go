package models

import "strings"

type UserRole string
type OfferStatus string
type MatchStatus string

const (
	UserRolePerformer   UserRole = "performer"
	UserRoleDistributor UserRole = "distributor"
	UserRoleAdmin       UserRole = "admin"

	OfferStatusOpen      OfferStatus = "open"
	OfferStatusClosed    OfferStatus = "closed"
	OfferStatusCancelled OfferStatus = "cancelled"

	MatchStatusPending   MatchStatus = "pending"
	MatchStatusAccepted  MatchStatus = "accepted"
	MatchStatusRejected  MatchStatus = "rejected"
	MatchStatusWithdrawn MatchStatus = "withdrawn"
)

// NormalizeRole maps an incoming role string to a canonical UserRole.
// The legacy alias "venue" is accepted wherever "distributor" is expected.
// This is the single place where role strings from the outside are interpreted;
// handlers and services must never compare raw role strings themselves.
func NormalizeRole(raw string) (UserRole, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "performer":
		return UserRolePerformer, true
	case "distributor", "venue":
		return UserRoleDistributor, true
	case "admin":
		return UserRoleAdmin, true
	default:
		return "", false
	}
}

// IsConcluding reports whether s is a valid target status for concluding an offer.
func (s OfferStatus) IsConcluding() bool {
	return s == OfferStatusClosed || s == OfferStatusCancelled
}
