// Package authz is the authorization resolver: pure decision functions over a
// caller's identity and the target entities. It has no side effects and does no
// I/O; callers load the entities and pass them in. Every workflow operation
// consults these functions instead of re-deriving the checks per endpoint.
package authz

import "stagelink_backend/internal/models"

// Caller is a verified identity: integer user id plus normalized role claim.
type Caller struct {
	ID   uint
	Role models.UserRole
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == models.UserRoleAdmin
}

// OwnsOffer reports whether the caller may act as the offer's owner:
// admins always, distributors only on their own offers.
func OwnsOffer(caller Caller, offer *models.Offer) bool {
	if caller.IsAdmin() {
		return true
	}
	return caller.Role == models.UserRoleDistributor && offer.DistributorID == caller.ID
}

// CanAccessChat decides whether the caller may view or post messages for the
// offer. match is the caller's own match on this offer, nil when there is none;
// it is only consulted for performers.
//
//	admin       -> always
//	distributor -> iff they own the offer
//	performer   -> iff accepted for the offer, or their match has chat approved
func CanAccessChat(caller Caller, offer *models.Offer, match *models.Match) bool {
	switch caller.Role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleDistributor:
		return offer.DistributorID == caller.ID
	case models.UserRolePerformer:
		if offer.AcceptedPerformerID != nil && *offer.AcceptedPerformerID == caller.ID {
			return true
		}
		return match != nil && match.ChatApproved
	default:
		return false
	}
}

// CanActAsRater reports whether the caller may file a review under raterID.
// Admins may act on behalf of a rater; everyone else only as themselves.
func CanActAsRater(caller Caller, raterID uint) bool {
	return caller.IsAdmin() || caller.ID == raterID
}

// ReviewPairAllowed checks the bilateral pairing rule: the only legal
// (rater, rated) combinations for a concluded offer are distributor->accepted
// performer and accepted performer->distributor.
func ReviewPairAllowed(offer *models.Offer, raterID, ratedID uint) bool {
	if offer.AcceptedPerformerID == nil {
		return false
	}
	accepted := *offer.AcceptedPerformerID
	if raterID == offer.DistributorID && ratedID == accepted {
		return true
	}
	if raterID == accepted && ratedID == offer.DistributorID {
		return true
	}
	return false
}
