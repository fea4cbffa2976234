package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagelink_backend/internal/models"
	"stagelink_backend/test/helpers"
)

// closeOfferWithAcceptedPerformer walks an offer through apply, accept and
// conclude so that reviews become legal.
func closeOfferWithAcceptedPerformer(t *testing.T, ts *helpers.TestServer, venueToken, performerToken string, performerID uint, offerID uint) {
	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/apply", offerID), performerToken, map[string]interface{}{"rate": 500.0})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/accept", offerID), venueToken, map[string]interface{}{"performerId": performerID})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/conclude", offerID), venueToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestReviewPreconditions(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	venueToken, venue := helpers.CreateAndLoginUser(t, ts, "Klub", "club@example.com", "s3cret-pass", models.UserRoleDistributor)
	anaToken, ana := helpers.CreateAndLoginUser(t, ts, "Ana", "ana@example.com", "s3cret-pass", models.UserRolePerformer)
	benToken, ben := helpers.CreateAndLoginUser(t, ts, "Ben", "ben@example.com", "s3cret-pass", models.UserRolePerformer)
	offer := helpers.CreateOffer(t, ts.DB, venue.ID, "Friday gig")

	// Reviews on an open offer are rejected.
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", venueToken, map[string]interface{}{
		"raterId": venue.ID, "ratedId": ana.ID, "offerId": offer.ID, "score": 5,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	closeOfferWithAcceptedPerformer(t, ts, venueToken, anaToken, ana.ID, offer.ID)

	// Self reviews are forbidden.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", venueToken, map[string]interface{}{
		"raterId": venue.ID, "ratedId": venue.ID, "offerId": offer.ID, "score": 5,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Only the distributor / accepted performer pair may review.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", benToken, map[string]interface{}{
		"raterId": ben.ID, "ratedId": venue.ID, "offerId": offer.ID, "score": 4,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Nobody may file a review under someone else's name.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", benToken, map[string]interface{}{
		"raterId": ana.ID, "ratedId": venue.ID, "offerId": offer.ID, "score": 4,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Score is bounded to 1..5.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", venueToken, map[string]interface{}{
		"raterId": venue.ID, "ratedId": ana.ID, "offerId": offer.ID, "score": 6,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestReviewLifecycleAndRating(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	venueToken, venue := helpers.CreateAndLoginUser(t, ts, "Klub", "club@example.com", "s3cret-pass", models.UserRoleDistributor)
	anaToken, ana := helpers.CreateAndLoginUser(t, ts, "Ana", "ana@example.com", "s3cret-pass", models.UserRolePerformer)

	first := helpers.CreateOffer(t, ts.DB, venue.ID, "Friday gig")
	second := helpers.CreateOffer(t, ts.DB, venue.ID, "Saturday gig")
	closeOfferWithAcceptedPerformer(t, ts, venueToken, anaToken, ana.ID, first.ID)
	closeOfferWithAcceptedPerformer(t, ts, venueToken, anaToken, ana.ID, second.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", venueToken, map[string]interface{}{
		"raterId": venue.ID, "ratedId": ana.ID, "offerId": first.ID, "score": 5, "comment": "Great set",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var review struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &review))

	// One review per direction per offer.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", venueToken, map[string]interface{}{
		"raterId": venue.ID, "ratedId": ana.ID, "offerId": first.ID, "score": 3,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// The opposite direction on the same offer is fine.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", anaToken, map[string]interface{}{
		"raterId": ana.ID, "ratedId": venue.ID, "offerId": first.ID, "score": 4,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/reviews", venueToken, map[string]interface{}{
		"raterId": venue.ID, "ratedId": ana.ID, "offerId": second.ID, "score": 4,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// The aggregate is recomputed synchronously: (5+4)/2 = 4.5.
	var anaRow models.User
	require.NoError(t, ts.DB.First(&anaRow, ana.ID).Error)
	assert.Equal(t, 2, anaRow.RatingCount)
	assert.InDelta(t, 4.5, anaRow.RatingAvg, 0.001)

	// The public review listing shows what the user received.
	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/reviews", ana.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var reviews []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &reviews))
	assert.Len(t, reviews, 2)

	// Deleting a review recomputes the aggregate.
	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%d", review.ID), anaToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, "only the author may delete")

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%d", review.ID), venueToken, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	require.NoError(t, ts.DB.First(&anaRow, ana.ID).Error)
	assert.Equal(t, 1, anaRow.RatingCount)
	assert.InDelta(t, 4.0, anaRow.RatingAvg, 0.001)
}
