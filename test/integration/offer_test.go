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

func TestCreateOffer(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	venueToken, venue := helpers.CreateAndLoginUser(t, ts, "Klub", "club@example.com", "s3cret-pass", models.UserRoleDistributor)
	performerToken, _ := helpers.CreateAndLoginUser(t, ts, "Ana", "ana@example.com", "s3cret-pass", models.UserRolePerformer)

	payload := map[string]interface{}{
		"title":       "Friday headline slot",
		"description": "Two hour live set",
		"city":        "Berlin",
		"venueName":   "Kesselhaus",
		"eventDate":   "2026-10-02T21:00",
		"budget":      1500.0,
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/offers", venueToken, payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var offer struct {
		ID            uint   `json:"id"`
		DistributorID uint   `json:"distributorId"`
		Status        string `json:"status"`
		Capacity      int    `json:"capacity"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &offer))
	assert.Equal(t, venue.ID, offer.DistributorID)
	assert.Equal(t, "open", offer.Status)
	// Capacity falls back to the venue profile when omitted.
	assert.Equal(t, 300, offer.Capacity)

	// Performers cannot publish offers.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/offers", performerToken, payload)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Unauthenticated creation is rejected.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/offers", "", payload)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Invalid event date fails validation.
	bad := map[string]interface{}{}
	for k, v := range payload {
		bad[k] = v
	}
	bad["eventDate"] = "next friday"
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/offers", venueToken, bad)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestBrowseOffers(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	venue := helpers.CreateUser(t, ts.DB, "Klub", "club@example.com", "s3cret-pass", models.UserRoleDistributor)
	first := helpers.CreateOffer(t, ts.DB, venue.ID, "First gig")
	helpers.CreateOffer(t, ts.DB, venue.ID, "Second gig")

	// Listing and detail are public.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/offers", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var offers []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &offers))
	assert.Len(t, offers, 2)

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/offers/%d", first.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var detail struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &detail))
	assert.Equal(t, "First gig", detail.Title)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/offers/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Created listing per distributor.
	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/offers/created", venue.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &offers))
	assert.Len(t, offers, 2)
}
