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

func TestChatGating(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	venueToken, venue := helpers.CreateAndLoginUser(t, ts, "Klub", "club@example.com", "s3cret-pass", models.UserRoleDistributor)
	anaToken, ana := helpers.CreateAndLoginUser(t, ts, "Ana", "ana@example.com", "s3cret-pass", models.UserRolePerformer)
	benToken, _ := helpers.CreateAndLoginUser(t, ts, "Ben", "ben@example.com", "s3cret-pass", models.UserRolePerformer)
	offer := helpers.CreateOffer(t, ts.DB, venue.ID, "Friday gig")

	messagesPath := fmt.Sprintf("/api/v1/offers/%d/messages", offer.ID)

	for _, token := range []string{anaToken, benToken} {
		res, _ := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/apply", offer.ID), token, map[string]interface{}{"rate": 500.0})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	// Applying alone does not open the chat.
	res, _ := ts.SendRequest(t, http.MethodGet, messagesPath, anaToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// The owner can always use the chat.
	res, body := ts.SendRequest(t, http.MethodPost, messagesPath, venueToken, map[string]interface{}{
		"body": "Hi, are you free on the 2nd?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Approval opens the chat for that performer only.
	res, _ = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/approve-chat", offer.ID), venueToken, map[string]interface{}{
		"performerId": ana.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, messagesPath, anaToken, map[string]interface{}{
		"body": "Yes, sending our rider.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodGet, messagesPath, benToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// History comes back oldest first.
	res, body = ts.SendRequest(t, http.MethodGet, messagesPath, anaToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var messages []struct {
		AuthorID uint   `json:"authorId"`
		Body     string `json:"body"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, venue.ID, messages[0].AuthorID)
	assert.Equal(t, ana.ID, messages[1].AuthorID)

	// Only the owner may approve.
	res, _ = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/approve-chat", offer.ID), anaToken, map[string]interface{}{
		"performerId": ana.ID,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Approval can be revoked.
	res, _ = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/approve-chat", offer.ID), venueToken, map[string]interface{}{
		"performerId": ana.ID,
		"approved":    false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, messagesPath, anaToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAcceptedPerformerChatsWithoutApproval(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	venueToken, venue := helpers.CreateAndLoginUser(t, ts, "Klub", "club@example.com", "s3cret-pass", models.UserRoleDistributor)
	anaToken, ana := helpers.CreateAndLoginUser(t, ts, "Ana", "ana@example.com", "s3cret-pass", models.UserRolePerformer)
	offer := helpers.CreateOffer(t, ts.DB, venue.ID, "Friday gig")

	res, _ := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/apply", offer.ID), anaToken, map[string]interface{}{"rate": 500.0})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/accept", offer.ID), venueToken, map[string]interface{}{"performerId": ana.ID})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/offers/%d/messages", offer.ID), anaToken, map[string]interface{}{
		"body": "See you at soundcheck.",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
}
