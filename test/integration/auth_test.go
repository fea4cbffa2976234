package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagelink_backend/test/helpers"
)

func TestSignup(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"email":    "ana@example.com",
		"password": "s3cret-pass",
		"role":     "performer",
		"name":     "Ana",
		"city":     "Berlin",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var user struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &user))
	assert.NotZero(t, user.ID)
	assert.Equal(t, "performer", user.Role)

	// "venue" is an alias; the stored role is distributor.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"email":    "club@example.com",
		"password": "s3cret-pass",
		"role":     "venue",
		"name":     "Klub",
		"city":     "Berlin",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &user))
	assert.Equal(t, "distributor", user.Role)

	// Duplicate email is a conflict.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"email":    "ana@example.com",
		"password": "s3cret-pass",
		"role":     "performer",
		"name":     "Ana Again",
		"city":     "Berlin",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Admin cannot be self-registered.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"email":    "root@example.com",
		"password": "s3cret-pass",
		"role":     "admin",
		"name":     "Root",
		"city":     "Berlin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Short password fails validation.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"email":    "short@example.com",
		"password": "short",
		"role":     "performer",
		"name":     "Shorty",
		"city":     "Berlin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLoginAndRefresh(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateUser(t, ts.DB, "Ana", "ana@example.com", "s3cret-pass", "performer")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "ana@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "ana@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var login struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.AccessToken)
	require.NotEmpty(t, login.RefreshToken)

	// Refresh rotates the token; the old one is gone afterwards.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": login.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var refreshed struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &refreshed))
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Logout revokes the current token.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refreshToken": refreshed.RefreshToken,
	})
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refreshToken": refreshed.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
