package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stagelink_backend/internal/models"
)

// CreateUser inserts a user directly, hashing the given raw password.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	capacity := 300
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
		City:         "Berlin",
	}
	if role == models.UserRoleDistributor {
		user.Capacity = &capacity
	}

	require.NoError(t, db.Create(user).Error, "failed to create test user %s", email)
	return user
}

// Login authenticates through the API and returns the access token.
func Login(t *testing.T, ts *TestServer, email, password string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login failed: %s", body)

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// CreateAndLoginUser inserts a user and logs them in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := CreateUser(t, ts.DB, name, email, password, role)
	return Login(t, ts, email, password), user
}

// CreateOffer inserts an open offer owned by the distributor.
func CreateOffer(t *testing.T, db *gorm.DB, distributorID uint, title string) *models.Offer {
	offer := &models.Offer{
		DistributorID: distributorID,
		Title:         title,
		Description:   "Live set, two hours",
		City:          "Berlin",
		VenueName:     "Kesselhaus",
		Status:        models.OfferStatusOpen,
		EventDate:     time.Now().Add(14 * 24 * time.Hour),
		Capacity:      300,
	}
	require.NoError(t, db.Create(offer).Error, "failed to create test offer")
	return offer
}
