package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stagelink_backend/internal/app"
	"stagelink_backend/internal/config"
)

// MailerStub records welcome emails instead of sending them.
type MailerStub struct {
	mu   sync.Mutex
	Sent []string
}

func (m *MailerStub) SendWelcome(to, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, to)
	return nil
}

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Mailer *MailerStub
}

// NewTestServer connects to the test database from DATABASE_URL, migrates the
// schema and starts an httptest server over the real router.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := app.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	mailer := &MailerStub{}
	server := httptest.NewServer(app.SetupRouter(db, mailer))

	return &TestServer{Server: server, DB: db, Mailer: mailer}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables resets every table between tests.
func (ts *TestServer) ClearTables() {
	err := ts.DB.Exec(
		"TRUNCATE TABLE users, refresh_tokens, offers, matches, messages, reviews RESTART IDENTITY CASCADE",
	).Error
	if err != nil {
		panic("failed to clear tables: " + err.Error())
	}
}

// SendRequest performs a JSON request against the test server and returns the
// response together with the drained body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(raw)
}
