package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param    string
		expected string
	}{
		{"id", "ID"},
		{"chatId", "chat ID"},
		{"notificationId", "notification ID"},
		{"wizardStepId", "wizard step ID"},
		{"index", "index"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizeParam(tt.param))
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		path   string
		status int
	}{
		{"/items/42", http.StatusOK},
		{"/items/abc", http.StatusBadRequest},
		{"/items/0", http.StatusBadRequest},
		{"/items/-3", http.StatusBadRequest},
	}

	app := fiber.New()
	s := &Server{}
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestParseIndex_AllowsZero(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Get("/items/:index", func(c *fiber.Ctx) error {
		idx, err := s.parseIndex(c, "index")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"index": idx})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/0", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body["index"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/items/x", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "Invalid index", errBody["error"])
}
