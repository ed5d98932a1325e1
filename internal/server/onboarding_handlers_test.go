package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboarding_Athlete(t *testing.T) {
	srv, app := newTestServer(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/onboarding", map[string]string{"type": "athlete"})
	require.Equal(t, http.StatusCreated, status)
	id := body["id"].(string)
	base := "/api/onboarding/" + id
	assert.Equal(t, float64(1), body["step"])
	assert.Equal(t, float64(4), body["totalSteps"])
	assert.Equal(t, "Personal Details", body["title"])
	assert.Equal(t, float64(25), body["progress"])

	status, body = doJSON(t, app, http.MethodPut, base+"/fields", map[string]string{"clubName": "FC"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	status, _ = doJSON(t, app, http.MethodPut, base+"/fields", map[string]string{
		"name": "Sam Daniel", "email": "sam@example.com", "location": "Chennai",
	})
	require.Equal(t, http.StatusOK, status)

	for i := 0; i < 5; i++ {
		_, body = doJSON(t, app, http.MethodPost, base+"/next", nil)
	}
	assert.Equal(t, float64(4), body["step"])
	assert.Equal(t, true, body["final"])

	_, body = doJSON(t, app, http.MethodPost, base+"/previous", nil)
	assert.Equal(t, float64(3), body["step"])

	status, body = doJSON(t, app, http.MethodPost, base+"/complete", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "sport")
	assert.False(t, srv.session.Authenticated())

	_, _ = doJSON(t, app, http.MethodPut, base+"/fields", map[string]string{"sport": "Football", "position": "Forward"})
	status, body = doJSON(t, app, http.MethodPost, base+"/complete", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["authenticated"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "athlete", user["type"])
	assert.Equal(t, "Football", user["sport"])
	assert.NotEmpty(t, user["id"])

	status, _ = doJSON(t, app, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, status, "completed wizards are removed")
}

func TestOnboarding_Scout(t *testing.T) {
	_, app := newTestServer(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/onboarding", map[string]string{"type": "scout"})
	require.Equal(t, http.StatusCreated, status)
	base := "/api/onboarding/" + body["id"].(string)
	assert.Equal(t, float64(3), body["totalSteps"])
	assert.Equal(t, "Scout Details", body["title"])

	_, _ = doJSON(t, app, http.MethodPut, base+"/fields", map[string]string{
		"name": "Meera Gupta", "email": "meera@example.com", "location": "Bangalore",
		"clubName": "Cricket Excellence Academy", "specialization": "Cricket",
	})

	status, body = doJSON(t, app, http.MethodPost, base+"/complete", nil)
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]any)
	assert.Equal(t, "scout", user["type"])
	assert.Equal(t, "Cricket Excellence Academy", user["clubName"])
}

func TestOnboarding_Errors(t *testing.T) {
	_, app := newTestServer(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/onboarding", map[string]string{"type": "admin"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := doJSON(t, app, http.MethodGet, "/api/onboarding/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/onboarding/does-not-exist/next", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
