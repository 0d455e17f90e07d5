package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicapi-dashboard/backend/internal/models"
)

func doSetAlert(h *AdminHandler, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/set-alert", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(AdminTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.RequireToken(http.HandlerFunc(h.SetAlert)).ServeHTTP(rec, req)
	return rec
}

func TestSetAlert(t *testing.T) {
	store := &fakeAlertStore{}
	h := NewAdminHandler(store, "")

	rec := doSetAlert(h, `{"message":"upgrading tonight","active":true}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SetAlertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "updated", resp.Status)

	require.NotNil(t, store.alert)
	assert.Equal(t, models.AlertID, store.alert.ID)
	assert.Equal(t, "upgrading tonight", store.alert.Message)
	assert.True(t, store.alert.Active)
}

func TestSetAlertActiveDefaultsTrue(t *testing.T) {
	store := &fakeAlertStore{}
	h := NewAdminHandler(store, "")

	rec := doSetAlert(h, `{"message":"heads up"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, store.alert)
	assert.True(t, store.alert.Active)
}

func TestSetAlertReplayIdempotent(t *testing.T) {
	store := &fakeAlertStore{}
	h := NewAdminHandler(store, "")

	doSetAlert(h, `{"message":"M","active":true}`, "")
	first := *store.alert
	doSetAlert(h, `{"message":"M","active":true}`, "")

	assert.Equal(t, first, *store.alert)
	assert.Equal(t, 2, store.setCalls)
}

func TestSetAlertDeactivate(t *testing.T) {
	store := &fakeAlertStore{alert: &models.Alert{ID: models.AlertID, Message: "M", Active: true}}
	h := NewAdminHandler(store, "")

	rec := doSetAlert(h, `{"message":"M","active":false}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, store.alert.Active)
}

func TestSetAlertBadBody(t *testing.T) {
	store := &fakeAlertStore{}
	h := NewAdminHandler(store, "")

	rec := doSetAlert(h, `not json`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(400), body["status"])
	assert.Zero(t, store.setCalls)
}

func TestAdminTokenHook(t *testing.T) {
	store := &fakeAlertStore{}
	h := NewAdminHandler(store, "hunter2")

	rec := doSetAlert(h, `{"message":"M"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.setCalls)

	rec = doSetAlert(h, `{"message":"M"}`, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.setCalls)

	rec = doSetAlert(h, `{"message":"M"}`, "hunter2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.setCalls)
}
