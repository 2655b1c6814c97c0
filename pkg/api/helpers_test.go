package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, http.StatusCreated, map[string]string{"id": "c-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "c-1", body["data"].(map[string]interface{})["id"])
	assert.NotContains(t, body, "error")
}

func TestErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusBadRequest, "company_name is required")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "company_name is required", body["error"])
	assert.NotContains(t, body, "data")
}

func TestPageEnvelopeEncodesEmptyItems(t *testing.T) {
	w := httptest.NewRecorder()
	Page(w, http.StatusInternalServerError, PageEnvelope{Items: []string{}, Error: "Search failed"})

	assert.JSONEq(t,
		`{"success":false,"items":[],"total":0,"hasMore":false,"limit":0,"offset":0,"error":"Search failed"}`,
		w.Body.String())
}
