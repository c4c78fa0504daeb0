package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zatekoja/stallsurvey/internal/api/middleware"
	"github.com/zatekoja/stallsurvey/internal/domain/entities"
)

func authedRequest(method, target string, body io.Reader, userID string, role entities.UserRole) *http.Request {
	req := httptest.NewRequest(method, target, body)
	principal := &middleware.Principal{UserID: userID, Email: userID + "@example.com", Role: role}
	return req.WithContext(middleware.WithPrincipal(req.Context(), principal))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(dst))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, w, &body)
	return body["error"]
}
