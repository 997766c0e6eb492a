package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
}

func (c *stubClaims) GetUserID() uuid.UUID { return c.userID }

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v *stubValidator) ValidateToken(string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{userID: v.userID}, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	var gotUserID uuid.UUID

	handler := AuthMiddleware(&stubValidator{userID: userID})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := GetUserID(r)
			require.NoError(t, err)
			gotUserID = id
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/interviews/doc-1/evaluate", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
		{name: "invalid token", header: "Bearer bad", err: errors.New("invalid token")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AuthMiddleware(&stubValidator{err: tt.err})(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					called = true
				}))

			req := httptest.NewRequest(http.MethodPost, "/interviews/doc-1/evaluate", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, called)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "unauthenticated", body["code"])
		})
	}
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	handler := AuthMiddleware(&stubValidator{userID: uuid.New()})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/interviews/doc-1/evaluate", nil)
	req.Header.Set("Authorization", "bearer some-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}
