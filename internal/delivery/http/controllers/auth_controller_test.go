package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventlist/internal/delivery/http/helpers"
	"eventlist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	loginErr     error
	loginToken   string
	lastPassword string
}

func (f *fakeAuthService) Login(ctx context.Context, password string) (string, error) {
	f.lastPassword = password
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		fakeToken      string
		wantStatus     int
		wantBodySubstr string
		wantToken      string
	}{
		{
			name:       "success",
			body:       `{"password":"hunter2"}`,
			fakeToken:  "signed-jwt",
			wantStatus: http.StatusOK,
			wantToken:  "signed-jwt",
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing password",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "password is required",
		},
		{
			name:           "wrong password",
			body:           `{"password":"wrong"}`,
			fakeErr:        domain.ErrBadCredentials,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "invalid credentials",
		},
		{
			name:           "service error",
			body:           `{"password":"hunter2"}`,
			fakeErr:        errors.New("signing failed"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "signing failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{loginErr: tt.fakeErr, loginToken: tt.fakeToken}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var data LoginResponse
				require.NoError(t, json.Unmarshal(dataBytes, &data))
				assert.Equal(t, tt.wantToken, data.Token)
				assert.Equal(t, "hunter2", fake.lastPassword)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}
