package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMarshalsAsCalendarDate(t *testing.T) {
	resp := AuthResponse{
		UserID:    1,
		Token:     "abc",
		IssuedAt:  Date{Time: time.Date(2023, 5, 31, 18, 30, 0, 0, time.UTC)},
		ExpiresAt: Date{Time: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":1,"token":"abc","issuedAt":"2023-05-31","expiresAt":"2023-06-01"}`, string(raw))
}

func TestDateUnmarshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-06-01"`), &d))
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), d.Time)

	assert.Error(t, json.Unmarshal([]byte(`"June 1st"`), &d))
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Username: "alice", Password: "secret1", FirstName: "Alice"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Password: "secret1"}},
		{"missing password", RegisterRequest{Username: "alice"}},
		{"short username", RegisterRequest{Username: "al", Password: "secret1"}},
		{"short password", RegisterRequest{Username: "alice", Password: "abc"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.req.Validate())
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Username: "alice", Password: "x"}.Validate())
	assert.Error(t, LoginRequest{Username: "alice"}.Validate())
	assert.Error(t, LoginRequest{Password: "x"}.Validate())
}
