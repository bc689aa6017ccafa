package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avryabov/eventhub-cli/internal/common"
	"github.com/avryabov/eventhub-cli/internal/logging"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	return New(logging.NewTextLogger(io.Discard, slog.LevelError), 0)
}

func TestPost_SendsActionEnvelope(t *testing.T) {
	var gotBody map[string]any
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Post(context.Background(), srv.URL, "login", map[string]any{
		"phone":    "+7 999 123-45-67",
		"password": "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "login", gotBody["action"])
	assert.Equal(t, "+7 999 123-45-67", gotBody["phone"])
	assert.Equal(t, "secret1", gotBody["password"])
}

func TestPost_AttachesTokenAndRequestID(t *testing.T) {
	var gotToken, gotReqID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(common.AuthTokenHeaderName)
		gotReqID = r.Header.Get(common.RequestIDHeaderName)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	c.SetToken("t1")
	_, err := c.Post(context.Background(), srv.URL, "verify", nil)
	require.NoError(t, err)

	assert.Equal(t, "t1", gotToken)
	assert.NotEmpty(t, gotReqID)

	c.ClearToken()
	_, err = c.Post(context.Background(), srv.URL, "verify", nil)
	require.NoError(t, err)
	assert.Empty(t, gotToken)
}

func TestPost_ServerErrorMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Неверный телефон или пароль"}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Post(context.Background(), srv.URL, "login", nil)
	require.Error(t, err)

	se := AsServerError(err)
	require.NotNil(t, se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, "Неверный телефон или пароль", se.Error())
}

func TestPost_ServerErrorGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Post(context.Background(), srv.URL, "login", nil)
	require.Error(t, err)

	se := AsServerError(err)
	require.NotNil(t, se)
	assert.Contains(t, se.Error(), "500")
}

func TestPost_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed server: connection refused

	c := newTestClient(t)
	_, err := c.Post(context.Background(), srv.URL, "login", nil)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, AsServerError(err))
}

func TestPost_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	_, err := c.Post(context.Background(), srv.URL, "login", nil)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGet_NoEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		b, _ := io.ReadAll(r.Body)
		assert.Empty(t, b)
		w.Write([]byte(`{"events":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t)
	raw, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"events":[]}`, string(raw))
}

func TestDecode_MapsFailureToMalformed(t *testing.T) {
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, Decode(json.RawMessage(`{"token":"t1"}`), &out))
	assert.Equal(t, "t1", out.Token)

	err := Decode(json.RawMessage(`{"token":42}`), &out)
	require.ErrorIs(t, err, ErrMalformedResponse)
}
