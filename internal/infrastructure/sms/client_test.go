package sms

import (
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostdesk/internal/shared/config"
	"hostdesk/internal/shared/logger"

	domainsms "hostdesk/internal/domain/sms"
)

func testClient(url string) *Client {
	return NewClient(config.SMSConfig{
		APIURL:  url,
		Token:   "test-token",
		Source:  "0529990000",
		User:    "hostdesk",
		Timeout: 5,
	}, logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestClientSend(t *testing.T) {
	var gotBody []byte
	var gotAuth, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`<sms><status>0</status><message>OK</message></sms>`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	result, err := client.Send(context.Background(), "0521111111", "مرحبا")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/xml", gotContentType)

	var envelope smsEnvelope
	require.NoError(t, xml.Unmarshal(gotBody, &envelope))
	assert.Equal(t, "hostdesk", envelope.User.Username)
	assert.Equal(t, "0529990000", envelope.Source)
	require.Len(t, envelope.Destinations.Phone, 1)
	assert.Equal(t, "0521111111", envelope.Destinations.Phone[0].Value)
	assert.Equal(t, "مرحبا", envelope.Message)
}

func TestClientSend_EscapesMarkup(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`<sms><status>0</status></sms>`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	_, err := client.Send(context.Background(), "0521111111", `price < 100 & "free"`)
	require.NoError(t, err)

	body := string(gotBody)
	assert.NotContains(t, body, `<message>price <`, "message content must be escaped")

	var envelope smsEnvelope
	require.NoError(t, xml.Unmarshal(gotBody, &envelope))
	assert.Equal(t, `price < 100 & "free"`, envelope.Message, "round trip preserves the text")
}

func TestClientSend_GatewayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<sms><status>3</status><message>invalid destination</message></sms>`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	result, err := client.Send(context.Background(), "0521111111", "مرحبا")
	require.NoError(t, err, "rejection is a result, not an error")

	assert.False(t, result.Success)
	assert.Equal(t, "invalid destination", result.ErrMessage)
	assert.Contains(t, result.RawResponse, "invalid destination")
}

func TestClientSend_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	result, err := client.Send(context.Background(), "0521111111", "مرحبا")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrMessage, "401")
}

func TestClientSend_Validation(t *testing.T) {
	client := testClient("http://localhost:1")

	_, err := client.Send(context.Background(), "", "مرحبا")
	assert.Error(t, err)

	_, err = client.Send(context.Background(), "0521111111", "")
	assert.Error(t, err)

	long := strings.Repeat("م", domainsms.MaxMessageLength+1)
	_, err = client.Send(context.Background(), "0521111111", long)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestClientSend_MissingToken(t *testing.T) {
	client := NewClient(config.SMSConfig{APIURL: "http://localhost:1"},
		logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil))))

	_, err := client.Send(context.Background(), "0521111111", "مرحبا")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}
