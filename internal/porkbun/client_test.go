package porkbun

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/domainops/porkbun-adapter/internal/secrets"
)

var testCreds = secrets.Credentials{APIKey: "pk1_testtesttesttest", SecretAPIKey: "sk1_testtesttesttest"}

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(zap.NewNop(), baseURL, testCreds, timeout)
}

// capturingServer records the request path and decoded body of the last call
// and replies with the given status and payload.
func capturingServer(t *testing.T, status int, payload string) (*httptest.Server, *string, *map[string]any) {
	t.Helper()
	var path string
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method, "every registrar call is a POST")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv, &path, &body
}

// ─── Success pass-through ────────────────────────────────────────────────────

func TestInvoke_SuccessBodyReturnedUnmodified(t *testing.T) {
	srv, path, _ := capturingServer(t, http.StatusOK, `{"status":"SUCCESS","yourIp":"1.2.3.4"}`)

	result, err := newTestClient(srv.URL, time.Second).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/ping", *path)
	assert.Equal(t, Result{"status": "SUCCESS", "yourIp": "1.2.3.4"}, result)
}

func TestInvoke_CredentialsInjectedExactlyOnce(t *testing.T) {
	srv, _, body := capturingServer(t, http.StatusOK, `{"status":"SUCCESS"}`)

	_, err := newTestClient(srv.URL, time.Second).ListDomains(context.Background(), 0, false)
	require.NoError(t, err)

	assert.Equal(t, testCreds.APIKey, (*body)["apikey"])
	assert.Equal(t, testCreds.SecretAPIKey, (*body)["secretapikey"])
	assert.Len(t, *body, 3, "credential pair plus the declared start field, nothing else")
	assert.Equal(t, "0", (*body)["start"])
}

func TestInvoke_CallerCannotOverrideCredentials(t *testing.T) {
	srv, _, body := capturingServer(t, http.StatusOK, `{"status":"SUCCESS"}`)

	// "apikey" is not a declared field on any descriptor, so a hostile arg
	// never reaches the body; the injected pair always wins.
	_, err := newTestClient(srv.URL, time.Second).Invoke(context.Background(), OpListDomains, nil,
		map[string]any{"apikey": "stolen", "start": "0"})
	require.NoError(t, err)

	assert.Equal(t, testCreds.APIKey, (*body)["apikey"])
}

// ─── Application errors ──────────────────────────────────────────────────────

func TestInvoke_StatusERRORWithin200(t *testing.T) {
	srv, _, _ := capturingServer(t, http.StatusOK, `{"status":"ERROR","message":"Invalid domain"}`)

	_, err := newTestClient(srv.URL, time.Second).CheckDomain(context.Background(), "nope.invalid")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindApplication))
	assert.Contains(t, err.Error(), "Invalid domain")
}

func TestInvoke_StatusERRORWithin400(t *testing.T) {
	srv, _, _ := capturingServer(t, http.StatusBadRequest, `{"status":"ERROR","message":"Invalid domain"}`)

	_, err := newTestClient(srv.URL, time.Second).CheckDomain(context.Background(), "nope.invalid")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindApplication), "decodable registrar error wins over the HTTP status")
	assert.Contains(t, err.Error(), "Invalid domain")
}

func TestInvoke_ApplicationErrorWithoutMessage(t *testing.T) {
	srv, _, _ := capturingServer(t, http.StatusOK, `{"status":"ERROR"}`)

	_, err := newTestClient(srv.URL, time.Second).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown error")
}

// ─── HTTP and protocol errors ────────────────────────────────────────────────

func TestInvoke_Non2xxUndecodableBody(t *testing.T) {
	srv, _, _ := capturingServer(t, http.StatusBadRequest, `go away`)

	_, err := newTestClient(srv.URL, time.Second).Ping(context.Background())
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindHTTP, perr.Kind)
	assert.Equal(t, http.StatusBadRequest, perr.Status)
	assert.Equal(t, "go away", perr.Body)
}

func TestInvoke_2xxUndecodableBody(t *testing.T) {
	srv, _, _ := capturingServer(t, http.StatusOK, `<html>maintenance</html>`)

	_, err := newTestClient(srv.URL, time.Second).Ping(context.Background())
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindProtocol, perr.Kind)
	assert.Contains(t, perr.Body, "maintenance")
}

// ─── Transport errors ────────────────────────────────────────────────────────

func TestInvoke_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listening any more

	_, err := newTestClient(url, time.Second).Ping(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
}

func TestInvoke_TimeoutCarriesConfiguredDuration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`{"status":"SUCCESS"}`))
	}))
	defer srv.Close()

	timeout := 50 * time.Millisecond
	_, err := newTestClient(srv.URL, timeout).Ping(context.Background())
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindTimeout, perr.Kind, "slow server must classify as timeout, not network")
	assert.Equal(t, timeout, perr.Timeout)
	assert.Contains(t, err.Error(), "timed out")
}

// ─── Pre-flight failures ─────────────────────────────────────────────────────

func TestInvoke_UnknownOperation(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).Invoke(context.Background(), "transfer_domain", nil, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindMalformedOperation))
	assert.Zero(t, calls, "unknown operation must fail before any network call")
}

func TestInvoke_MissingPathParamNoNetworkCall(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).DeleteDNSRecord(context.Background(), "example.com", "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindMalformedOperation))
	assert.Zero(t, calls)
}

// ─── Classification idempotence ──────────────────────────────────────────────

func TestInvoke_SameFailureClassifiesIdentically(t *testing.T) {
	srv, _, _ := capturingServer(t, http.StatusBadRequest, `{"status":"ERROR","message":"Invalid domain"}`)

	c := newTestClient(srv.URL, time.Second)
	_, err1 := c.CheckDomain(context.Background(), "nope.invalid")
	_, err2 := c.CheckDomain(context.Background(), "nope.invalid")

	require.Error(t, err1)
	require.Error(t, err2)

	var perr1, perr2 *Error
	require.ErrorAs(t, err1, &perr1)
	require.ErrorAs(t, err2, &perr2)
	assert.Equal(t, perr1.Kind, perr2.Kind)
	assert.Equal(t, perr1.Error(), perr2.Error())
}
