package porkbun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/domainops/porkbun-adapter/internal/metrics"
	"github.com/domainops/porkbun-adapter/internal/secrets"
)

// Result is a decoded registrar response body, returned to callers exactly
// as the API sent it: no field renaming, no reshaping.
type Result map[string]any

// Client wraps low-level HTTP communication with the Porkbun API. Every
// operation is a POST with a JSON body carrying the credential pair; the
// outcome of each call is classified into exactly one error Kind.
type Client struct {
	logger   *zap.Logger
	baseURL  string
	creds    secrets.Credentials
	http     *http.Client
	registry *Registry
	timeout  time.Duration
}

// NewClient constructs a Porkbun API client. baseURL must not end with a
// slash; timeout bounds every outbound call.
func NewClient(logger *zap.Logger, baseURL string, creds secrets.Credentials, timeout time.Duration) *Client {
	return &Client{
		logger:   logger,
		baseURL:  baseURL,
		creds:    creds,
		http:     &http.Client{Timeout: timeout},
		registry: NewRegistry(),
		timeout:  timeout,
	}
}

// Registry exposes the operation table for front-ends that enumerate it.
func (c *Client) Registry() *Registry { return c.registry }

// Invoke executes one logical operation end-to-end: resolve the endpoint,
// build the body, merge credentials, POST, classify the outcome. pathParams
// feed the endpoint template; args feed the declared body fields.
func (c *Client) Invoke(ctx context.Context, op string, pathParams map[string]string, args map[string]any) (Result, error) {
	desc, ok := c.registry.Lookup(op)
	if !ok {
		return nil, &Error{
			Kind:    KindMalformedOperation,
			Op:      op,
			Message: fmt.Sprintf("unknown operation %q", op),
		}
	}

	endpoint, err := desc.ResolveEndpoint(pathParams)
	if err != nil {
		c.logger.Warn("porkbun.malformed_operation",
			zap.String("operation", op),
			zap.Error(err))
		return nil, err
	}

	body := desc.BuildBody(args)
	// Credentials are merged last so they win any collision; the registry
	// init guard makes a collision impossible by construction.
	for k, v := range c.creds.AuthPayload() {
		body[k] = v
	}

	return c.post(ctx, op, endpoint, body)
}

// post performs the wire call and classifies its outcome. The request
// context and response body are scoped strictly to this invocation and
// released on every exit path.
func (c *Client) post(ctx context.Context, op, endpoint string, body map[string]any) (Result, error) {
	requestID := uuid.NewString()
	url := c.baseURL + "/" + endpoint

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{
			Kind:     KindMalformedOperation,
			Op:       op,
			Endpoint: endpoint,
			Message:  fmt.Sprintf("encode request body: %v", err),
			cause:    err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{
			Kind:     KindMalformedOperation,
			Op:       op,
			Endpoint: endpoint,
			Message:  fmt.Sprintf("build request: %v", err),
			cause:    err,
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("porkbun.request",
		zap.String("operation", op),
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		perr := c.classifyTransport(op, endpoint, err)
		metrics.IncRequest(op, perr.Kind.String())
		c.logger.Error("porkbun.transport_failed",
			zap.String("operation", op),
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.String("kind", perr.Kind.String()),
			zap.Error(err))
		return nil, perr
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncRequest(op, KindNetwork.String())
		c.logger.Error("porkbun.read_failed",
			zap.String("operation", op),
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, &Error{Kind: KindNetwork, Op: op, Endpoint: endpoint, Message: err.Error(), cause: err}
	}

	metrics.ObserveRequest(op, start)
	metrics.IncRequest(op, strconv.Itoa(resp.StatusCode))

	var decoded Result
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A non-2xx answer that still carries the registrar's own error
		// marker is an application error; anything else stays an HTTP error
		// with the raw body attached.
		if decodeErr == nil && apiStatus(decoded) == "ERROR" {
			return nil, c.applicationError(op, endpoint, requestID, decoded)
		}
		c.logger.Error("porkbun.http_error",
			zap.String("operation", op),
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(raw)))
		return nil, &Error{Kind: KindHTTP, Op: op, Endpoint: endpoint, Status: resp.StatusCode, Body: string(raw)}
	}

	if decodeErr != nil {
		c.logger.Error("porkbun.decode_failed",
			zap.String("operation", op),
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.String("body", string(raw)),
			zap.Error(decodeErr))
		return nil, &Error{Kind: KindProtocol, Op: op, Endpoint: endpoint, Body: string(raw), cause: decodeErr}
	}

	if apiStatus(decoded) == "ERROR" {
		return nil, c.applicationError(op, endpoint, requestID, decoded)
	}

	c.logger.Debug("porkbun.request_success",
		zap.String("operation", op),
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	return decoded, nil
}

// classifyTransport splits a failed round-trip into timeout vs connectivity.
func (c *Client) classifyTransport(op, endpoint string, err error) *Error {
	var ne net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout())
	if timedOut {
		return &Error{Kind: KindTimeout, Op: op, Endpoint: endpoint, Timeout: c.timeout, cause: err}
	}
	return &Error{Kind: KindNetwork, Op: op, Endpoint: endpoint, Message: err.Error(), cause: err}
}

func (c *Client) applicationError(op, endpoint, requestID string, decoded Result) *Error {
	msg, _ := decoded["message"].(string)
	if msg == "" {
		msg = "unknown error"
	}
	c.logger.Error("porkbun.api_error",
		zap.String("operation", op),
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID),
		zap.String("message", msg))
	return &Error{Kind: KindApplication, Op: op, Endpoint: endpoint, Message: msg}
}

func apiStatus(decoded Result) string {
	s, _ := decoded["status"].(string)
	return s
}
