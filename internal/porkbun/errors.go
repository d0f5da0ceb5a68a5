package porkbun

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies an invocation failure. Every error leaving the dispatch
// core carries exactly one Kind; callers branch on it instead of matching
// message text.
type Kind int

const (
	// KindMalformedOperation means the caller/registry contract was violated
	// before any network I/O (unknown operation, missing path parameter).
	KindMalformedOperation Kind = iota
	// KindTimeout means the call did not complete within the configured timeout.
	KindTimeout
	// KindNetwork covers connectivity failures: DNS, refused connection, TLS.
	KindNetwork
	// KindHTTP means the registrar answered with a non-2xx status and no
	// decodable error payload.
	KindHTTP
	// KindProtocol means a 2xx response body was not decodable JSON.
	KindProtocol
	// KindApplication means the registrar itself reported failure via its
	// status field.
	KindApplication
)

// String returns the stable identifier used in logs and front-end payloads.
func (k Kind) String() string {
	switch k {
	case KindMalformedOperation:
		return "malformed_operation"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindProtocol:
		return "protocol"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// Error is the single failure shape produced by the dispatch core.
type Error struct {
	Kind     Kind
	Op       string        // operation name
	Endpoint string        // resolved endpoint path, when resolution succeeded
	Status   int           // HTTP status, set for KindHTTP
	Timeout  time.Duration // configured timeout, set for KindTimeout
	Message  string        // caller-facing message
	Body     string        // raw response body, set for KindHTTP and KindProtocol
	cause    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTimeout:
		return fmt.Sprintf("request timed out after %s", e.Timeout)
	case KindNetwork:
		return fmt.Sprintf("network error: %s", e.Message)
	case KindHTTP:
		return fmt.Sprintf("porkbun returned %d: %s", e.Status, e.Body)
	case KindProtocol:
		return fmt.Sprintf("undecodable response: %s", e.Body)
	case KindApplication:
		return fmt.Sprintf("porkbun API error: %s", e.Message)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.cause }

// IsKind reports whether err is a dispatch error of the given kind.
func IsKind(err error, kind Kind) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Kind == kind
}
