package apiclient

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FailureKind classifies why a backend call did not produce a result.
type FailureKind int

const (
	// Transport means no usable HTTP response arrived.
	Transport FailureKind = iota + 1
	// Application means the backend answered without success: true.
	Application
	// Decode means the body was not a readable envelope.
	Decode
)

func (k FailureKind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Application:
		return "application"
	case Decode:
		return "decode"
	}
	return "unknown"
}

// Failure is the only error type returned by Client calls.
type Failure struct {
	Kind     FailureKind
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (f *Failure) Error() string {
	var sb strings.Builder
	sb.WriteString(f.Endpoint)
	sb.WriteString(": ")
	sb.WriteString(f.Kind.String())
	if f.Status != 0 {
		sb.WriteString(fmt.Sprintf(" (%d)", f.Status))
	}
	if f.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(f.Message)
	}
	if f.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(f.Err.Error())
	}
	return sb.String()
}

func (f *Failure) Unwrap() error { return f.Err }

// envelope is the common response shape: a success flag plus data, or an
// error/message string.
type envelope struct {
	Success *bool               `json:"success"`
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Data    jsoniter.RawMessage `json:"data"`
}

// decodeEnvelope validates body and unmarshals its data member into out
// when out is non-nil. A body without success: true is a failure even when
// the HTTP status is 2xx.
func decodeEnvelope(endpoint string, status int, body []byte, out interface{}) (envelope, error) {
	var env envelope
	if len(body) == 0 {
		return env, &Failure{Kind: Decode, Endpoint: endpoint, Status: status, Err: errors.New("empty response body")}
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, &Failure{Kind: Decode, Endpoint: endpoint, Status: status, Err: errors.Wrap(err, "decode envelope")}
	}
	if env.Success == nil || !*env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return env, &Failure{Kind: Application, Endpoint: endpoint, Status: status, Message: msg}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env, &Failure{Kind: Decode, Endpoint: endpoint, Status: status, Err: errors.Wrap(err, "decode data")}
		}
	}
	return env, nil
}

// Message returns the backend supplied message carried by err, or fallback
// when there is none.
func Message(err error, fallback string) string {
	var f *Failure
	if errors.As(err, &f) && f.Kind == Application && f.Message != "" {
		return f.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Status == http.StatusUnauthorized
}

// IsTransport reports whether err never reached the backend.
func IsTransport(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == Transport
}
