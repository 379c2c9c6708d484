package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionNotFound is returned by the session store for unknown IDs.
var ErrSessionNotFound = errors.New("session not found")

// ConfigError signals a missing or unusable configuration value. It is
// checked lazily at the first generation call, not at startup.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// ErrMissingAPIKey is reported before any network attempt when no Gemini
// credential is configured.
var ErrMissingAPIKey = &ConfigError{
	Reason: "GEMINI_API_KEY is not set. Please check your environment or .env file",
}

// ValidationError carries every missing required field so the user gets a
// single consolidated message per submission.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"%s must be provided for ATS optimization",
		strings.Join(e.Missing, ", "),
	)
}

// TransportError wraps a fault raised by the generation backend or the
// transport underneath it.
type TransportError struct {
	Category string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gemini api call error (%s): %v", e.Category, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EmptyOutputError signals that the backend returned without any text,
// either because of a safety/policy block or for no stated reason.
type EmptyOutputError struct {
	Blocked bool
	Reason  string
}

func (e *EmptyOutputError) Error() string {
	if e.Blocked {
		return fmt.Sprintf("no text generated: output blocked due to safety settings or policy violation (%s)", e.Reason)
	}
	return "no text generated: the model returned an empty response"
}

// MalformedOutputError signals that a structured response could not be
// decoded. The raw payload is preserved for diagnostics.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("error decoding JSON output from the model: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
