package booking

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrStoreUnavailable   = errors.New("booking store unavailable")
	ErrNotFound           = errors.New("booking not found")
)

// Visitor-facing texts, also used as toast messages.
const (
	MsgSubmitted = "Booking request submitted successfully!"
	MsgFailed    = "Failed to submit booking. Please try again."
	MsgInFlight  = "Your booking is already being submitted."
	MsgTooLarge  = "Your request is too large."
)

// MaxBodyBytes caps a submission body read from the wire.
const MaxBodyBytes = 64 << 10

// LimitBody wraps the request body so binding stops after MaxBodyBytes.
func LimitBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
}

// IsBodyTooLarge reports whether a bind failed on the MaxBodyBytes cap.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// ValidationError carries field name -> failed rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name, tag := range e.Fields {
		names = append(names, fmt.Sprintf("%s:%s", name, tag))
	}
	sort.Strings(names)
	return "validation error: " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
