package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"quwastudio/internal/modules/booking"
	"quwastudio/internal/pkg/validator"
)

// ResetDelay matches the modal exit animation.
const ResetDelay = 300 * time.Millisecond

var (
	ErrSubmitInFlight = errors.New("submission already in flight")
	ErrNotEditing     = errors.New("modal is not accepting input")
)

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalEditing
	ModalSubmitting
	ModalSubmitted
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalEditing:
		return "editing"
	case ModalSubmitting:
		return "submitting"
	case ModalSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Submitter is the booking service as seen by the modal.
type Submitter interface {
	Submit(ctx context.Context, req booking.SubmitBookingRequest, meta booking.SubmitMeta) (*booking.SubmitResult, error)
}

// Timer is the part of *time.Timer the modal uses.
type Timer interface {
	Stop() bool
}

type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

type Toast struct {
	Kind    ToastKind
	Message string
}

// ModalView is a snapshot for rendering.
type ModalView struct {
	State  ModalState
	Fields booking.SubmitBookingRequest
	Errors map[string]string
	Result *booking.SubmitResult
}

func (v ModalView) Open() bool { return v.State != ModalClosed }

// Modal is the lead-capture dialog state machine.
type Modal struct {
	submitter Submitter
	afterFunc AfterFunc

	mu     sync.Mutex
	state  ModalState
	fields booking.SubmitBookingRequest
	errs   map[string]string
	result *booking.SubmitResult
	toasts []Toast

	// gen changes on every close so late submit results are dropped.
	gen     uint64
	pending Timer
}

type ModalOption func(*Modal)

func WithAfterFunc(f AfterFunc) ModalOption {
	return func(m *Modal) { m.afterFunc = f }
}

func NewModal(submitter Submitter, opts ...ModalOption) *Modal {
	m := &Modal{submitter: submitter, afterFunc: realAfterFunc}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open shows the modal with an empty form. A reset still waiting from the
// previous close is applied first.
func (m *Modal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
		m.resetLocked()
	}
	if m.state != ModalClosed {
		return
	}
	m.resetLocked()
	m.state = ModalEditing
}

// Fill replaces the form fields while editing. The submission key of the
// open form is kept unless the caller supplies one.
func (m *Modal) Fill(f booking.SubmitBookingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != ModalEditing {
		return ErrNotEditing
	}
	if f.SubmissionKey == "" {
		f.SubmissionKey = m.fields.SubmissionKey
	}
	m.fields = f
	return nil
}

// Submit sends the current form. The lock is not held across the call.
func (m *Modal) Submit(ctx context.Context, meta booking.SubmitMeta) error {
	m.mu.Lock()
	switch m.state {
	case ModalSubmitting:
		m.mu.Unlock()
		return ErrSubmitInFlight
	case ModalEditing:
	default:
		m.mu.Unlock()
		return ErrNotEditing
	}
	m.state = ModalSubmitting
	m.errs = nil
	gen := m.gen
	fields := m.fields
	m.mu.Unlock()

	res, err := m.submitter.Submit(ctx, fields, meta)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.toasts = append(m.toasts, Toast{Kind: ToastError, Message: failureMessage(err)})
	} else {
		m.toasts = append(m.toasts, Toast{Kind: ToastSuccess, Message: booking.MsgSubmitted})
	}

	if gen != m.gen {
		return err
	}

	if err != nil {
		m.state = ModalEditing
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			m.errs = make(map[string]string, len(verr.Fields))
			for field, tag := range verr.Fields {
				m.errs[field] = validator.Message(tag)
			}
		}
		return err
	}

	m.state = ModalSubmitted
	m.result = res
	return nil
}

// Close hides the modal now and clears the form after ResetDelay.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == ModalClosed {
		return
	}
	m.state = ModalClosed
	m.gen++

	if m.pending != nil {
		m.pending.Stop()
	}
	var t Timer
	t = m.afterFunc(ResetDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.pending != t {
			return
		}
		m.pending = nil
		m.resetLocked()
	})
	m.pending = t
}

// Toasts drains queued notifications.
func (m *Modal) Toasts() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.toasts
	m.toasts = nil
	return out
}

func (m *Modal) View() ModalView {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := ModalView{State: m.state, Fields: m.fields, Result: m.result}
	if len(m.errs) > 0 {
		v.Errors = make(map[string]string, len(m.errs))
		for k, msg := range m.errs {
			v.Errors[k] = msg
		}
	}
	return v
}

func (m *Modal) resetLocked() {
	m.fields = booking.SubmitBookingRequest{SubmissionKey: uuid.NewString()}
	m.errs = nil
	m.result = nil
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, booking.ErrValidation):
		return "Please check the highlighted fields."
	case errors.Is(err, booking.ErrSubmissionInFlight):
		return booking.MsgInFlight
	default:
		return booking.MsgFailed
	}
}
