package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vivek888gaya/portfolio/pkg/statusapi"
)

// FormStatus is the submission lifecycle state of the contact form.
type FormStatus string

const (
	StatusIdle       FormStatus = "idle"
	StatusSubmitting FormStatus = "submitting"
	StatusFailed     FormStatus = "failed"
)

// NoticeKind classifies the transient notification shown after a submit.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient user-visible notification.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// ErrSubmissionInFlight is returned when a submit arrives while an earlier
// one is still pending. No network call is made.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ValidationError blocks a submission before any network call is issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// Submitter is the outbound capability of the form controller. Implemented by
// *statusapi.Client; tests use a stub.
type Submitter interface {
	SubmitContact(ctx context.Context, payload statusapi.ContactPayload) (*statusapi.Receipt, error)
}

// FormSnapshot is a point-in-time copy of the form state for rendering.
type FormSnapshot struct {
	Name    string
	Email   string
	Message string
	Status  FormStatus
	Notice  *Notice
}

// FormController owns the contact form fields and the submission lifecycle.
// Fields mutate on every edit; a submit issues exactly one network call and,
// on success, resets the fields and returns to the editable state with a
// success notice. On failure the fields keep their values so the user can
// retry; the next edit clears the failed state. After Close, the result of an
// in-flight submission is discarded.
type FormController struct {
	submitter Submitter

	mu      sync.Mutex
	name    string
	email   string
	message string
	status  FormStatus
	notice  *Notice
	closed  bool
}

func NewFormController(submitter Submitter) *FormController {
	return &FormController{
		submitter: submitter,
		status:    StatusIdle,
	}
}

// SetName updates the name field. Any edit returns a failed form to the
// editable idle state.
func (f *FormController) SetName(v string) { f.edit(func() { f.name = v }) }

// SetEmail updates the email field.
func (f *FormController) SetEmail(v string) { f.edit(func() { f.email = v }) }

// SetMessage updates the message field.
func (f *FormController) SetMessage(v string) { f.edit(func() { f.message = v }) }

func (f *FormController) edit(apply func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apply()
	if f.status == StatusFailed {
		f.status = StatusIdle
		f.notice = nil
	}
}

// Snapshot returns a copy of the current form state.
func (f *FormController) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	var notice *Notice
	if f.notice != nil {
		n := *f.notice
		notice = &n
	}
	return FormSnapshot{
		Name:    f.name,
		Email:   f.email,
		Message: f.message,
		Status:  f.status,
		Notice:  notice,
	}
}

// Submit validates the fields and issues the single outbound call. It blocks
// the calling goroutine until the call resolves; the controller stays usable
// from other goroutines the whole time, with double submission rejected. The
// returned error is also reflected in the snapshot's notice, so render-layer
// callers may ignore it.
func (f *FormController) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return errors.New("form controller is closed")
	}
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if err := validate(f.name, f.email, f.message); err != nil {
		f.mu.Unlock()
		return err
	}
	payload := statusapi.ContactPayload{
		Name:    f.name,
		Email:   f.email,
		Message: f.message,
	}
	f.status = StatusSubmitting
	f.notice = nil
	f.mu.Unlock()

	_, err := f.submitter.SubmitContact(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		// The owning view is gone; discard the result.
		return nil
	}

	if err != nil {
		f.status = StatusFailed
		f.notice = &Notice{Kind: NoticeError, Message: failureMessage(err)}
		return err
	}

	// Succeeded: reset fields and return to the editable state immediately,
	// keeping only the transient notice.
	f.name, f.email, f.message = "", "", ""
	f.status = StatusIdle
	f.notice = &Notice{Kind: NoticeSuccess, Message: "Thank you for reaching out! I'll get back to you soon."}
	return nil
}

// Close marks the owning view as torn down. Any in-flight submission result
// is discarded.
func (f *FormController) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func validate(name, email, message string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Reason: "email is required"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Reason: "email must contain @"}
	}
	if strings.TrimSpace(message) == "" {
		return &ValidationError{Reason: "message is required"}
	}
	return nil
}

func failureMessage(err error) string {
	var serverErr *statusapi.ServerError
	if errors.As(err, &serverErr) && serverErr.Detail != "" {
		return fmt.Sprintf("Failed to send message: %s. Please try again later.", serverErr.Detail)
	}
	return "Failed to send message. Please try again later."
}
