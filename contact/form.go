package contact

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/phanxgames/landing"
)

// Element ids the form binds to.
const (
	FormID         = "contactForm"
	SubmitButtonID = "submitBtn"
	NotificationID = "form-notification"
)

// FieldIDs are the input element ids, in encoding order after the timestamp.
var FieldIDs = []string{"name", "email", "mobile", "service", "message"}

// User-facing notification texts.
const (
	MsgSent          = "Message sent successfully! We'll get back to you soon."
	MsgFailed        = "Failed to send message. Please try WhatsApp or email instead."
	MsgNotConfigured = "Form system not configured yet. Please contact via WhatsApp or email."

	labelIdle    = "Send Message"
	labelSending = "Sending..."
	classLoading = "loading"
)

// Kind is a notification kind; it is also the CSS class applied.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Dispatcher sends a submission. *Client implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, s Submission) Outcome
}

// Form drives the contact form elements: it validates, shows notifications,
// toggles the loading state and dispatches.
type Form struct {
	form         *landing.Element
	submit       *landing.Element
	notification *landing.Element
	fields       map[string]*landing.Element

	dispatcher Dispatcher
	configured bool
	sched      landing.Scheduler
	notifyFor  time.Duration
	hideTimer  landing.Timer

	// Now returns the submission time. Defaults to time.Now.
	Now func() time.Time
	// ErrorLog receives dispatch failures. Defaults to stderr.
	ErrorLog io.Writer
}

// BindForm wires the form found in doc. It returns false when d is nil or
// when the form, submit button or notification element is missing. Missing
// input fields read as empty.
func BindForm(doc *landing.Document, cfg Config, d Dispatcher, sched landing.Scheduler) (*Form, bool) {
	form := doc.ByID(FormID)
	submit := doc.ByID(SubmitButtonID)
	note := doc.ByID(NotificationID)
	if d == nil || form == nil || submit == nil || note == nil {
		return nil, false
	}
	f := &Form{
		form:         form,
		submit:       submit,
		notification: note,
		fields:       make(map[string]*landing.Element, len(FieldIDs)),
		dispatcher:   d,
		configured:   cfg.Configured(),
		sched:        sched,
		notifyFor:    cfg.NotifyFor,
		Now:          time.Now,
		ErrorLog:     os.Stderr,
	}
	for _, id := range FieldIDs {
		if el := doc.ByID(id); el != nil {
			f.fields[id] = el
		}
	}
	return f, true
}

// Collect reads the current field values into a Submission stamped with
// the current time.
func (f *Form) Collect() Submission {
	s := Submission{
		Timestamp: Timestamp(f.Now()),
		Name:      f.value("name"),
		Email:     f.value("email"),
		Mobile:    f.value("mobile"),
		Service:   f.value("service"),
		Message:   f.value("message"),
	}
	if s.Message == "" {
		s.Message = defaultMessage
	}
	return s
}

func (f *Form) value(id string) string {
	if el := f.fields[id]; el != nil {
		return el.Value
	}
	return ""
}

// Submit handles one submit of the form. Invalid input and an unconfigured
// endpoint are reported without any network call. Otherwise the submit
// button shows the loading state for the duration of the dispatch and is
// restored whatever the outcome. The returned Outcome is the dispatch
// result, or carries the validation or configuration error.
func (f *Form) Submit(ctx context.Context) Outcome {
	s := f.Collect()
	if err := Validate(s); err != nil {
		msg, _ := UserMessage(err)
		f.Notify(msg, KindError)
		return Outcome{Err: err}
	}
	if !f.configured {
		f.Notify(MsgNotConfigured, KindError)
		return Outcome{Err: ErrNotConfigured}
	}

	f.setLoading(true)
	defer f.setLoading(false)

	out := f.dispatcher.Dispatch(ctx, s)
	if out.Err != nil {
		_, _ = fmt.Fprintf(f.ErrorLog, "[contact] submit: %v\n", out.Err)
		f.Notify(MsgFailed, KindError)
		return out
	}
	f.Notify(MsgSent, KindSuccess)
	f.Reset()
	return out
}

// Reset clears every field.
func (f *Form) Reset() {
	for _, el := range f.fields {
		el.Value = ""
	}
}

// Loading reports whether a dispatch is in flight.
func (f *Form) Loading() bool {
	return f.submit.Disabled
}

func (f *Form) setLoading(on bool) {
	f.submit.Disabled = on
	if on {
		f.submit.AddClass(classLoading)
		f.submit.Text = labelSending
		return
	}
	f.submit.RemoveClass(classLoading)
	f.submit.Text = labelIdle
}

// Notify shows msg and schedules it to hide after the configured delay. A
// newer notification restarts the delay.
func (f *Form) Notify(msg string, kind Kind) {
	icon := "❌ "
	if kind == KindSuccess {
		icon = "✅ "
	}
	f.notification.Text = icon + msg
	f.notification.SetClassName("form-notification " + string(kind))

	if f.hideTimer != nil {
		f.hideTimer.Stop()
		f.hideTimer = nil
	}
	if f.sched != nil && f.notifyFor > 0 {
		f.hideTimer = f.sched.AfterFunc(f.notifyFor, f.Dismiss)
	}
}

// Dismiss hides the notification.
func (f *Form) Dismiss() {
	f.notification.AddClass(landing.ClassHidden)
}
