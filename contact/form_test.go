package contact

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/landing"
)

// fakeDispatcher records submissions and checks the loading state while
// dispatching.
type fakeDispatcher struct {
	form     *Form
	err      error
	got      []Submission
	loadings []bool
	labels   []string
}

func (d *fakeDispatcher) Dispatch(_ context.Context, s Submission) Outcome {
	d.got = append(d.got, s)
	d.loadings = append(d.loadings, d.form.Loading())
	d.labels = append(d.labels, d.form.submit.Text)
	if d.err != nil {
		return Outcome{Err: d.err}
	}
	return Outcome{Dispatched: true}
}

func formPage(values map[string]string) *landing.Document {
	doc := landing.NewDocument()
	form := landing.NewElement(FormID)
	for _, id := range FieldIDs {
		f := landing.NewElement(id)
		f.Value = values[id]
		form.AppendChild(f)
	}
	submit := landing.NewElement(SubmitButtonID)
	submit.Text = "Send Message"
	form.AppendChild(submit)
	doc.Add(form, landing.NewElement(NotificationID, "form-notification", landing.ClassHidden))
	return doc
}

func validValues() map[string]string {
	return map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"mobile":  "98765 43210",
		"service": "Web Design",
		"message": "",
	}
}

type harness struct {
	doc   *landing.Document
	form  *Form
	disp  *fakeDispatcher
	clock *landing.FrameClock
	log   *bytes.Buffer
}

func newHarness(t *testing.T, values map[string]string, cfg Config) *harness {
	t.Helper()
	doc := formPage(values)
	clock := landing.NewFrameClock()
	disp := &fakeDispatcher{}
	f, ok := BindForm(doc, cfg, disp, clock)
	if !ok {
		t.Fatal("BindForm failed")
	}
	disp.form = f
	var log bytes.Buffer
	f.ErrorLog = &log
	f.Now = func() time.Time { return time.Date(2024, 1, 5, 9, 3, 7, 0, time.Local) }
	return &harness{doc: doc, form: f, disp: disp, clock: clock, log: &log}
}

var configured = Config{Endpoint: "https://forms.example/exec", NotifyFor: 8 * time.Second}

func TestBindFormMissing(t *testing.T) {
	if _, ok := BindForm(landing.NewDocument(), configured, &fakeDispatcher{}, nil); ok {
		t.Error("BindForm ok on an empty page")
	}
}

func TestBindFormNilDispatcher(t *testing.T) {
	if _, ok := BindForm(formPage(validValues()), configured, nil, nil); ok {
		t.Error("BindForm ok without a dispatcher")
	}
}

func TestSubmitSuccess(t *testing.T) {
	h := newHarness(t, validValues(), configured)

	out := h.form.Submit(context.Background())
	if !out.Dispatched || out.Err != nil {
		t.Fatalf("Outcome = %+v, want dispatched", out)
	}
	if len(h.disp.got) != 1 {
		t.Fatalf("dispatches = %d, want 1", len(h.disp.got))
	}
	s := h.disp.got[0]
	if s.Timestamp != "2024-01-05 09:03:07" || s.Name != "Ada" || s.Service != "Web Design" {
		t.Errorf("submission = %+v", s)
	}
	if s.Message != "No message provided" {
		t.Errorf("Message = %q, want default", s.Message)
	}
	if !h.disp.loadings[0] || h.disp.labels[0] != "Sending..." {
		t.Error("submit button not in loading state during dispatch")
	}

	submit := h.doc.ByID(SubmitButtonID)
	if submit.Disabled || submit.HasClass("loading") || submit.Text != "Send Message" {
		t.Error("loading state not restored")
	}
	note := h.doc.ByID(NotificationID)
	if note.Text != "✅ "+MsgSent || note.ClassName() != "form-notification success" {
		t.Errorf("notification = %q (%s)", note.Text, note.ClassName())
	}
	if h.doc.ByID("name").Value != "" {
		t.Error("fields not reset after success")
	}
}

func TestSubmitValidationFailure(t *testing.T) {
	values := validValues()
	values["email"] = "no-at-sign"
	h := newHarness(t, values, configured)

	out := h.form.Submit(context.Background())
	if out.Dispatched {
		t.Fatal("dispatched an invalid submission")
	}
	var ve *ValidationError
	if !errors.As(out.Err, &ve) {
		t.Fatalf("Err = %v, want *ValidationError", out.Err)
	}
	if len(h.disp.got) != 0 {
		t.Error("dispatcher called for invalid input")
	}
	note := h.doc.ByID(NotificationID)
	if note.Text != "❌ "+MsgEmail || !note.HasClass("error") || note.Hidden() {
		t.Errorf("notification = %q (%s)", note.Text, note.ClassName())
	}
	if h.doc.ByID("email").Value != "no-at-sign" {
		t.Error("fields reset after a validation failure")
	}
}

func TestSubmitNotConfigured(t *testing.T) {
	h := newHarness(t, validValues(), Config{NotifyFor: 8 * time.Second})

	out := h.form.Submit(context.Background())
	if !errors.Is(out.Err, ErrNotConfigured) {
		t.Fatalf("Err = %v, want ErrNotConfigured", out.Err)
	}
	if len(h.disp.got) != 0 {
		t.Error("dispatcher called without an endpoint")
	}
	if note := h.doc.ByID(NotificationID); note.Text != "❌ "+MsgNotConfigured {
		t.Errorf("notification = %q", note.Text)
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	h := newHarness(t, validValues(), configured)
	h.disp.err = errors.New("connection refused")

	out := h.form.Submit(context.Background())
	if out.Dispatched || out.Err == nil {
		t.Fatalf("Outcome = %+v, want failure", out)
	}
	note := h.doc.ByID(NotificationID)
	if note.Text != "❌ "+MsgFailed || !note.HasClass("error") {
		t.Errorf("notification = %q (%s)", note.Text, note.ClassName())
	}
	submit := h.doc.ByID(SubmitButtonID)
	if submit.Disabled || submit.Text != "Send Message" {
		t.Error("loading state not restored after failure")
	}
	if !strings.Contains(h.log.String(), "[contact] submit: connection refused") {
		t.Errorf("log = %q", h.log.String())
	}
	if h.doc.ByID("name").Value != "Ada" {
		t.Error("fields reset after failure")
	}
}

func TestNotificationAutoHide(t *testing.T) {
	h := newHarness(t, map[string]string{}, configured)
	note := h.doc.ByID(NotificationID)

	h.form.Submit(context.Background())
	if note.Hidden() {
		t.Fatal("notification hidden immediately")
	}
	h.clock.Advance(7 * time.Second)
	if note.Hidden() {
		t.Fatal("notification hidden before 8s")
	}

	// A newer notification restarts the delay.
	h.form.Notify("again", KindError)
	h.clock.Advance(7 * time.Second)
	if note.Hidden() {
		t.Fatal("newer notification hidden by the older timer")
	}
	h.clock.Advance(time.Second)
	if !note.Hidden() {
		t.Error("notification not hidden after 8s")
	}
}

func TestNotificationDismiss(t *testing.T) {
	h := newHarness(t, map[string]string{}, configured)
	h.form.Notify("hello", KindSuccess)
	h.form.Dismiss()
	if !h.doc.ByID(NotificationID).Hidden() {
		t.Error("Dismiss did not hide")
	}
}
