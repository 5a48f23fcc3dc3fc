package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"qport/models"
)

// FocusPort receives scroll/focus requests from the form state machine. The
// rendering surface decides what focusing a region means; the machine only
// names regions.
type FocusPort interface {
	Focus(region models.FocusRegion)
}

// InitialData pre-fills the contact fields, e.g. for deep-linked visitors.
// When both name and email are present the session starts at the slot picker.
type InitialData struct {
	Name  string
	Email string
}

// FormSession is the multi-step demo-booking form state machine:
// Details -> SlotPicker -> Confirmation, cross-cut with a FormStatus. The
// slot set is generated once at construction and never refreshed during the
// session. A session belongs to a single widget instance and is not safe for
// concurrent use.
type FormSession struct {
	svc   DemoBookingService
	focus FocusPort

	step     models.Step
	status   models.FormStatus
	days     []models.DayBucket
	dayIndex int

	name    string
	email   string
	company string
	slot    *time.Time

	source string
}

// NewFormSession creates a session with slots generated from now.
func NewFormSession(now time.Time, svc DemoBookingService, focus FocusPort, initial InitialData) *FormSession {
	s := &FormSession{
		svc:    svc,
		focus:  focus,
		step:   models.StepDetails,
		status: models.FormStatus{State: models.FormIdle},
		days:   GenerateSlots(now),
		name:   initial.Name,
		email:  initial.Email,
		source: "inline-booking",
	}
	if initial.Name != "" && initial.Email != "" {
		s.step = models.StepSlotPicker
	}
	return s
}

// Input records an edit to a contact field. Any non-idle status is cleared
// back to idle so stale errors disappear as soon as the visitor types.
func (s *FormSession) Input(field, value string) {
	switch field {
	case "name":
		s.name = value
	case "email":
		s.email = value
	case "company":
		s.company = value
	}
	if s.status.State != models.FormIdle {
		s.status = models.FormStatus{State: models.FormIdle}
	}
}

// SubmitDetails advances from the details step to the slot picker when both
// name and email are filled in.
func (s *FormSession) SubmitDetails() {
	if strings.TrimSpace(s.name) == "" || strings.TrimSpace(s.email) == "" {
		s.status = models.FormStatus{
			State:   models.FormError,
			Message: "Please provide both your name and email.",
		}
		return
	}
	s.step = models.StepSlotPicker
	s.requestFocus(models.FocusCalendar)
}

// SelectDay changes which day's slots are presented. It never changes the
// step.
func (s *FormSession) SelectDay(index int) {
	if index < 0 || index >= len(s.days) {
		return
	}
	s.dayIndex = index
}

// SelectSlot records the chosen start instant, replacing any prior choice.
func (s *FormSession) SelectSlot(slot time.Time) {
	s.slot = &slot
}

// Confirm submits the booking. With no slot selected it fails locally
// without a network call; while a submission is in flight, repeat confirms
// are ignored.
func (s *FormSession) Confirm(ctx context.Context) {
	if s.status.State == models.FormLoading {
		return
	}
	if s.slot == nil {
		s.status = models.FormStatus{
			State:   models.FormError,
			Message: "Please select a time slot.",
		}
		return
	}

	s.status = models.FormStatus{State: models.FormLoading, Message: "Booking your demo..."}

	req := models.BookingRequest{
		Name:         s.name,
		Email:        s.email,
		Company:      s.company,
		SelectedTime: s.slot.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Source:       s.source,
	}

	resp, err := s.svc.BookDemo(ctx, req)
	if err != nil {
		s.status = models.FormStatus{
			State:   models.FormError,
			Message: userMessage(err),
		}
		return
	}

	s.status = models.FormStatus{State: models.FormSuccess, Message: resp.Message}
	s.step = models.StepConfirmation
	s.requestFocus(models.FocusConfirmation)
}

// Back returns to the details step. Entered data and the selected slot are
// preserved.
func (s *FormSession) Back() {
	s.step = models.StepDetails
	s.status = models.FormStatus{State: models.FormIdle}
	s.requestFocus(models.FocusDetails)
}

// StartOver resets the session for another booking, clearing all fields and
// the selected slot.
func (s *FormSession) StartOver() {
	s.step = models.StepDetails
	s.status = models.FormStatus{State: models.FormIdle}
	s.name = ""
	s.email = ""
	s.company = ""
	s.slot = nil
	s.requestFocus(models.FocusDetails)
}

func (s *FormSession) Step() models.Step         { return s.step }
func (s *FormSession) Status() models.FormStatus { return s.status }
func (s *FormSession) Days() []models.DayBucket  { return s.days }
func (s *FormSession) DayIndex() int             { return s.dayIndex }
func (s *FormSession) Name() string              { return s.name }
func (s *FormSession) Email() string             { return s.email }
func (s *FormSession) Company() string           { return s.company }

// SelectedSlot returns the chosen instant, or false when none is selected.
func (s *FormSession) SelectedSlot() (time.Time, bool) {
	if s.slot == nil {
		return time.Time{}, false
	}
	return *s.slot, true
}

func (s *FormSession) requestFocus(region models.FocusRegion) {
	if s.focus != nil {
		s.focus.Focus(region)
	}
}

// userMessage unwraps a BookingError so the widget shows the server-derived
// message without the internal code prefix.
func userMessage(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Message
	}
	return "Something went wrong. Please try again."
}
