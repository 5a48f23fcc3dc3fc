package models

// Step identifies the active step of the booking form.
type Step int

const (
	StepDetails Step = iota + 1
	StepSlotPicker
	StepConfirmation
)

// FormState is the tag of the FormStatus union. Exactly one state is active
// at a time.
type FormState string

const (
	FormIdle    FormState = "idle"
	FormLoading FormState = "loading"
	FormSuccess FormState = "success"
	FormError   FormState = "error"
)

// FormStatus carries the current form state and its user-facing message.
type FormStatus struct {
	State   FormState `json:"state"`
	Message string    `json:"message"`
}

// FocusRegion names a scrollable region of the booking widget. The form
// state machine requests focus by logical name; the rendering surface decides
// what that means.
type FocusRegion string

const (
	FocusDetails      FocusRegion = "demo-form"
	FocusCalendar     FocusRegion = "demo-calendar"
	FocusConfirmation FocusRegion = "demo-confirmation"
)
