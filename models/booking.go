package models

// BookingRequest is the payload submitted by the demo-booking widget. When
// SelectedTime is empty the request is an "email me a scheduling link"
// request rather than a calendar booking.
type BookingRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Company      string `json:"company,omitempty"`
	SelectedTime string `json:"selectedTime,omitempty"` // ISO-8601 instant
	Source       string `json:"source,omitempty"`       // originating UI surface, e.g. "inline-booking"
}

// BookingResponse is returned on a successful booking or link request.
// Simulated reports whether the confirmation email was actually delivered or
// only written to the simulated-transport log.
type BookingResponse struct {
	Message   string `json:"message"`
	Simulated bool   `json:"simulated"`
}
