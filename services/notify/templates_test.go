package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSchedulerURL(t *testing.T) {
	t.Run("appends UTM parameters", func(t *testing.T) {
		got := BuildSchedulerURL("https://calendly.com/qport/demo-30", "inline-booking")
		assert.Contains(t, got, "utm_source=inline-booking")
		assert.Contains(t, got, "utm_medium=email")
		assert.Contains(t, got, "utm_campaign=book-demo")
	})

	t.Run("defaults source to website", func(t *testing.T) {
		got := BuildSchedulerURL("https://calendly.com/qport/demo-30", "")
		assert.Contains(t, got, "utm_source=website")
	})

	t.Run("respects existing utm_source", func(t *testing.T) {
		base := "https://calendly.com/qport/demo-30?utm_source=partner"
		got := BuildSchedulerURL(base, "inline-booking")
		assert.Equal(t, base, got)
		assert.NotContains(t, got, "utm_campaign")
	})

	t.Run("returns unparseable base unchanged", func(t *testing.T) {
		base := "https://bad url/with spaces"
		assert.Equal(t, base, BuildSchedulerURL(base, "website"))
	})
}

func TestDemoTimeFormatting(t *testing.T) {
	demoTime := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday, March 10, 2025", FormatDemoDate(demoTime))
	assert.Equal(t, "2:00 PM UTC", FormatDemoTime(demoTime))
}

func TestCustomerConfirmation(t *testing.T) {
	demoTime := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	msg := CustomerConfirmation("Ada", "ada@example.com", "Analytical Engines Ltd", demoTime)

	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "Your Qport Demo is Confirmed", msg.Subject)
	assert.Contains(t, msg.Text, "Monday, March 10, 2025")
	assert.Contains(t, msg.Text, "2:00 PM UTC")
	assert.Contains(t, msg.Text, "Duration: 30 minutes")
	assert.Contains(t, msg.Text, "Ada (Analytical Engines Ltd)")
	assert.Contains(t, msg.HTML, "Demo Details")
}

func TestCustomerConfirmationWithoutCompany(t *testing.T) {
	msg := CustomerConfirmation("Ada", "ada@example.com", "", time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))
	assert.Contains(t, msg.Text, "Attendee: Ada\n")
	assert.NotContains(t, msg.Text, "()")
}

func TestInternalNotification(t *testing.T) {
	demoTime := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	msg := InternalNotification("Ada", "ada@example.com", "", "inline-booking", "demo@q-port.com", demoTime)

	assert.Equal(t, "demo@q-port.com", msg.To)
	assert.Contains(t, msg.Subject, "New Demo Booking: Ada - Monday, March 10, 2025 at 2:00 PM UTC")
	assert.Contains(t, msg.HTML, "Not provided")
	assert.Contains(t, msg.HTML, "inline-booking")
	assert.Contains(t, msg.Text, "ada@example.com")
}

func TestLinkRequest(t *testing.T) {
	msg := LinkRequest("Ada", "ada@example.com", "https://calendly.com/qport/demo-30?utm_source=website", "bcc@q-port.com")

	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "bcc@q-port.com", msg.Bcc)
	assert.Equal(t, "Book your Qport demo", msg.Subject)
	assert.Contains(t, msg.Text, "30-minute demo")
	assert.Contains(t, msg.HTML, `href="https://calendly.com/qport/demo-30?utm_source=website"`)
}
