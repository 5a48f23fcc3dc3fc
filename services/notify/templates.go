package notify

import (
	"fmt"
	"net/url"
	"time"
)

// Demo emails restate the booked date and time in a human-readable,
// timezone-tagged form.
const (
	demoDateLayout = "Monday, January 2, 2006"
	demoTimeLayout = "3:04 PM MST"
)

// FormatDemoDate renders the demo date, e.g. "Monday, March 10, 2025".
func FormatDemoDate(t time.Time) string {
	return t.Format(demoDateLayout)
}

// FormatDemoTime renders the demo start time with its timezone abbreviation,
// e.g. "2:00 PM PST".
func FormatDemoTime(t time.Time) string {
	return t.Format(demoTimeLayout)
}

// BuildSchedulerURL appends UTM parameters to the scheduling base URL unless
// it already carries a utm_source. An unparseable base URL is returned
// unchanged.
func BuildSchedulerURL(base, source string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	if !q.Has("utm_source") {
		if source == "" {
			source = "website"
		}
		q.Set("utm_source", source)
		q.Set("utm_medium", "email")
		q.Set("utm_campaign", "book-demo")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func attendee(name, company string) string {
	if company != "" {
		return fmt.Sprintf("%s (%s)", name, company)
	}
	return name
}

// CustomerConfirmation composes the confirmation sent to the customer after
// a calendar booking.
func CustomerConfirmation(name, email, company string, demoTime time.Time) Message {
	formattedDate := FormatDemoDate(demoTime)
	formattedTime := FormatDemoTime(demoTime)

	text := fmt.Sprintf(`Your Qport Demo is Confirmed!

Hi %s,

Thank you for booking a demo with Qport. We're excited to show you how our heavy cargo route intelligence platform can streamline your logistics operations.

Demo Details:
Date: %s
Time: %s
Duration: 30 minutes
Attendee: %s

What to expect:
- Live demonstration of Qport's route recording and following features
- Discussion of your specific heavy cargo challenges
- Q&A session tailored to your logistics needs

A calendar invite with meeting details will be sent separately. If you need to reschedule, please reply to this email.

We're looking forward to speaking with you!

- The Qport Team`, name, formattedDate, formattedTime, attendee(name, company))

	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #0B5CF5;">Your Qport Demo is Confirmed!</h2>
      <p>Hi %s,</p>
      <p>Thank you for booking a demo with Qport. We're excited to show you how our heavy cargo route intelligence platform can streamline your logistics operations.</p>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0; color: #333;">Demo Details</h3>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Time:</strong> %s</p>
        <p><strong>Duration:</strong> 30 minutes</p>
        <p><strong>Attendee:</strong> %s</p>
      </div>

      <p><strong>What to expect:</strong></p>
      <ul>
        <li>Live demonstration of Qport's route recording and following features</li>
        <li>Discussion of your specific heavy cargo challenges</li>
        <li>Q&amp;A session tailored to your logistics needs</li>
      </ul>

      <p>A calendar invite with meeting details will be sent separately. If you need to reschedule, please reply to this email.</p>

      <p>We're looking forward to speaking with you!</p>
      <p>- The Qport Team</p>
    </div>`, name, formattedDate, formattedTime, attendee(name, company))

	return Message{
		To:      email,
		Subject: "Your Qport Demo is Confirmed",
		Text:    text,
		HTML:    html,
	}
}

// InternalNotification composes the booking alert sent to the internal demo
// mailbox.
func InternalNotification(name, email, company, source, internalTo string, demoTime time.Time) Message {
	formattedDate := FormatDemoDate(demoTime)
	formattedTime := FormatDemoTime(demoTime)

	companyLine := company
	if companyLine == "" {
		companyLine = "Not provided"
	}

	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #0B5CF5;">New Demo Booking - Qport</h2>
      <p>A new demo has been scheduled through the website.</p>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="margin-top: 0; color: #333;">Booking Details</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Company:</strong> %s</p>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Time:</strong> %s</p>
        <p><strong>Source:</strong> %s</p>
      </div>

      <p><strong>Action Required:</strong></p>
      <ul>
        <li>Send calendar invite to %s</li>
        <li>Prepare demo materials</li>
        <li>Review customer's potential use case</li>
      </ul>
    </div>`, name, email, companyLine, formattedDate, formattedTime, source, email)

	return Message{
		To:      internalTo,
		Subject: fmt.Sprintf("New Demo Booking: %s - %s at %s", name, formattedDate, formattedTime),
		Text:    fmt.Sprintf("New demo booking from %s (%s) scheduled for %s at %s", name, email, formattedDate, formattedTime),
		HTML:    html,
	}
}

// LinkRequest composes the scheduling-link email for requests submitted
// without a selected time.
func LinkRequest(name, email, schedulerURL, bcc string) Message {
	text := fmt.Sprintf("Hi %s,\n\nThanks for your interest in Qport. Choose a time for your 30-minute demo here: %s\n\nWe're looking forward to speaking with you!\n\n- The Qport Team", name, schedulerURL)

	html := fmt.Sprintf(`
    <p>Hi %s,</p>
    <p>Thanks for your interest in Qport. You can choose a time for your 30-minute demo using the link below:</p>
    <p><a href="%s" target="_blank" rel="noreferrer">Book your demo</a></p>
    <p>If the link doesn't automatically open, copy and paste this URL into your browser:<br>%s</p>
    <p>We're looking forward to speaking with you!</p>
    <p>- The Qport Team</p>`, name, schedulerURL, schedulerURL)

	return Message{
		To:      email,
		Bcc:     bcc,
		Subject: "Book your Qport demo",
		Text:    text,
		HTML:    html,
	}
}
