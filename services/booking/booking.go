package booking

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"qport/config"
	"qport/models"
	"qport/services/notify"
	"qport/utils"
)

// defaultInternalMailbox receives internal booking notifications when
// EMAIL_BCC is not configured.
const defaultInternalMailbox = "demo@q-port.com"

// BookDemo validates the request, stores the lead best-effort, and
// dispatches the notification emails. A calendar booking (selectedTime
// present) sends the customer confirmation first and the internal
// notification second; a link request sends a single scheduling-link email.
func (s *DefaultDemoBookingService) BookDemo(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, NewValidationError("Name and email are required.")
	}

	source := req.Source
	if source == "" {
		source = "website"
	}

	var demoTime time.Time
	if req.SelectedTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.SelectedTime)
		if err != nil {
			return nil, NewValidationError("Invalid selectedTime format.")
		}
		demoTime = parsed.In(time.Local)
	}

	// Lead persistence is best effort: failures are logged and swallowed so
	// the email flow always proceeds.
	s.saveLead(ctx, name, email, req.Company, source, req.SelectedTime)

	if req.SelectedTime != "" {
		return s.bookCalendarDemo(ctx, name, email, req.Company, source, demoTime)
	}
	return s.sendSchedulingLink(ctx, name, email, source)
}

// saveLead stores the demo request when a repository is configured.
func (s *DefaultDemoBookingService) saveLead(ctx context.Context, name, email, company, source, selectedTime string) {
	if s.Leads == nil {
		return
	}

	lead := models.DemoRequest{
		Name:      name,
		Email:     email,
		Source:    source,
		CreatedAt: time.Now(),
		Status:    "pending",
	}
	if company != "" {
		lead.Company = &company
	}
	if selectedTime != "" {
		lead.SelectedTime = &selectedTime
	}

	if _, err := s.Leads.Create(ctx, lead); err != nil {
		utils.GetLogger().Error("Failed to save demo request lead",
			zap.String("email", email),
			zap.Error(err),
		)
	}
}

func (s *DefaultDemoBookingService) bookCalendarDemo(ctx context.Context, name, email, company, source string, demoTime time.Time) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	customer := notify.CustomerConfirmation(name, email, company, demoTime)
	simulated, err := s.Mailer.Send(ctx, customer)
	if err != nil {
		logger.Error("Failed to send demo confirmation email", zap.String("to", email), zap.Error(err))
		return nil, NewDispatchError("Unable to confirm demo booking. Please try again later.")
	}

	internalTo := config.AppConfig.EmailBCC
	if internalTo == "" {
		internalTo = defaultInternalMailbox
	}
	internal := notify.InternalNotification(name, email, company, source, internalTo, demoTime)
	if _, err := s.Mailer.Send(ctx, internal); err != nil {
		logger.Error("Failed to send internal booking notification", zap.String("to", internalTo), zap.Error(err))
		return nil, NewDispatchError("Unable to confirm demo booking. Please try again later.")
	}

	return &models.BookingResponse{
		Message:   "Demo booked successfully! Check your inbox for confirmation.",
		Simulated: simulated,
	}, nil
}

func (s *DefaultDemoBookingService) sendSchedulingLink(ctx context.Context, name, email, source string) (*models.BookingResponse, error) {
	schedulerURL := notify.BuildSchedulerURL(config.AppConfig.SchedulerURL, source)

	msg := notify.LinkRequest(name, email, schedulerURL, config.AppConfig.EmailBCC)
	simulated, err := s.Mailer.Send(ctx, msg)
	if err != nil {
		utils.GetLogger().Error("Failed to send demo link email", zap.String("to", email), zap.Error(err))
		return nil, NewDispatchError("Unable to send demo link. Please try again later.")
	}

	return &models.BookingResponse{
		Message:   "Demo link sent! Check your inbox for scheduling details.",
		Simulated: simulated,
	}, nil
}
