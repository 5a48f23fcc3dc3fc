package booking

import (
	"context"

	leadsRepo "qport/database/repository/leads"
	"qport/models"
	"qport/services/notify"
)

// DemoBookingService handles submitted demo requests: validation,
// best-effort lead persistence, and notification dispatch.
type DemoBookingService interface {
	BookDemo(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
}

// DefaultDemoBookingService implements DemoBookingService. Leads may be nil
// when no database is configured; persistence is then skipped silently.
type DefaultDemoBookingService struct {
	Leads  leadsRepo.LeadRepository
	Mailer notify.Mailer
}
