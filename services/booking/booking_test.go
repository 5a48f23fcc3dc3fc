package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qport/models"
	"qport/services/notify"
)

type mockMailer struct {
	sent      []notify.Message
	simulated bool
	failAt    int // 1-based index of the send that fails; 0 = never
}

func (m *mockMailer) Send(ctx context.Context, msg notify.Message) (bool, error) {
	m.sent = append(m.sent, msg)
	if m.failAt != 0 && len(m.sent) == m.failAt {
		return false, errors.New("smtp: connection refused")
	}
	return m.simulated, nil
}

type mockLeadRepo struct {
	created []models.DemoRequest
	err     error
}

func (r *mockLeadRepo) Create(ctx context.Context, lead models.DemoRequest) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.created = append(r.created, lead)
	return "lead-1", nil
}

func (r *mockLeadRepo) GetByID(ctx context.Context, id string) (*models.DemoRequest, error) {
	return nil, errors.New("not implemented")
}

func (r *mockLeadRepo) ListRecent(ctx context.Context, limit int64) ([]models.DemoRequest, error) {
	return nil, errors.New("not implemented")
}

func calendarRequest() models.BookingRequest {
	return models.BookingRequest{
		Name:         "Ada",
		Email:        "ada@example.com",
		Company:      "Analytical Engines Ltd",
		SelectedTime: "2025-03-10T14:00:00.000Z",
		Source:       "inline-booking",
	}
}

func TestBookDemoValidation(t *testing.T) {
	mailer := &mockMailer{}
	repo := &mockLeadRepo{}
	svc := &DefaultDemoBookingService{Leads: repo, Mailer: mailer}

	for _, req := range []models.BookingRequest{
		{},
		{Email: "ada@example.com"},
		{Name: "Ada"},
		{Name: "   ", Email: "ada@example.com"},
	} {
		resp, err := svc.BookDemo(context.Background(), req)
		require.Error(t, err)
		assert.Nil(t, resp)

		var be *BookingError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, CodeValidation, be.Code)
		assert.Equal(t, "Name and email are required.", be.Message)
	}

	assert.Empty(t, mailer.sent, "validation failure must have no side effects")
	assert.Empty(t, repo.created)
}

func TestBookDemoCalendarSendsTwoMessages(t *testing.T) {
	mailer := &mockMailer{simulated: true}
	repo := &mockLeadRepo{}
	svc := &DefaultDemoBookingService{Leads: repo, Mailer: mailer}

	resp, err := svc.BookDemo(context.Background(), calendarRequest())
	require.NoError(t, err)

	require.Len(t, mailer.sent, 2)
	// Customer confirmation first, internal notification second.
	assert.Equal(t, "ada@example.com", mailer.sent[0].To)
	assert.Equal(t, "Your Qport Demo is Confirmed", mailer.sent[0].Subject)
	assert.Equal(t, "demo@q-port.com", mailer.sent[1].To)
	assert.Contains(t, mailer.sent[1].Subject, "New Demo Booking: Ada")

	assert.True(t, resp.Simulated)
	assert.Equal(t, "Demo booked successfully! Check your inbox for confirmation.", resp.Message)

	require.Len(t, repo.created, 1)
	lead := repo.created[0]
	assert.Equal(t, "Ada", lead.Name)
	assert.Equal(t, "pending", lead.Status)
	require.NotNil(t, lead.SelectedTime)
	assert.Equal(t, "2025-03-10T14:00:00.000Z", *lead.SelectedTime)
	require.NotNil(t, lead.Company)
}

func TestBookDemoLinkRequestSendsOneMessage(t *testing.T) {
	mailer := &mockMailer{simulated: true}
	svc := &DefaultDemoBookingService{Mailer: mailer}

	resp, err := svc.BookDemo(context.Background(), models.BookingRequest{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].To)
	assert.Equal(t, "Book your Qport demo", mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].Text, "utm_campaign=book-demo")

	assert.True(t, resp.Simulated)
	assert.Equal(t, "Demo link sent! Check your inbox for scheduling details.", resp.Message)
}

func TestBookDemoPersistenceFailureIsSwallowed(t *testing.T) {
	mailer := &mockMailer{simulated: true}
	repo := &mockLeadRepo{err: errors.New("mongo: server selection timeout")}
	svc := &DefaultDemoBookingService{Leads: repo, Mailer: mailer}

	resp, err := svc.BookDemo(context.Background(), calendarRequest())
	require.NoError(t, err, "a failed lead write must never block the email flow")
	assert.Len(t, mailer.sent, 2)
	assert.True(t, resp.Simulated)
}

func TestBookDemoWithoutRepositorySkipsPersistence(t *testing.T) {
	mailer := &mockMailer{simulated: true}
	svc := &DefaultDemoBookingService{Mailer: mailer}

	_, err := svc.BookDemo(context.Background(), calendarRequest())
	require.NoError(t, err)
	assert.Len(t, mailer.sent, 2)
}

func TestBookDemoDispatchFailure(t *testing.T) {
	cases := []struct {
		name    string
		failAt  int
		req     models.BookingRequest
		message string
		sends   int
	}{
		{"customer send fails", 1, calendarRequest(), "Unable to confirm demo booking. Please try again later.", 1},
		{"internal send fails", 2, calendarRequest(), "Unable to confirm demo booking. Please try again later.", 2},
		{"link send fails", 1, models.BookingRequest{Name: "Ada", Email: "ada@example.com"}, "Unable to send demo link. Please try again later.", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := &mockMailer{failAt: tc.failAt}
			svc := &DefaultDemoBookingService{Mailer: mailer}

			resp, err := svc.BookDemo(context.Background(), tc.req)
			require.Error(t, err)
			assert.Nil(t, resp, "no partial success is reported")

			var be *BookingError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, CodeDispatch, be.Code)
			assert.Equal(t, tc.message, be.Message)
			assert.Len(t, mailer.sent, tc.sends)
		})
	}
}

func TestBookDemoRejectsMalformedSelectedTime(t *testing.T) {
	mailer := &mockMailer{}
	svc := &DefaultDemoBookingService{Mailer: mailer}

	_, err := svc.BookDemo(context.Background(), models.BookingRequest{
		Name:         "Ada",
		Email:        "ada@example.com",
		SelectedTime: "next tuesday",
	})

	var be *BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, CodeValidation, be.Code)
	assert.Empty(t, mailer.sent)
}
