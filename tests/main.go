// Standalone driver that walks a full widget session against a running
// server: details step, slot selection, confirmation. Point it at a server
// started with EMAIL_PROVIDER=simulated to exercise the whole flow without
// sending real mail.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"qport/models"
	"qport/services/booking"
)

type httpBookingClient struct {
	baseURL string
	client  *http.Client
}

func (c *httpBookingClient) BookDemo(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/book-demo", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&body)
		if res.StatusCode >= 500 {
			return nil, booking.NewDispatchError(body.Error)
		}
		return nil, booking.NewValidationError(body.Error)
	}

	var resp models.BookingResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type logFocus struct{}

func (logFocus) Focus(region models.FocusRegion) {
	fmt.Printf("  [focus] %s\n", region)
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	flag.Parse()

	client := &httpBookingClient{
		baseURL: *baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}

	session := booking.NewFormSession(time.Now(), client, logFocus{}, booking.InitialData{})
	fmt.Printf("Session started at step %d with %d bookable days\n", session.Step(), len(session.Days()))

	session.Input("name", "Ada Lovelace")
	session.Input("email", "ada@example.com")
	session.Input("company", "Analytical Engines Ltd")
	session.SubmitDetails()
	if session.Step() != models.StepSlotPicker {
		log.Fatalf("details step rejected: %+v", session.Status())
	}

	days := session.Days()
	if len(days) == 0 {
		log.Fatal("no bookable days generated")
	}
	session.SelectDay(0)
	slot := days[0].Slots[0]
	session.SelectSlot(slot)
	fmt.Printf("Selected %s on %s\n", slot.Format("3:04 PM"), days[0].Date)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	session.Confirm(ctx)

	status := session.Status()
	if status.State != models.FormSuccess {
		log.Fatalf("booking failed: %s", status.Message)
	}
	fmt.Printf("Booked: %s (step %d)\n", status.Message, session.Step())

	session.StartOver()
	fmt.Printf("Reset to step %d, name=%q\n", session.Step(), session.Name())
}
