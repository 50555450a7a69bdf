// Package upstream talks to the external scripted backend that does the
// actual registration bookkeeping. The backend is a script-hosted web app:
// it reads the raw request body, checks the shared secret inside it and
// appends a row. This client mirrors that contract exactly.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"festgate/internal/events"
	"festgate/internal/tickets"
	"festgate/pkg/logger"
)

// The scripted backend reads the raw body, so a text content type keeps
// browser-originated calls out of CORS preflight and the script's parser
// happy at the same time.
const contentType = "text/plain;charset=utf-8"

// Client submits registrations and payment confirmations to the scripted
// backend. Exactly one attempt per call, no retry; the caller decides how
// to surface a failure.
type Client interface {
	SubmitRegistration(ctx context.Context, ticket *tickets.PendingTicket, event events.EventConfig) error
	SubmitTransactionTail(ctx context.Context, ticketID, tailDigits string, event events.EventConfig) error
}

type client struct {
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates an upstream client. timeout bounds each request so a
// hung scripted backend cannot wedge a flow.
func NewClient(timeout time.Duration, log *logger.Logger) Client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// registrationPayload is the scripted backend's row format. Member fields
// are always present, empty string when the team does not fill the slot.
type registrationPayload struct {
	TicketID string `json:"ticketId"`
	TeamName string `json:"teamName"`
	TeamSize string `json:"teamSize"`
	LeadName string `json:"leadName"`
	LeadUSN  string `json:"leadUSN"`
	College  string `json:"college"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`

	Member2Name    string `json:"member2Name"`
	Member2USN     string `json:"member2USN"`
	Member2College string `json:"member2College"`
	Member2Contact string `json:"member2Contact"`
	Member2Email   string `json:"member2Email"`

	Member3Name    string `json:"member3Name"`
	Member3USN     string `json:"member3USN"`
	Member3College string `json:"member3College"`
	Member3Contact string `json:"member3Contact"`
	Member3Email   string `json:"member3Email"`

	// Shared secret travels in the body; the script checks body.apiKey
	APIKey string `json:"apiKey"`
}

type confirmationPayload struct {
	TicketID   string `json:"ticketId"`
	LastDigits string `json:"lastDigits"`
	APIKey     string `json:"apiKey"`
}

// SubmitRegistration forwards a freshly minted pending ticket.
func (c *client) SubmitRegistration(ctx context.Context, ticket *tickets.PendingTicket, event events.EventConfig) error {
	payload := registrationPayload{
		TicketID: ticket.TicketID,
		TeamName: ticket.TeamName,
		TeamSize: strconv.Itoa(ticket.TeamSize),
		LeadName: ticket.Lead.Name,
		LeadUSN:  ticket.Lead.USN,
		College:  ticket.Lead.College,
		Contact:  ticket.Lead.Contact,
		Email:    ticket.Lead.Email,
		APIKey:   event.APIKey,
	}

	if len(ticket.Members) > 0 {
		payload.Member2Name = ticket.Members[0].Name
		payload.Member2USN = ticket.Members[0].USN
		payload.Member2College = ticket.Members[0].College
		payload.Member2Contact = ticket.Members[0].Contact
		payload.Member2Email = ticket.Members[0].Email
	}
	if len(ticket.Members) > 1 {
		payload.Member3Name = ticket.Members[1].Name
		payload.Member3USN = ticket.Members[1].USN
		payload.Member3College = ticket.Members[1].College
		payload.Member3Contact = ticket.Members[1].Contact
		payload.Member3Email = ticket.Members[1].Email
	}

	return c.post(ctx, "registration", event.EndpointURL, payload)
}

// SubmitTransactionTail associates the user-asserted transaction tail with
// a ticket for the backend's own reconciliation.
func (c *client) SubmitTransactionTail(ctx context.Context, ticketID, tailDigits string, event events.EventConfig) error {
	payload := confirmationPayload{
		TicketID:   ticketID,
		LastDigits: tailDigits,
		APIKey:     event.APIKey,
	}

	return c.post(ctx, "confirmation", event.EndpointURL, payload)
}

// post issues the single attempt. Success is transport-level success only:
// the response body and status are not inspected, so an application-level
// rejection by the script (bad shared secret) is indistinguishable from
// acceptance. That matches the backend's contract, which always answers 200.
func (c *client) post(ctx context.Context, action, endpointURL string, payload interface{}) error {
	start := time.Now()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	c.log.LogUpstreamCall(ctx, action, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("submit %s: %w", action, err)
	}
	defer resp.Body.Close()

	return nil
}
