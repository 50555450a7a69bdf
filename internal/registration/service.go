package registration

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"festgate/internal/events"
	"festgate/internal/tickets"
	"festgate/internal/upstream"
	"festgate/pkg/logger"
	"festgate/pkg/upi"
)

// ErrUpstream marks a transport-level failure toward the scripted backend.
// The pending ticket stays in the store so resubmitting does not lose the
// registration.
var ErrUpstream = errors.New("registration submission failed")

// Pixel size of the payment QR returned to the awaiting-payment step.
const paymentQRPixels = 220

// Service interface defines the contract for the registration flow
type Service interface {
	Register(ctx context.Context, sessionID string, event events.EventConfig, req RegisterRequest) (*RegisterResponse, error)
}

type service struct {
	store    *tickets.Store
	upstream upstream.Client
	log      *logger.Logger
	basePath string
}

// NewService creates a new registration service instance
func NewService(store *tickets.Store, upstreamClient upstream.Client, log *logger.Logger, basePath string) Service {
	return &service{
		store:    store,
		upstream: upstreamClient,
		log:      log,
		basePath: basePath,
	}
}

// Register runs the submit transition of the registration flow: mint a
// ticket ID, snapshot the form into a pending ticket, persist it for the
// session, forward it upstream, and hand back the payment intent.
func (s *service) Register(ctx context.Context, sessionID string, event events.EventConfig, req RegisterRequest) (*RegisterResponse, error) {
	ticket := s.buildPendingTicket(event, req)

	// Persist before the upstream call: a failed submission keeps the
	// ticket so the user retries without re-entering data.
	if err := s.store.Put(ctx, sessionID, ticket); err != nil {
		return nil, fmt.Errorf("persist pending ticket: %w", err)
	}

	if err := s.upstream.SubmitRegistration(ctx, ticket, event); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}

	intent := upi.Intent{
		PayeeVPA:  event.PayeeVPA,
		PayeeName: event.PayeeName,
		Amount:    event.RegFeeINR,
		Note:      event.EventName + " Registration",
		TxnRef:    ticket.TicketID,
	}
	link := upi.BuildLink(intent)

	// A payment QR that fails to render degrades to the deep link alone.
	var qrBase64 string
	if png, err := upi.QRPNG(link, paymentQRPixels); err == nil {
		qrBase64 = base64.StdEncoding.EncodeToString(png)
	} else {
		s.log.WithError(err).WarnContext(ctx, "payment QR rendering failed", "ticket_id", ticket.TicketID)
	}

	s.log.LogRegistrationSubmitted(ctx, ticket.TicketID, event.Slug, ticket.TeamName)

	return &RegisterResponse{
		TicketID:        ticket.TicketID,
		EventName:       event.EventName,
		EventDate:       event.EventDate,
		AmountINR:       event.RegFeeINR,
		UPILink:         link,
		UPIQRBase64:     qrBase64,
		PayeeVPA:        event.PayeeVPA,
		PayeeName:       event.PayeeName,
		ConfirmationURL: s.basePath + "/events/" + event.Slug + "/confirm",
	}, nil
}

// buildPendingTicket snapshots the validated form and event into the
// session-scoped record the confirmation flow will consume.
func (s *service) buildPendingTicket(event events.EventConfig, req RegisterRequest) *tickets.PendingTicket {
	ticket := &tickets.PendingTicket{
		TicketID:  tickets.MintTicketID(),
		EventSlug: event.Slug,
		EventName: event.EventName,
		EventDate: event.EventDate,
		TeamName:  req.TeamName,
		TeamSize:  req.TeamSize,
		Lead: tickets.Member{
			Name:    req.Lead.Name,
			USN:     req.Lead.USN,
			College: req.Lead.College,
			Contact: req.Lead.Contact,
			Email:   req.Lead.Email,
		},
		AmountINR: event.RegFeeINR,
		Status:    tickets.StatusAwaitingPayment,
		CreatedAt: time.Now().UTC(),
	}

	for _, m := range req.selectedMembers() {
		ticket.Members = append(ticket.Members, tickets.Member{
			Name:    m.Name,
			USN:     m.USN,
			College: m.College,
			Contact: m.Contact,
			Email:   m.Email,
		})
	}

	return ticket
}
