package confirmation

import (
	"context"
	"errors"
	"fmt"

	"festgate/internal/events"
	"festgate/internal/tickets"
	"festgate/internal/upstream"
	"festgate/pkg/logger"
	"festgate/pkg/ticketdoc"
)

// ErrUpstream marks a transport-level failure toward the scripted backend.
// The pending ticket stays untouched so the user can retry confirmation.
var ErrUpstream = errors.New("confirmation submission failed")

// Service interface defines the contract for the confirmation flow
type Service interface {
	Confirm(ctx context.Context, sessionID string, event events.EventConfig, tailDigits string) (*ticketdoc.Document, error)
}

type service struct {
	store    *tickets.Store
	upstream upstream.Client
	log      *logger.Logger
}

// NewService creates a new confirmation service instance
func NewService(store *tickets.Store, upstreamClient upstream.Client, log *logger.Logger) Service {
	return &service{
		store:    store,
		upstream: upstreamClient,
		log:      log,
	}
}

// Confirm runs the submit transition of the confirmation flow: load the
// session's pending ticket, attach the transaction tail, forward it
// upstream, generate the ticket document and clear the session state.
// Returns tickets.ErrNotFound when the session has no pending ticket.
func (s *service) Confirm(ctx context.Context, sessionID string, event events.EventConfig, tailDigits string) (*ticketdoc.Document, error) {
	ticket, err := s.store.Get(ctx, sessionID)
	if err != nil {
		// ErrNotFound propagates as-is: the controller redirects the
		// user back to registration without any upstream call.
		return nil, err
	}

	ticket.TxnTail = tailDigits

	if err := s.upstream.SubmitTransactionTail(ctx, ticket.TicketID, tailDigits, event); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}

	ticket.Status = tickets.StatusConfirmed
	s.log.LogPaymentConfirmed(ctx, ticket.TicketID, event.Slug)

	doc, err := ticketdoc.Generate(ticket)
	if err != nil {
		return nil, fmt.Errorf("generate ticket document: %w", err)
	}

	// The session record is deleted only once a document exists; a failed
	// deletion is logged and left to the TTL.
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.WithError(err).WarnContext(ctx, "pending ticket cleanup failed", "ticket_id", ticket.TicketID)
	}

	s.log.LogTicketIssued(ctx, ticket.TicketID, doc.HasBarcode())
	return doc, nil
}
