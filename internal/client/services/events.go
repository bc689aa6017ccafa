package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/avryabov/eventhub-cli/internal/client/gateway"
	"github.com/avryabov/eventhub-cli/internal/client/models"
	"github.com/avryabov/eventhub-cli/internal/logging"
)

// CreateEventForm carries the fields of the event creation form; it is the
// create_event wire payload minus the action name.
type CreateEventForm struct {
	OrganizerID      int64   `json:"organizer_id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	City             string  `json:"city"`
	EventDate        string  `json:"event_date"`
	EventTime        string  `json:"event_time"`
	ParticipantPrice int     `json:"participant_price"`
	MaxParticipants  int     `json:"max_participants"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// Validate checks the fields the form step requires before submission.
func (f *CreateEventForm) Validate() error {
	if err := requireFields(
		"title", f.Title,
		"description", f.Description,
		"category", f.Category,
		"city", f.City,
		"event_date", f.EventDate,
		"event_time", f.EventTime,
	); err != nil {
		return err
	}
	if f.MaxParticipants < 1 {
		return fmt.Errorf("max_participants must be at least 1")
	}
	return nil
}

// PublicationInvoice is the pay_publication success payload: the pending
// publication record and the payment link the organizer must follow.
type PublicationInvoice struct {
	PublicationID int64  `json:"publication_id"`
	PaymentID     string `json:"payment_id"`
	PaymentURL    string `json:"payment_url"`
	Amount        int    `json:"amount"`
}

// EventService covers the catalog listing and the event publication flow.
type EventService interface {
	List(ctx context.Context) ([]models.Event, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]models.Event, error)
	Create(ctx context.Context, form CreateEventForm) (int64, error)
	PayPublication(ctx context.Context, eventID, organizerID int64) (*PublicationInvoice, error)
	ConfirmPublication(ctx context.Context, publicationID int64) error
}

type eventService struct {
	gw       *gateway.Client
	endpoint string
	logger   logging.Logger
}

func NewEventService(gw *gateway.Client, endpoint string, logger logging.Logger) EventService {
	return &eventService{gw: gw, endpoint: endpoint, logger: logger}
}

func (s *eventService) list(ctx context.Context, query url.Values) ([]models.Event, error) {
	endpoint := s.endpoint
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	raw, err := s.gw.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Events []models.Event `json:"events"`
	}
	if err := gateway.Decode(raw, &resp); err != nil {
		return nil, err
	}
	for i := range resp.Events {
		if err := resp.Events[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", gateway.ErrMalformedResponse, err)
		}
	}
	return resp.Events, nil
}

// List fetches the published events for the catalog.
func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	return s.list(ctx, nil)
}

// ListByOrganizer fetches the organizer's own events, published or not.
func (s *eventService) ListByOrganizer(ctx context.Context, organizerID int64) ([]models.Event, error) {
	q := url.Values{}
	q.Set("organizer_id", strconv.FormatInt(organizerID, 10))
	return s.list(ctx, q)
}

// Create submits the event and returns the new event id. The event stays
// unpublished until the publication fee flow completes.
func (s *eventService) Create(ctx context.Context, form CreateEventForm) (int64, error) {
	if err := form.Validate(); err != nil {
		return 0, err
	}

	raw, err := s.gw.Post(ctx, s.endpoint, "create_event", form)
	if err != nil {
		return 0, err
	}

	var resp struct {
		EventID int64 `json:"event_id"`
	}
	if err := gateway.Decode(raw, &resp); err != nil {
		return 0, err
	}
	if resp.EventID <= 0 {
		return 0, fmt.Errorf("%w: missing event_id", gateway.ErrMalformedResponse)
	}

	s.logger.Info(ctx, "event created", "event_id", resp.EventID)
	return resp.EventID, nil
}

// PayPublication opens a publication-fee payment for the event and returns
// the invoice. Falls back to the event id as publication id when the
// backend omits one.
func (s *eventService) PayPublication(ctx context.Context, eventID, organizerID int64) (*PublicationInvoice, error) {
	raw, err := s.gw.Post(ctx, s.endpoint, "pay_publication", map[string]int64{
		"event_id":     eventID,
		"organizer_id": organizerID,
	})
	if err != nil {
		return nil, err
	}

	var invoice PublicationInvoice
	if err := gateway.Decode(raw, &invoice); err != nil {
		return nil, err
	}
	if invoice.PaymentURL == "" {
		return nil, fmt.Errorf("%w: missing payment_url", gateway.ErrMalformedResponse)
	}
	if invoice.PublicationID == 0 {
		invoice.PublicationID = eventID
	}
	return &invoice, nil
}

// ConfirmPublication marks the publication fee as paid. Manual, trust-based:
// the backend performs no real payment verification here.
func (s *eventService) ConfirmPublication(ctx context.Context, publicationID int64) error {
	_, err := s.gw.Post(ctx, s.endpoint, "confirm_publication", map[string]int64{
		"publication_id": publicationID,
	})
	return err
}
