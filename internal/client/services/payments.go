package services

import (
	"context"
	"fmt"

	"github.com/avryabov/eventhub-cli/internal/client/gateway"
	"github.com/avryabov/eventhub-cli/internal/client/models"
	"github.com/avryabov/eventhub-cli/internal/logging"
)

// PaymentIntent is the create_payment success payload: a pending
// registration plus the link where the participant pays.
type PaymentIntent struct {
	RegistrationID int64  `json:"registration_id"`
	PaymentURL     string `json:"payment_url"`
	Amount         int    `json:"amount"`
}

// PaymentStatus is the check_payment result for a single registration.
type PaymentStatus struct {
	RegistrationID int64  `json:"registration_id"`
	Status         string `json:"status"`
	Paid           bool   `json:"paid"`
}

// PaymentService drives participant registration payments.
type PaymentService interface {
	CreatePayment(ctx context.Context, userID, eventID int64, eventTitle string, eventPrice int) (*PaymentIntent, error)
	CheckPayment(ctx context.Context, registrationID int64) (*PaymentStatus, error)
	UserRegistrations(ctx context.Context, userID int64) ([]models.Registration, error)
}

type paymentService struct {
	gw       *gateway.Client
	endpoint string
	logger   logging.Logger
}

func NewPaymentService(gw *gateway.Client, endpoint string, logger logging.Logger) PaymentService {
	return &paymentService{gw: gw, endpoint: endpoint, logger: logger}
}

// CreatePayment registers the user for the event and returns the payment
// intent. Free events still go through here: the backend marks a zero-amount
// registration paid immediately and returns an empty payment_url.
func (s *paymentService) CreatePayment(ctx context.Context, userID, eventID int64, eventTitle string, eventPrice int) (*PaymentIntent, error) {
	raw, err := s.gw.Post(ctx, s.endpoint, "create_payment", map[string]any{
		"user_id":     userID,
		"event_id":    eventID,
		"event_title": eventTitle,
		"event_price": eventPrice,
	})
	if err != nil {
		return nil, err
	}

	var intent PaymentIntent
	if err := gateway.Decode(raw, &intent); err != nil {
		return nil, err
	}
	if intent.RegistrationID <= 0 {
		return nil, fmt.Errorf("%w: missing registration_id", gateway.ErrMalformedResponse)
	}

	s.logger.Info(ctx, "registration created",
		"registration_id", intent.RegistrationID, "event_id", eventID, "amount", intent.Amount)
	return &intent, nil
}

// CheckPayment asks the backend for the current status of a registration
// payment. Used only when confirmation polling is enabled in the config.
func (s *paymentService) CheckPayment(ctx context.Context, registrationID int64) (*PaymentStatus, error) {
	raw, err := s.gw.Post(ctx, s.endpoint, "check_payment", map[string]int64{
		"registration_id": registrationID,
	})
	if err != nil {
		return nil, err
	}

	var status PaymentStatus
	if err := gateway.Decode(raw, &status); err != nil {
		return nil, err
	}
	if status.RegistrationID == 0 {
		status.RegistrationID = registrationID
	}
	return &status, nil
}

// UserRegistrations lists the user's registrations, paid and pending.
func (s *paymentService) UserRegistrations(ctx context.Context, userID int64) ([]models.Registration, error) {
	raw, err := s.gw.Post(ctx, s.endpoint, "get_user_registrations", map[string]int64{
		"user_id": userID,
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Registrations []models.Registration `json:"registrations"`
	}
	if err := gateway.Decode(raw, &resp); err != nil {
		return nil, err
	}
	return resp.Registrations, nil
}
