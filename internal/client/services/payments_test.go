package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avryabov/eventhub-cli/internal/client/gateway"
)

func newPaymentService(t *testing.T, backend *fakeBackend) PaymentService {
	t.Helper()
	return NewPaymentService(gateway.New(testLogger(), 0), backend.srv.URL, testLogger())
}

func TestCreatePayment_ReturnsIntent(t *testing.T) {
	backend := newFakeBackend(t)
	backend.replies["create_payment"] = `{"registration_id":33,"payment_url":"https://pay.example/33","amount":1500}`

	svc := newPaymentService(t, backend)
	intent, err := svc.CreatePayment(context.Background(), 7, 42, "Джазовый вечер", 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(33), intent.RegistrationID)
	assert.Equal(t, "https://pay.example/33", intent.PaymentURL)
	assert.Equal(t, 1500, intent.Amount)

	require.Len(t, backend.requests, 1)
	req := backend.requests[0]
	assert.Equal(t, "create_payment", req["action"])
	assert.Equal(t, float64(7), req["user_id"])
	assert.Equal(t, float64(42), req["event_id"])
	assert.Equal(t, "Джазовый вечер", req["event_title"])
	assert.Equal(t, float64(1500), req["event_price"])
}

func TestCreatePayment_FreeEventEmptyURL(t *testing.T) {
	backend := newFakeBackend(t)
	backend.replies["create_payment"] = `{"registration_id":34,"payment_url":"","amount":0}`

	svc := newPaymentService(t, backend)
	intent, err := svc.CreatePayment(context.Background(), 7, 43, "Бесплатная лекция", 0)
	require.NoError(t, err)
	assert.Empty(t, intent.PaymentURL)
	assert.Zero(t, intent.Amount)
}

func TestCreatePayment_MissingRegistrationIDIsMalformed(t *testing.T) {
	backend := newFakeBackend(t)
	backend.replies["create_payment"] = `{"payment_url":"https://pay.example/x"}`

	svc := newPaymentService(t, backend)
	_, err := svc.CreatePayment(context.Background(), 7, 42, "x", 100)
	require.ErrorIs(t, err, gateway.ErrMalformedResponse)
}

func TestCheckPayment_ReportsStatus(t *testing.T) {
	backend := newFakeBackend(t)
	backend.replies["check_payment"] = `{"registration_id":33,"status":"paid","paid":true}`

	svc := newPaymentService(t, backend)
	status, err := svc.CheckPayment(context.Background(), 33)
	require.NoError(t, err)
	assert.True(t, status.Paid)
	assert.Equal(t, "paid", status.Status)

	// Backends that omit the id get it echoed back.
	backend.replies["check_payment"] = `{"status":"pending","paid":false}`
	status, err = svc.CheckPayment(context.Background(), 33)
	require.NoError(t, err)
	assert.Equal(t, int64(33), status.RegistrationID)
	assert.False(t, status.Paid)
}

func TestUserRegistrations(t *testing.T) {
	backend := newFakeBackend(t)
	backend.replies["get_user_registrations"] = `{"registrations":[
		{"id":33,"event_id":42,"status":"paid","amount":1500},
		{"id":34,"event_id":43,"status":"pending","amount":800}
	]}`

	svc := newPaymentService(t, backend)
	regs, err := svc.UserRegistrations(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.True(t, regs[0].Paid())
	assert.False(t, regs[1].Paid())

	require.Len(t, backend.requests, 1)
	assert.Equal(t, float64(7), backend.requests[0]["user_id"])
}
