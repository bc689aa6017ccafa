package models

// Registration is a participant's paid (or pending) registration for an
// event, as returned by the payment backend.
type Registration struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"event_id"`
	Status    string `json:"status"`
	Amount    int    `json:"amount"`
	CreatedAt string `json:"created_at,omitempty"`
	PaidAt    string `json:"paid_at,omitempty"`
}

// Paid reports whether the registration payment has been confirmed
// server-side.
func (r *Registration) Paid() bool {
	return r.Status == "paid"
}
