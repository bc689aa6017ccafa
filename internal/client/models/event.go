package models

import "fmt"

// EventCategory is one of the fixed set of catalog categories.
type EventCategory string

const (
	CategoryConcert     EventCategory = "concert"
	CategoryMasterclass EventCategory = "masterclass"
	CategorySport       EventCategory = "sport"
	CategoryParty       EventCategory = "party"
	CategoryLecture     EventCategory = "lecture"
)

// Event is a catalog entry. Remote events come from the events backend
// listing; built-in events are compiled into the client.
type Event struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Category         EventCategory `json:"category"`
	City             string        `json:"city"`
	Date             string        `json:"date"`
	Time             string        `json:"time"`
	ParticipantPrice int           `json:"participant_price"`
	MaxParticipants  int           `json:"max_participants"`
	Attendees        int           `json:"attendees,omitempty"`
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Status           string        `json:"status,omitempty"`
	OrganizerName    string        `json:"organizer_name,omitempty"`
}

// PriceLabel renders the participant price for display.
func (e *Event) PriceLabel() string {
	if e.ParticipantPrice <= 0 {
		return "Бесплатно"
	}
	return fmt.Sprintf("%d ₽", e.ParticipantPrice)
}

// Validate checks the fields a listed event must carry.
func (e *Event) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("event: missing id")
	}
	if e.Title == "" {
		return fmt.Errorf("event %d: missing title", e.ID)
	}
	return nil
}
