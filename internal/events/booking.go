package events

import "time"

const BookingLifecycleTopic = "aparthotel.booking.lifecycle.v1"

const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

type BookingEvent struct {
	EventType       string    `json:"event_type"`
	BookingID       string    `json:"booking_id"`
	CompanyID       string    `json:"company_id"`
	PropertyGroupID string    `json:"property_group_id"`
	UnitID          string    `json:"unit_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	FullPrice       float64   `json:"full_price"`
	ActorID         string    `json:"actor_id"`
	OccurredAt      time.Time `json:"occurred_at"`
}
