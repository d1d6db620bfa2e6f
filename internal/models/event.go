package models

import "time"

type Event struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DateTime       time.Time `json:"date_time"`
	GroupSizeLimit int64     `json:"group_size_limit"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventWithGroups is the GET /events/{id} response shape: the event
// with its groups attached, members omitted.
type EventWithGroups struct {
	Event
	Groups []Group `json:"groups"`
}
