package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Kolkata"
}

// ListEventsRequest is the input for listing Google Calendar events.
// Query is passed to the API as a free-text filter hint; recurring
// events are always expanded and results ordered by start time.
type ListEventsRequest struct {
	CalendarID string
	Query      string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}
