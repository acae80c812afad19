package nylas

import (
	"context"
	"fmt"
	"time"
)

// EventWhen is an event's time envelope. The wire shape telescopes: exactly
// one of time, start_time/end_time, date, or start_date/end_date is
// populated, and the object field names which shape arrived.
type EventWhen struct {
	Object    string    `json:"object"     yaml:"object"`
	Time      time.Time `json:"time"       yaml:"time"`
	StartTime time.Time `json:"start_time" yaml:"start_time"`
	EndTime   time.Time `json:"end_time"   yaml:"end_time"`
	Date      time.Time `json:"date"       yaml:"date"`
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	EndDate   time.Time `json:"end_date"   yaml:"end_date"`
}

var eventWhenSchema = NewObjectSchema(
	String("object", func(w *EventWhen) *string { return &w.Object }),
	DateTime("time", func(w *EventWhen) *time.Time { return &w.Time }),
	DateTime("start_time", func(w *EventWhen) *time.Time { return &w.StartTime }),
	DateTime("end_time", func(w *EventWhen) *time.Time { return &w.EndTime }),
	Date("date", func(w *EventWhen) *time.Time { return &w.Date }),
	Date("start_date", func(w *EventWhen) *time.Time { return &w.StartDate }),
	Date("end_date", func(w *EventWhen) *time.Time { return &w.EndDate }),
)

// wire renders the envelope for a save payload, keeping only the populated
// shape. A span whose start and end are exactly equal collapses into the
// single point-in-time (or single-date) shape.
func (w EventWhen) wire() map[string]interface{} {
	switch {
	case !w.StartTime.IsZero() && !w.EndTime.IsZero() && w.StartTime.Equal(w.EndTime):
		return map[string]interface{}{"time": epochSeconds(w.StartTime)}
	case !w.StartTime.IsZero() && !w.EndTime.IsZero():
		return map[string]interface{}{
			"start_time": epochSeconds(w.StartTime),
			"end_time":   epochSeconds(w.EndTime),
		}
	case !w.Time.IsZero():
		return map[string]interface{}{"time": epochSeconds(w.Time)}
	case !w.StartDate.IsZero() && !w.EndDate.IsZero() && w.StartDate.Equal(w.EndDate):
		return map[string]interface{}{"date": w.StartDate.Format(dateLayout)}
	case !w.StartDate.IsZero() && !w.EndDate.IsZero():
		return map[string]interface{}{
			"start_date": w.StartDate.Format(dateLayout),
			"end_date":   w.EndDate.Format(dateLayout),
		}
	case !w.Date.IsZero():
		return map[string]interface{}{"date": w.Date.Format(dateLayout)}
	}

	return map[string]interface{}{}
}

// Event represents one calendar event.
type Event struct {
	Resource

	Title             string                 `json:"title"               yaml:"title"`
	Description       string                 `json:"description"         yaml:"description"`
	Location          string                 `json:"location"            yaml:"location"`
	Owner             string                 `json:"owner"               yaml:"owner"`
	CalendarID        string                 `json:"calendar_id"         yaml:"calendar_id"`
	Busy              bool                   `json:"busy"                yaml:"busy"`
	ReadOnly          bool                   `json:"read_only"           yaml:"read_only"`
	Status            string                 `json:"status"              yaml:"status"`
	When              EventWhen              `json:"when"                yaml:"when"`
	Participants      []EventParticipant     `json:"participants"        yaml:"participants"`
	OriginalStartTime time.Time              `json:"original_start_time" yaml:"original_start_time"`
	MasterEventID     string                 `json:"master_event_id"     yaml:"master_event_id"`
	ICalUID           string                 `json:"ical_uid"            yaml:"ical_uid"`
	OrganizerEmail    string                 `json:"organizer_email"     yaml:"organizer_email"`
	OrganizerName     string                 `json:"organizer_name"      yaml:"organizer_name"`
	Visibility        string                 `json:"visibility"          yaml:"visibility"`
	JobStatusID       string                 `json:"job_status_id"       yaml:"job_status_id"`
	Recurrence        map[string]interface{} `json:"recurrence"          yaml:"recurrence"`
	Metadata          map[string]interface{} `json:"metadata"            yaml:"metadata"`
}

// EventSchema declares Event's wire mapping.
var EventSchema = NewSchema("event", "events",
	func(e *Event) *Resource { return &e.Resource },
	String("title", func(e *Event) *string { return &e.Title }),
	String("description", func(e *Event) *string { return &e.Description }),
	String("location", func(e *Event) *string { return &e.Location }),
	String("owner", func(e *Event) *string { return &e.Owner }),
	String("calendar_id", func(e *Event) *string { return &e.CalendarID }),
	Bool("busy", func(e *Event) *bool { return &e.Busy }),
	Bool("read_only", func(e *Event) *bool { return &e.ReadOnly }),
	String("status", func(e *Event) *string { return &e.Status }),
	Object("when", func(e *Event) *EventWhen { return &e.When }, eventWhenSchema),
	ObjectList("participants", func(e *Event) *[]EventParticipant { return &e.Participants }, eventParticipantSchema),
	DateTime("original_start_time", func(e *Event) *time.Time { return &e.OriginalStartTime }),
	String("master_event_id", func(e *Event) *string { return &e.MasterEventID }),
	String("ical_uid", func(e *Event) *string { return &e.ICalUID }),
	String("organizer_email", func(e *Event) *string { return &e.OrganizerEmail }),
	String("organizer_name", func(e *Event) *string { return &e.OrganizerName }),
	String("visibility", func(e *Event) *string { return &e.Visibility }),
	String("job_status_id", func(e *Event) *string { return &e.JobStatusID }),
	Raw("recurrence", func(e *Event) *map[string]interface{} { return &e.Recurrence }),
	Raw("metadata", func(e *Event) *map[string]interface{} { return &e.Metadata }),
)

// Start returns the event's start regardless of which when shape is set.
func (e *Event) Start() time.Time {
	switch {
	case !e.When.StartTime.IsZero():
		return e.When.StartTime
	case !e.When.Time.IsZero():
		return e.When.Time
	case !e.When.StartDate.IsZero():
		return e.When.StartDate
	}

	return e.When.Date
}

// End mirrors Start for the end of the event.
func (e *Event) End() time.Time {
	switch {
	case !e.When.EndTime.IsZero():
		return e.When.EndTime
	case !e.When.Time.IsZero():
		return e.When.Time
	case !e.When.EndDate.IsZero():
		return e.When.EndDate
	}

	return e.When.Date
}

// SetTimespan points the event at a concrete start/end pair, replacing any
// previous shape. Saving a span whose ends are exactly equal sends a single
// time instead.
func (e *Event) SetTimespan(start, end time.Time) {
	e.When = EventWhen{StartTime: start, EndTime: end}
}

// SetDatespan points the event at an all-day date range, replacing any
// previous shape. Equal start and end dates are saved as a single date.
func (e *Event) SetDatespan(start, end time.Time) {
	e.When = EventWhen{StartDate: start, EndDate: end}
}

// SaveBody emits the full event payload with the when envelope reduced to
// its populated shape.
func (e *Event) SaveBody() map[string]interface{} {
	body := ToWire(EventSchema, e)
	body["when"] = e.When.wire()

	return body
}

// EventsService exposes the events collection plus RSVP delivery.
type EventsService struct {
	*Collection[Event]

	api Requester
}

// NewEventsService creates the events service.
func NewEventsService(api Requester) *EventsService {
	return &EventsService{
		Collection: NewCollection(api, EventSchema),
		api:        api,
	}
}

// RSVP replies to an event invitation on behalf of the account and returns
// the updated event.
func (s *EventsService) RSVP(ctx context.Context, eventID, accountID, status, comment string) (*Event, error) {
	if eventID == "" {
		return nil, fmt.Errorf("sending RSVP: %w", ErrMissingID)
	}

	body := map[string]interface{}{
		"event_id":   eventID,
		"status":     status,
		"account_id": accountID,
	}
	if comment != "" {
		body["comment"] = comment
	}

	resp, err := s.api.Post(ctx, "/send-rsvp", nil, body)
	if err != nil {
		return nil, fmt.Errorf("sending RSVP: %w", err)
	}

	event := &Event{}
	if err := FromWire(EventSchema, event, resp.Body); err != nil {
		return nil, fmt.Errorf("sending RSVP: %w", err)
	}

	return event, nil
}
