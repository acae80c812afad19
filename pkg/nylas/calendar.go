package nylas

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Calendar represents one calendar in a connected account.
type Calendar struct {
	Resource

	Name        string                 `json:"name"          yaml:"name"`
	Description string                 `json:"description"   yaml:"description"`
	Location    string                 `json:"location"      yaml:"location"`
	Timezone    string                 `json:"timezone"      yaml:"timezone"`
	ReadOnly    bool                   `json:"read_only"     yaml:"read_only"`
	IsPrimary   bool                   `json:"is_primary"    yaml:"is_primary"`
	JobStatusID string                 `json:"job_status_id" yaml:"job_status_id"`
	Metadata    map[string]interface{} `json:"metadata"      yaml:"metadata"`
}

// CalendarSchema declares Calendar's wire mapping.
var CalendarSchema = NewSchema("calendar", "calendars",
	func(c *Calendar) *Resource { return &c.Resource },
	String("name", func(c *Calendar) *string { return &c.Name }),
	String("description", func(c *Calendar) *string { return &c.Description }),
	String("location", func(c *Calendar) *string { return &c.Location }),
	String("timezone", func(c *Calendar) *string { return &c.Timezone }),
	Bool("read_only", func(c *Calendar) *bool { return &c.ReadOnly }),
	Bool("is_primary", func(c *Calendar) *bool { return &c.IsPrimary }),
	String("job_status_id", func(c *Calendar) *string { return &c.JobStatusID }),
	Raw("metadata", func(c *Calendar) *map[string]interface{} { return &c.Metadata }),
)

// SaveBody restricts the save payload to the fields the calendars endpoint
// accepts. Server-assigned fields like id and read_only are never sent back.
func (c *Calendar) SaveBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"location":    c.Location,
		"timezone":    c.Timezone,
	}
}

// FreeBusyRequest asks for the busy spans of one or more mailboxes inside a
// time window.
type FreeBusyRequest struct {
	StartTime time.Time
	EndTime   time.Time
	Emails    []string
}

// FreeBusy is one mailbox's availability.
type FreeBusy struct {
	Object    string     `json:"object"     yaml:"object"`
	Email     string     `json:"email"      yaml:"email"`
	TimeSlots []TimeSlot `json:"time_slots" yaml:"time_slots"`
}

// TimeSlot is one busy span.
type TimeSlot struct {
	Object    string    `json:"object"     yaml:"object"`
	Status    string    `json:"status"     yaml:"status"`
	StartTime time.Time `json:"start_time" yaml:"start_time"`
	EndTime   time.Time `json:"end_time"   yaml:"end_time"`
}

var timeSlotSchema = NewObjectSchema(
	String("object", func(t *TimeSlot) *string { return &t.Object }),
	String("status", func(t *TimeSlot) *string { return &t.Status }),
	DateTime("start_time", func(t *TimeSlot) *time.Time { return &t.StartTime }),
	DateTime("end_time", func(t *TimeSlot) *time.Time { return &t.EndTime }),
)

var freeBusySchema = NewObjectSchema(
	String("object", func(f *FreeBusy) *string { return &f.Object }),
	String("email", func(f *FreeBusy) *string { return &f.Email }),
	ObjectList("time_slots", func(f *FreeBusy) *[]TimeSlot { return &f.TimeSlots }, timeSlotSchema),
)

// CalendarsService exposes the calendars collection plus the free/busy
// lookup.
type CalendarsService struct {
	*Collection[Calendar]

	api Requester
}

// NewCalendarsService creates the calendars service.
func NewCalendarsService(api Requester) *CalendarsService {
	return &CalendarsService{
		Collection: NewCollection(api, CalendarSchema),
		api:        api,
	}
}

// FreeBusy looks up busy spans for the given mailboxes. It is a plain
// pass-through call on the fixed /calendars/free-busy endpoint.
func (s *CalendarsService) FreeBusy(ctx context.Context, req *FreeBusyRequest) ([]FreeBusy, error) {
	body := map[string]interface{}{
		"start_time": req.StartTime.Unix(),
		"end_time":   req.EndTime.Unix(),
		"emails":     req.Emails,
	}

	resp, err := s.api.Post(ctx, "/calendars/free-busy", nil, body)
	if err != nil {
		return nil, fmt.Errorf("fetching free/busy: %w", err)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(resp.Body, &elems); err != nil {
		return nil, fmt.Errorf("fetching free/busy: %w", err)
	}

	out := make([]FreeBusy, 0, len(elems))

	for _, elem := range elems {
		var fb FreeBusy
		if err := FromWire(freeBusySchema, &fb, elem); err != nil {
			return nil, fmt.Errorf("fetching free/busy: %w", err)
		}

		out = append(out, fb)
	}

	return out, nil
}
