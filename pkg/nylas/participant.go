package nylas

// EmailParticipant is a name/address pair on a message or thread.
type EmailParticipant struct {
	Name  string `json:"name"  yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

var emailParticipantSchema = NewObjectSchema(
	String("name", func(p *EmailParticipant) *string { return &p.Name }),
	String("email", func(p *EmailParticipant) *string { return &p.Email }),
)

// EventParticipant is one attendee on an event, including their reply status.
type EventParticipant struct {
	Name    string `json:"name"    yaml:"name"`
	Email   string `json:"email"   yaml:"email"`
	Status  string `json:"status"  yaml:"status"`
	Comment string `json:"comment" yaml:"comment"`
}

var eventParticipantSchema = NewObjectSchema(
	String("name", func(p *EventParticipant) *string { return &p.Name }),
	String("email", func(p *EventParticipant) *string { return &p.Email }),
	String("status", func(p *EventParticipant) *string { return &p.Status }),
	String("comment", func(p *EventParticipant) *string { return &p.Comment }),
)
