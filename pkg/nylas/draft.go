package nylas

import (
	"context"
	"fmt"
	"time"
)

// Draft represents an unsent message. It carries the same envelope as
// Message plus the draft bookkeeping fields.
type Draft struct {
	Message

	ReplyToMessageID string   `json:"reply_to_message_id" yaml:"reply_to_message_id"`
	Version          int      `json:"version"             yaml:"version"`
	FileIDs          []string `json:"file_ids"            yaml:"file_ids"`
}

// DraftSchema declares Draft's wire mapping.
var DraftSchema = NewSchema("draft", "drafts",
	func(d *Draft) *Resource { return &d.Resource },
	String("subject", func(d *Draft) *string { return &d.Subject }),
	ObjectList("from", func(d *Draft) *[]EmailParticipant { return &d.From }, emailParticipantSchema),
	ObjectList("to", func(d *Draft) *[]EmailParticipant { return &d.To }, emailParticipantSchema),
	ObjectList("cc", func(d *Draft) *[]EmailParticipant { return &d.CC }, emailParticipantSchema),
	ObjectList("bcc", func(d *Draft) *[]EmailParticipant { return &d.BCC }, emailParticipantSchema),
	ObjectList("reply_to", func(d *Draft) *[]EmailParticipant { return &d.ReplyTo }, emailParticipantSchema),
	String("thread_id", func(d *Draft) *string { return &d.ThreadID }),
	String("snippet", func(d *Draft) *string { return &d.Snippet }),
	String("body", func(d *Draft) *string { return &d.Body }),
	Bool("unread", func(d *Draft) *bool { return &d.Unread }),
	Bool("starred", func(d *Draft) *bool { return &d.Starred }),
	DateTime("date", func(d *Draft) *time.Time { return &d.Date }),
	ObjectList("files", func(d *Draft) *[]File { return &d.Files }, FileSchema),
	String("reply_to_message_id", func(d *Draft) *string { return &d.ReplyToMessageID }),
	Number("version", func(d *Draft) *int { return &d.Version }),
	StringList("file_ids", func(d *Draft) *[]string { return &d.FileIDs }),
	Raw("metadata", func(d *Draft) *map[string]interface{} { return &d.Metadata }),
)

// SaveBody emits the draft's full wire form. Drafts accept every field on
// create and update, so this masks the narrower update body promoted from
// the embedded Message.
func (d *Draft) SaveBody() map[string]interface{} {
	return ToWire(DraftSchema, d)
}

// DeleteBody versions the delete request. The server rejects a delete whose
// version is stale.
func (d *Draft) DeleteBody() map[string]interface{} {
	return map[string]interface{}{
		"version": d.Version,
	}
}

// DraftsService exposes the drafts collection plus delivery.
type DraftsService struct {
	*Collection[Draft]

	api Requester
}

// NewDraftsService creates the drafts service.
func NewDraftsService(api Requester) *DraftsService {
	return &DraftsService{
		Collection: NewCollection(api, DraftSchema),
		api:        api,
	}
}

// SendOptions tunes delivery. Tracking is passed through to the open/link
// tracking facility verbatim.
type SendOptions struct {
	Tracking map[string]interface{}
}

// Send delivers the draft and returns the sent message. A draft that has
// been saved is sent by reference with its current version; an unsaved draft
// is sent inline in one call.
func (s *DraftsService) Send(ctx context.Context, draft *Draft, opts *SendOptions) (*Message, error) {
	if draft == nil {
		return nil, fmt.Errorf("sending draft: %w", ErrNilModel)
	}

	var body map[string]interface{}
	if draft.ID != "" {
		body = map[string]interface{}{
			"draft_id": draft.ID,
			"version":  draft.Version,
		}
	} else {
		body = ToWire(DraftSchema, draft)
	}

	if opts != nil && opts.Tracking != nil {
		body["tracking"] = opts.Tracking
	}

	resp, err := s.api.Post(ctx, "/send", nil, body)
	if err != nil {
		return nil, fmt.Errorf("sending draft: %w", err)
	}

	message := &Message{}
	if err := FromWire(MessageSchema, message, resp.Body); err != nil {
		return nil, fmt.Errorf("sending draft: %w", err)
	}

	return message, nil
}
