package nylas

import "time"

// Thread represents one email conversation.
type Thread struct {
	Resource

	Subject                      string             `json:"subject"                         yaml:"subject"`
	Participants                 []EmailParticipant `json:"participants"                    yaml:"participants"`
	Snippet                      string             `json:"snippet"                         yaml:"snippet"`
	Unread                       bool               `json:"unread"                          yaml:"unread"`
	Starred                      bool               `json:"starred"                         yaml:"starred"`
	HasAttachments               bool               `json:"has_attachments"                 yaml:"has_attachments"`
	Version                      int                `json:"version"                         yaml:"version"`
	MessageIDs                   []string           `json:"message_ids"                     yaml:"message_ids"`
	DraftIDs                     []string           `json:"draft_ids"                       yaml:"draft_ids"`
	Folders                      []Folder           `json:"folders"                         yaml:"folders"`
	Labels                       []Label            `json:"labels"                          yaml:"labels"`
	FirstMessageTimestamp        time.Time          `json:"first_message_timestamp"         yaml:"first_message_timestamp"`
	LastMessageTimestamp         time.Time          `json:"last_message_timestamp"          yaml:"last_message_timestamp"`
	LastMessageReceivedTimestamp time.Time          `json:"last_message_received_timestamp" yaml:"last_message_received_timestamp"`
	LastMessageSentTimestamp     time.Time          `json:"last_message_sent_timestamp"     yaml:"last_message_sent_timestamp"`
}

// ThreadSchema declares Thread's wire mapping.
var ThreadSchema = NewSchema("thread", "threads",
	func(t *Thread) *Resource { return &t.Resource },
	String("subject", func(t *Thread) *string { return &t.Subject }),
	ObjectList("participants", func(t *Thread) *[]EmailParticipant { return &t.Participants }, emailParticipantSchema),
	String("snippet", func(t *Thread) *string { return &t.Snippet }),
	Bool("unread", func(t *Thread) *bool { return &t.Unread }),
	Bool("starred", func(t *Thread) *bool { return &t.Starred }),
	Bool("has_attachments", func(t *Thread) *bool { return &t.HasAttachments }),
	Number("version", func(t *Thread) *int { return &t.Version }),
	StringList("message_ids", func(t *Thread) *[]string { return &t.MessageIDs }),
	StringList("draft_ids", func(t *Thread) *[]string { return &t.DraftIDs }),
	ObjectList("folders", func(t *Thread) *[]Folder { return &t.Folders }, FolderSchema),
	ObjectList("labels", func(t *Thread) *[]Label { return &t.Labels }, LabelSchema),
	DateTime("first_message_timestamp", func(t *Thread) *time.Time { return &t.FirstMessageTimestamp }),
	DateTime("last_message_timestamp", func(t *Thread) *time.Time { return &t.LastMessageTimestamp }),
	DateTime("last_message_received_timestamp", func(t *Thread) *time.Time { return &t.LastMessageReceivedTimestamp }),
	DateTime("last_message_sent_timestamp", func(t *Thread) *time.Time { return &t.LastMessageSentTimestamp }),
)

// SaveBody restricts thread updates to the mutable flags plus the mailbox
// placement, in the same shape message updates use.
func (t *Thread) SaveBody() map[string]interface{} {
	body := map[string]interface{}{
		"unread":  t.Unread,
		"starred": t.Starred,
	}

	switch {
	case len(t.Labels) > 0:
		ids := make([]string, 0, len(t.Labels))
		for i := range t.Labels {
			ids = append(ids, t.Labels[i].ID)
		}

		body["label_ids"] = ids
	case len(t.Folders) > 0:
		body["folder_id"] = t.Folders[0].ID
	}

	return body
}

// ThreadsService exposes the threads collection.
type ThreadsService struct {
	*Collection[Thread]
}

// NewThreadsService creates the threads service.
func NewThreadsService(api Requester) *ThreadsService {
	return &ThreadsService{Collection: NewCollection(api, ThreadSchema)}
}
