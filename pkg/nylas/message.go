package nylas

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Towerism/nylas-go/internal/constants"
)

// Message represents one received or sent email message.
type Message struct {
	Resource

	Subject  string                 `json:"subject"   yaml:"subject"`
	From     []EmailParticipant     `json:"from"      yaml:"from"`
	To       []EmailParticipant     `json:"to"        yaml:"to"`
	CC       []EmailParticipant     `json:"cc"        yaml:"cc"`
	BCC      []EmailParticipant     `json:"bcc"       yaml:"bcc"`
	ReplyTo  []EmailParticipant     `json:"reply_to"  yaml:"reply_to"`
	ThreadID string                 `json:"thread_id" yaml:"thread_id"`
	Snippet  string                 `json:"snippet"   yaml:"snippet"`
	Body     string                 `json:"body"      yaml:"body"`
	Unread   bool                   `json:"unread"    yaml:"unread"`
	Starred  bool                   `json:"starred"   yaml:"starred"`
	Date     time.Time              `json:"date"      yaml:"date"`
	Files    []File                 `json:"files"     yaml:"files"`
	Folder   Folder                 `json:"folder"    yaml:"folder"`
	Labels   []Label                `json:"labels"    yaml:"labels"`
	Metadata map[string]interface{} `json:"metadata"  yaml:"metadata"`
}

// MessageSchema declares Message's wire mapping.
var MessageSchema = NewSchema("message", "messages",
	func(m *Message) *Resource { return &m.Resource },
	String("subject", func(m *Message) *string { return &m.Subject }),
	ObjectList("from", func(m *Message) *[]EmailParticipant { return &m.From }, emailParticipantSchema),
	ObjectList("to", func(m *Message) *[]EmailParticipant { return &m.To }, emailParticipantSchema),
	ObjectList("cc", func(m *Message) *[]EmailParticipant { return &m.CC }, emailParticipantSchema),
	ObjectList("bcc", func(m *Message) *[]EmailParticipant { return &m.BCC }, emailParticipantSchema),
	ObjectList("reply_to", func(m *Message) *[]EmailParticipant { return &m.ReplyTo }, emailParticipantSchema),
	String("thread_id", func(m *Message) *string { return &m.ThreadID }),
	String("snippet", func(m *Message) *string { return &m.Snippet }),
	String("body", func(m *Message) *string { return &m.Body }),
	Bool("unread", func(m *Message) *bool { return &m.Unread }),
	Bool("starred", func(m *Message) *bool { return &m.Starred }),
	DateTime("date", func(m *Message) *time.Time { return &m.Date }),
	ObjectList("files", func(m *Message) *[]File { return &m.Files }, FileSchema),
	Object("folder", func(m *Message) *Folder { return &m.Folder }, FolderSchema),
	ObjectList("labels", func(m *Message) *[]Label { return &m.Labels }, LabelSchema),
	Raw("metadata", func(m *Message) *map[string]interface{} { return &m.Metadata }),
)

// SaveBody restricts message updates to the mutable flags plus the mailbox
// placement. Labels win over a folder when both are populated, matching the
// label- and folder-based providers respectively.
func (m *Message) SaveBody() map[string]interface{} {
	body := map[string]interface{}{
		"unread":  m.Unread,
		"starred": m.Starred,
	}

	switch {
	case len(m.Labels) > 0:
		ids := make([]string, 0, len(m.Labels))
		for i := range m.Labels {
			ids = append(ids, m.Labels[i].ID)
		}

		body["label_ids"] = ids
	case m.Folder.ID != "":
		body["folder_id"] = m.Folder.ID
	}

	return body
}

// MessagesService exposes the messages collection plus raw MIME retrieval.
type MessagesService struct {
	*Collection[Message]

	api Requester
}

// NewMessagesService creates the messages service.
func NewMessagesService(api Requester) *MessagesService {
	return &MessagesService{
		Collection: NewCollection(api, MessageSchema),
		api:        api,
	}
}

// Raw fetches the message in its RFC 822 MIME form. The response body is
// returned verbatim without JSON parsing.
func (s *MessagesService) Raw(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("fetching raw message: %w", ErrMissingID)
	}

	resp, err := s.api.Do(ctx, &Request{
		Method:   http.MethodGet,
		Path:     s.ItemPath(id),
		Headers:  map[string]string{constants.HeaderAccept: constants.ContentTypeRFC822},
		Download: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching raw message %q: %w", id, err)
	}

	defer resp.Raw.Body.Close()

	data, err := io.ReadAll(resp.Raw.Body)
	if err != nil {
		return nil, fmt.Errorf("fetching raw message %q: %w", id, err)
	}

	return data, nil
}
