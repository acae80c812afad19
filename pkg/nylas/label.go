package nylas

// Label represents one Gmail-style label.
type Label struct {
	Resource

	Name        string `json:"name"         yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// LabelSchema declares Label's wire mapping.
var LabelSchema = NewSchema("label", "labels",
	func(l *Label) *Resource { return &l.Resource },
	String("name", func(l *Label) *string { return &l.Name }),
	String("display_name", func(l *Label) *string { return &l.DisplayName }),
)

// SaveBody sends only the display name. The canonical name is
// server-assigned.
func (l *Label) SaveBody() map[string]interface{} {
	return map[string]interface{}{
		"display_name": l.DisplayName,
	}
}

// LabelsService exposes the labels collection.
type LabelsService struct {
	*Collection[Label]
}

// NewLabelsService creates the labels service.
func NewLabelsService(api Requester) *LabelsService {
	return &LabelsService{Collection: NewCollection(api, LabelSchema)}
}
