package nylas

// Folder represents one IMAP-style folder.
type Folder struct {
	Resource

	Name        string `json:"name"         yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// FolderSchema declares Folder's wire mapping.
var FolderSchema = NewSchema("folder", "folders",
	func(f *Folder) *Resource { return &f.Resource },
	String("name", func(f *Folder) *string { return &f.Name }),
	String("display_name", func(f *Folder) *string { return &f.DisplayName }),
)

// SaveBody sends only the display name. The canonical name is
// server-assigned.
func (f *Folder) SaveBody() map[string]interface{} {
	return map[string]interface{}{
		"display_name": f.DisplayName,
	}
}

// FoldersService exposes the folders collection.
type FoldersService struct {
	*Collection[Folder]
}

// NewFoldersService creates the folders service.
func NewFoldersService(api Requester) *FoldersService {
	return &FoldersService{Collection: NewCollection(api, FolderSchema)}
}
