package nylas

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// File represents one attachment.
type File struct {
	Resource

	Filename           string   `json:"filename"            yaml:"filename"`
	Size               int      `json:"size"                yaml:"size"`
	ContentType        string   `json:"content_type"        yaml:"content_type"`
	ContentID          string   `json:"content_id"          yaml:"content_id"`
	ContentDisposition string   `json:"content_disposition" yaml:"content_disposition"`
	MessageIDs         []string `json:"message_ids"         yaml:"message_ids"`
}

// FileSchema declares File's wire mapping.
var FileSchema = NewSchema("file", "files",
	func(f *File) *Resource { return &f.Resource },
	String("filename", func(f *File) *string { return &f.Filename }),
	Number("size", func(f *File) *int { return &f.Size }),
	String("content_type", func(f *File) *string { return &f.ContentType }),
	String("content_id", func(f *File) *string { return &f.ContentID }),
	String("content_disposition", func(f *File) *string { return &f.ContentDisposition }),
	StringList("message_ids", func(f *File) *[]string { return &f.MessageIDs }),
)

// FilesService exposes the files collection plus content download.
type FilesService struct {
	*Collection[File]

	api Requester
}

// NewFilesService creates the files service.
func NewFilesService(api Requester) *FilesService {
	return &FilesService{
		Collection: NewCollection(api, FileSchema),
		api:        api,
	}
}

// Download fetches the attachment's content. The response body is returned
// verbatim without JSON parsing.
func (s *FilesService) Download(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("downloading file: %w", ErrMissingID)
	}

	resp, err := s.api.Do(ctx, &Request{
		Method:   http.MethodGet,
		Path:     s.ItemPath(id) + "/download",
		Download: true,
	})
	if err != nil {
		return nil, fmt.Errorf("downloading file %q: %w", id, err)
	}

	defer resp.Raw.Body.Close()

	data, err := io.ReadAll(resp.Raw.Body)
	if err != nil {
		return nil, fmt.Errorf("downloading file %q: %w", id, err)
	}

	return data, nil
}
