package nylas_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Towerism/nylas-go/pkg/nylas"
)

func TestFilesService_Download(t *testing.T) {
	t.Parallel()
	t.Run("fetches the attachment content verbatim", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/files/file-1/download", req.Path)
			assert.True(t, req.Download)

			return &nylas.Response{
				StatusCode: http.StatusOK,
				Raw:        &http.Response{Body: io.NopCloser(strings.NewReader("%PDF-1.4 content"))},
			}, nil
		}}
		files := nylas.NewFilesService(stub)

		data, err := files.Download(context.Background(), "file-1")
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 content", string(data))
	})

	t.Run("rejects an empty id", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(0)}
		files := nylas.NewFilesService(stub)

		_, err := files.Download(context.Background(), "")
		require.ErrorIs(t, err, nylas.ErrMissingID)
		assert.Empty(t, stub.calls)
	})
}
