package nylas_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Towerism/nylas-go/pkg/nylas"
)

func TestDraft_SaveBody(t *testing.T) {
	t.Parallel()

	draft := &nylas.Draft{Version: 2, FileIDs: []string{"file-1"}}
	draft.Subject = "Hello"
	draft.To = []nylas.EmailParticipant{{Name: "Ada", Email: "ada@example.com"}}
	draft.Unread = true

	body := draft.SaveBody()

	// The full envelope goes out, not just the flag subset a message update
	// would send.
	assert.Equal(t, "Hello", body["subject"])
	assert.Equal(t, 2, body["version"])
	assert.Equal(t, []string{"file-1"}, body["file_ids"])
	assert.Equal(t, "draft", body["object"])
	assert.Equal(t,
		[]interface{}{map[string]interface{}{"name": "Ada", "email": "ada@example.com"}},
		body["to"],
	)
}

func TestDraft_DeleteBody(t *testing.T) {
	t.Parallel()

	draft := &nylas.Draft{Version: 5}
	assert.Equal(t, map[string]interface{}{"version": 5}, draft.DeleteBody())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDraftsService_Send(t *testing.T) {
	t.Parallel()
	t.Run("sends a saved draft by reference", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/send", req.Path)

			body, ok := req.Body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, map[string]interface{}{
				"draft_id": "draft-1",
				"version":  4,
			}, body)

			return jsonResponse(http.StatusOK, map[string]interface{}{
				"id":        "msg-1",
				"object":    "message",
				"subject":   "Hello",
				"thread_id": "thread-1",
			})
		}}
		drafts := nylas.NewDraftsService(stub)

		draft := &nylas.Draft{Version: 4}
		draft.ID = "draft-1"
		draft.Subject = "Hello"

		message, err := drafts.Send(context.Background(), draft, nil)
		require.NoError(t, err)
		assert.Equal(t, "msg-1", message.ID)
		assert.Equal(t, "thread-1", message.ThreadID)
	})

	t.Run("sends an unsaved draft inline", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			body, ok := req.Body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "Hello", body["subject"])
			assert.NotContains(t, body, "draft_id")

			return jsonResponse(http.StatusOK, map[string]interface{}{"id": "msg-1", "object": "message"})
		}}
		drafts := nylas.NewDraftsService(stub)

		draft := &nylas.Draft{}
		draft.Subject = "Hello"

		_, err := drafts.Send(context.Background(), draft, nil)
		require.NoError(t, err)
	})

	t.Run("attaches tracking options", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			body, ok := req.Body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, map[string]interface{}{"opens": true}, body["tracking"])

			return jsonResponse(http.StatusOK, map[string]interface{}{"id": "msg-1", "object": "message"})
		}}
		drafts := nylas.NewDraftsService(stub)

		opts := &nylas.SendOptions{Tracking: map[string]interface{}{"opens": true}}
		_, err := drafts.Send(context.Background(), &nylas.Draft{}, opts)
		require.NoError(t, err)
	})

	t.Run("rejects a nil draft", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(0)}
		drafts := nylas.NewDraftsService(stub)

		_, err := drafts.Send(context.Background(), nil, nil)
		require.ErrorIs(t, err, nylas.ErrNilModel)
		assert.Empty(t, stub.calls)
	})
}
