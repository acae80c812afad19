package nylas_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Towerism/nylas-go/pkg/nylas"
)

// Test static errors.
var errBoom = errors.New("boom")

// apiStub records every request and serves scripted responses without a
// network.
type apiStub struct {
	handler func(req *nylas.Request) (*nylas.Response, error)
	calls   []*nylas.Request
}

func (s *apiStub) Do(_ context.Context, req *nylas.Request) (*nylas.Response, error) {
	s.calls = append(s.calls, req)

	return s.handler(req)
}

func (s *apiStub) Get(ctx context.Context, path string, query url.Values) (*nylas.Response, error) {
	return s.Do(ctx, &nylas.Request{Method: http.MethodGet, Path: path, Query: query})
}

func (s *apiStub) Post(ctx context.Context, path string, query url.Values, body interface{}) (*nylas.Response, error) {
	return s.Do(ctx, &nylas.Request{Method: http.MethodPost, Path: path, Query: query, Body: body})
}

func (s *apiStub) Put(ctx context.Context, path string, query url.Values, body interface{}) (*nylas.Response, error) {
	return s.Do(ctx, &nylas.Request{Method: http.MethodPut, Path: path, Query: query, Body: body})
}

func (s *apiStub) Delete(ctx context.Context, path string, query url.Values, body interface{}) (*nylas.Response, error) {
	return s.Do(ctx, &nylas.Request{Method: http.MethodDelete, Path: path, Query: query, Body: body})
}

func jsonResponse(status int, v interface{}) (*nylas.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &nylas.Response{StatusCode: status, Body: body}, nil
}

// pagedCalendars serves a collection of the given size, honoring the offset
// and limit of each chunk request the way the real listing endpoints do.
func pagedCalendars(total int) func(req *nylas.Request) (*nylas.Response, error) {
	return func(req *nylas.Request) (*nylas.Response, error) {
		offset, _ := strconv.Atoi(req.Query.Get("offset"))
		limit, _ := strconv.Atoi(req.Query.Get("limit"))

		items := make([]map[string]interface{}, 0, limit)
		for i := offset; i < total && len(items) < limit; i++ {
			items = append(items, map[string]interface{}{
				"id":     fmt.Sprintf("cal-%d", i),
				"object": "calendar",
				"name":   fmt.Sprintf("Calendar %d", i),
			})
		}

		return jsonResponse(http.StatusOK, items)
	}
}

func chunkParams(t *testing.T, req *nylas.Request) (offset, limit int) {
	t.Helper()

	offset, err := strconv.Atoi(req.Query.Get("offset"))
	require.NoError(t, err)

	limit, err = strconv.Atoi(req.Query.Get("limit"))
	require.NoError(t, err)

	return offset, limit
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCollection_List(t *testing.T) {
	t.Parallel()
	t.Run("traverses the whole collection in fixed chunks", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(250)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		list, err := calendars.List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, list, 250)
		assert.Equal(t, "cal-0", list[0].ID)
		assert.Equal(t, "cal-249", list[249].ID)

		require.Len(t, stub.calls, 3)

		for i, wantOffset := range []int{0, 100, 200} {
			offset, limit := chunkParams(t, stub.calls[i])
			assert.Equal(t, wantOffset, offset)
			assert.Equal(t, 100, limit)
			assert.Equal(t, "/calendars", stub.calls[i].Path)
		}
	})

	t.Run("bounds the total with the limit", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(300)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		list, err := calendars.List(context.Background(), nylas.NewQueryParams().WithLimit(250))
		require.NoError(t, err)
		require.Len(t, list, 250)

		require.Len(t, stub.calls, 3)

		wantChunks := []struct{ offset, limit int }{
			{0, 100},
			{100, 100},
			{200, 50},
		}
		for i, want := range wantChunks {
			offset, limit := chunkParams(t, stub.calls[i])
			assert.Equal(t, want.offset, offset)
			assert.Equal(t, want.limit, limit)
		}
	})

	t.Run("returns everything available when the limit exceeds the collection", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(120)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		list, err := calendars.List(context.Background(), nylas.NewQueryParams().WithLimit(500))
		require.NoError(t, err)
		assert.Len(t, list, 120)
		assert.Len(t, stub.calls, 2)
	})

	t.Run("starts at the caller's offset", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(50)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		list, err := calendars.List(context.Background(), nylas.NewQueryParams().WithOffset(10))
		require.NoError(t, err)
		require.Len(t, list, 40)
		assert.Equal(t, "cal-10", list[0].ID)

		offset, _ := chunkParams(t, stub.calls[0])
		assert.Equal(t, 10, offset)
	})

	t.Run("discards partial results when a chunk fails", func(t *testing.T) {
		t.Parallel()

		var calls int

		stub := &apiStub{}
		stub.handler = func(req *nylas.Request) (*nylas.Response, error) {
			calls++
			if calls == 2 {
				return nil, errBoom
			}

			return pagedCalendars(150)(req)
		}

		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		list, err := calendars.List(context.Background(), nil)
		require.ErrorIs(t, err, errBoom)
		assert.Nil(t, list)
	})

	t.Run("rejects the count view before any request", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(10)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		_, err := calendars.List(context.Background(), nylas.NewQueryParams().WithView(nylas.ViewCount))
		require.ErrorIs(t, err, nylas.ErrIncompatibleView)
		assert.True(t, nylas.IsUsageError(err))
		assert.Empty(t, stub.calls)
	})

	t.Run("rejects the ids view before any request", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(10)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		_, err := calendars.List(context.Background(), nylas.NewQueryParams().WithView(nylas.ViewIDs))
		require.ErrorIs(t, err, nylas.ErrIncompatibleView)
		assert.Empty(t, stub.calls)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCollection_ForEach(t *testing.T) {
	t.Parallel()
	t.Run("visits every item exactly once in order", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(250)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		var seen []string

		err := calendars.ForEach(context.Background(), nil, func(c *nylas.Calendar) error {
			seen = append(seen, c.ID)

			return nil
		})
		require.NoError(t, err)
		require.Len(t, seen, 250)
		assert.Equal(t, "cal-0", seen[0])
		assert.Equal(t, "cal-249", seen[249])

		require.Len(t, stub.calls, 3)

		for i, wantOffset := range []int{0, 100, 200} {
			offset, limit := chunkParams(t, stub.calls[i])
			assert.Equal(t, wantOffset, offset)
			assert.Equal(t, 100, limit)
		}
	})

	t.Run("always starts at offset zero", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(50)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		err := calendars.ForEach(context.Background(), nylas.NewQueryParams().WithOffset(40), func(*nylas.Calendar) error {
			return nil
		})
		require.NoError(t, err)

		offset, _ := chunkParams(t, stub.calls[0])
		assert.Equal(t, 0, offset)
	})

	t.Run("an error from the callback aborts the traversal", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(250)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		var seen int

		err := calendars.ForEach(context.Background(), nil, func(*nylas.Calendar) error {
			seen++
			if seen == 5 {
				return errBoom
			}

			return nil
		})
		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, 5, seen)
		assert.Len(t, stub.calls, 1)
	})

	t.Run("rejects the count view before any request", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(10)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		err := calendars.ForEach(context.Background(), nylas.NewQueryParams().WithView(nylas.ViewCount), func(*nylas.Calendar) error {
			return nil
		})
		require.ErrorIs(t, err, nylas.ErrIncompatibleView)
		assert.Empty(t, stub.calls)
	})
}

func TestCollection_Count(t *testing.T) {
	t.Parallel()
	t.Run("issues a single count-view request", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "count", req.Query.Get("view"))

			return jsonResponse(http.StatusOK, map[string]int{"count": 42})
		}}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		count, err := calendars.Count(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 42, count)
		assert.Len(t, stub.calls, 1)
	})

	t.Run("overrides any caller view", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "count", req.Query.Get("view"))

			return jsonResponse(http.StatusOK, map[string]int{"count": 7})
		}}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		count, err := calendars.Count(context.Background(), nylas.NewQueryParams().WithExpanded())
		require.NoError(t, err)
		assert.Equal(t, 7, count)
	})
}

func TestCollection_First(t *testing.T) {
	t.Parallel()
	t.Run("fetches a one-item chunk", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(50)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		first, err := calendars.First(context.Background(), nil)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, "cal-0", first.ID)

		offset, limit := chunkParams(t, stub.calls[0])
		assert.Equal(t, 0, offset)
		assert.Equal(t, 1, limit)
	})

	t.Run("returns nil for an empty collection", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(0)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		first, err := calendars.First(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, first)
	})

	t.Run("rejects the count view", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(10)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		_, err := calendars.First(context.Background(), nylas.NewQueryParams().WithView(nylas.ViewCount))
		require.ErrorIs(t, err, nylas.ErrIncompatibleView)
		assert.Empty(t, stub.calls)
	})
}

func TestCollection_IDs(t *testing.T) {
	t.Parallel()
	t.Run("traverses bare id strings", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "ids", req.Query.Get("view"))

			offset, _ := strconv.Atoi(req.Query.Get("offset"))
			limit, _ := strconv.Atoi(req.Query.Get("limit"))

			ids := make([]string, 0, limit)
			for i := offset; i < 250 && len(ids) < limit; i++ {
				ids = append(ids, fmt.Sprintf("cal-%d", i))
			}

			return jsonResponse(http.StatusOK, ids)
		}}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		ids, err := calendars.IDs(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, ids, 250)
		assert.Equal(t, "cal-0", ids[0])
		assert.Equal(t, "cal-249", ids[249])
		assert.Len(t, stub.calls, 3)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCollection_Find(t *testing.T) {
	t.Parallel()
	t.Run("fetches one item by id", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/calendars/cal-1", req.Path)

			return jsonResponse(http.StatusOK, map[string]interface{}{
				"id":     "cal-1",
				"object": "calendar",
				"name":   "Work",
			})
		}}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		calendar, err := calendars.Find(context.Background(), "cal-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "cal-1", calendar.ID)
		assert.Equal(t, "Work", calendar.Name)
	})

	t.Run("rejects an empty id before any request", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(10)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		_, err := calendars.Find(context.Background(), "", nil)
		require.ErrorIs(t, err, nylas.ErrMissingID)
		assert.True(t, nylas.IsUsageError(err))
		assert.Empty(t, stub.calls)
	})

	t.Run("rejects the count and ids views", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(10)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		_, err := calendars.Find(context.Background(), "cal-1", nylas.NewQueryParams().WithView(nylas.ViewCount))
		require.ErrorIs(t, err, nylas.ErrIncompatibleView)

		_, err = calendars.Find(context.Background(), "cal-1", nylas.NewQueryParams().WithView(nylas.ViewIDs))
		require.ErrorIs(t, err, nylas.ErrIncompatibleView)

		assert.Empty(t, stub.calls)
	})

	t.Run("passes the expanded view through", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "expanded", req.Query.Get("view"))

			return jsonResponse(http.StatusOK, map[string]interface{}{"id": "ev-1", "object": "event"})
		}}
		events := nylas.NewCollection(stub, nylas.EventSchema)

		_, err := events.Find(context.Background(), "ev-1", nylas.NewQueryParams().WithExpanded())
		require.NoError(t, err)
	})

	t.Run("surfaces a classified not-found error", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			body := []byte(`{"message": "not found"}`)

			return &nylas.Response{StatusCode: http.StatusNotFound, Body: body},
				nylas.ParseRequestError(http.StatusNotFound, body)
		}}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		_, err := calendars.Find(context.Background(), "cal-404", nil)
		require.Error(t, err)
		assert.True(t, nylas.IsNotFound(err))
		assert.Contains(t, err.Error(), "not found")

		reqErr := &nylas.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
		assert.Equal(t, "not found", reqErr.Message)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCollection_Save(t *testing.T) {
	t.Parallel()
	t.Run("creates with POST and rehydrates the instance", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/calendars", req.Path)

			body, ok := req.Body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "Team", body["name"])

			return jsonResponse(http.StatusOK, map[string]interface{}{
				"id":         "cal-9",
				"object":     "calendar",
				"account_id": "acct-1",
				"name":       "Team",
			})
		}}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		calendar := calendars.Build()
		calendar.Name = "Team"

		err := calendars.Save(context.Background(), calendar, nil)
		require.NoError(t, err)
		assert.Equal(t, "cal-9", calendar.ID)
		assert.Equal(t, "acct-1", calendar.AccountID)
	})

	t.Run("updates with PUT when the id is set", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, http.MethodPut, req.Method)
			assert.Equal(t, "/calendars/cal-1", req.Path)

			return jsonResponse(http.StatusOK, map[string]interface{}{"id": "cal-1", "object": "calendar"})
		}}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		calendar := &nylas.Calendar{}
		calendar.ID = "cal-1"

		err := calendars.Save(context.Background(), calendar, nil)
		require.NoError(t, err)
	})

	t.Run("passes save filters through the query", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "true", req.Query.Get("notify_participants"))

			return jsonResponse(http.StatusOK, map[string]interface{}{"id": "ev-1", "object": "event"})
		}}
		events := nylas.NewCollection(stub, nylas.EventSchema)

		event := events.Build()
		event.Title = "Standup"

		params := nylas.NewQueryParams().WithFilter("notify_participants", "true")
		err := events.Save(context.Background(), event, params)
		require.NoError(t, err)
	})

	t.Run("rejects a nil instance", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(0)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		err := calendars.Save(context.Background(), nil, nil)
		require.ErrorIs(t, err, nylas.ErrNilModel)
		assert.Empty(t, stub.calls)
	})
}

func TestCollection_Delete(t *testing.T) {
	t.Parallel()
	t.Run("deletes by id", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, http.MethodDelete, req.Method)
			assert.Equal(t, "/calendars/cal-1", req.Path)
			assert.Nil(t, req.Body)

			return jsonResponse(http.StatusOK, map[string]string{"job_status_id": "job-1"})
		}}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		err := calendars.Delete(context.Background(), "cal-1", nil)
		require.NoError(t, err)
	})

	t.Run("rejects an empty id", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(0)}
		calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

		err := calendars.Delete(context.Background(), "", nil)
		require.ErrorIs(t, err, nylas.ErrMissingID)
		assert.Empty(t, stub.calls)
	})

	t.Run("sends the instance's delete body", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "/drafts/draft-1", req.Path)

			body, ok := req.Body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, 3, body["version"])

			return jsonResponse(http.StatusOK, map[string]bool{"success": true})
		}}
		drafts := nylas.NewCollection(stub, nylas.DraftSchema)

		draft := &nylas.Draft{Version: 3}
		draft.ID = "draft-1"

		err := drafts.DeleteModel(context.Background(), draft, nil)
		require.NoError(t, err)
	})

	t.Run("merges the instance's delete query over the caller's", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "true", req.Query.Get("confirm"))
			assert.Equal(t, "1", req.Query.Get("keep"))

			return jsonResponse(http.StatusOK, map[string]bool{"success": true})
		}}
		items := nylas.NewCollection(stub, confirmedSchema)

		item := &confirmedItem{}
		item.ID = "item-1"

		params := nylas.NewQueryParams().WithFilter("keep", "1")
		err := items.DeleteModel(context.Background(), item, params)
		require.NoError(t, err)
	})
}

// confirmedItem exercises the delete-query hook, which no built-in resource
// implements.
type confirmedItem struct {
	nylas.Resource
}

var confirmedSchema = nylas.NewSchema("confirmed_item", "confirmed_items",
	func(c *confirmedItem) *nylas.Resource { return &c.Resource },
)

func (c *confirmedItem) DeleteQuery() url.Values {
	return url.Values{"confirm": []string{"true"}}
}

func TestCollection_Build(t *testing.T) {
	t.Parallel()

	stub := &apiStub{handler: pagedCalendars(0)}
	calendars := nylas.NewCollection(stub, nylas.CalendarSchema)

	calendar := calendars.Build()
	require.NotNil(t, calendar)
	assert.Equal(t, "calendar", calendar.Object)
	assert.Empty(t, calendar.ID)
	assert.Empty(t, stub.calls) // detached: no network
}

func TestSingleton_Get(t *testing.T) {
	t.Parallel()

	stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
		assert.Equal(t, "/account", req.Path)

		return jsonResponse(http.StatusOK, map[string]interface{}{
			"id":            "acct-1",
			"object":        "account",
			"name":          "Test",
			"email_address": "user@example.com",
		})
	}}
	account := nylas.NewSingleton(stub, nylas.AccountSchema, "/account")

	item, err := account.Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", item.ID)
	assert.Equal(t, "user@example.com", item.EmailAddress)
}
