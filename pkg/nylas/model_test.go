package nylas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Towerism/nylas-go/pkg/nylas"
)

func TestSchema_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "calendar", nylas.CalendarSchema.ObjectName())
	assert.Equal(t, "calendars", nylas.CalendarSchema.CollectionName())
}

func TestSchema_ResourceAttributes(t *testing.T) {
	t.Parallel()

	calendar := &nylas.Calendar{}
	require.NoError(t, nylas.FromWire(nylas.CalendarSchema, calendar, []byte(`{
		"id":         "cal-1",
		"object":     "calendar",
		"account_id": "acct-1",
		"name":       "Work"
	}`)))

	assert.Equal(t, "cal-1", calendar.ID)
	assert.Equal(t, "calendar", calendar.Object)
	assert.Equal(t, "acct-1", calendar.AccountID)
	assert.Equal(t, "Work", calendar.Name)
}

func TestSchema_Equal(t *testing.T) {
	t.Parallel()

	saved := func(id string) *nylas.Calendar {
		calendar := &nylas.Calendar{}
		calendar.ID = id

		return calendar
	}

	t.Run("same id", func(t *testing.T) {
		t.Parallel()
		assert.True(t, nylas.CalendarSchema.Equal(saved("cal-1"), saved("cal-1")))
	})

	t.Run("different ids", func(t *testing.T) {
		t.Parallel()
		assert.False(t, nylas.CalendarSchema.Equal(saved("cal-1"), saved("cal-2")))
	})

	t.Run("unsaved instances are never equal", func(t *testing.T) {
		t.Parallel()
		assert.False(t, nylas.CalendarSchema.Equal(saved(""), saved("")))
	})

	t.Run("nil instances are never equal", func(t *testing.T) {
		t.Parallel()
		assert.False(t, nylas.CalendarSchema.Equal(nil, saved("cal-1")))
		assert.False(t, nylas.CalendarSchema.Equal(saved("cal-1"), nil))
	})
}

func TestFromWire(t *testing.T) {
	t.Parallel()
	t.Run("updates only the keys present", func(t *testing.T) {
		t.Parallel()

		calendar := &nylas.Calendar{Name: "Old", Description: "keep me"}
		require.NoError(t, nylas.FromWire(nylas.CalendarSchema, calendar, []byte(`{"name": "New"}`)))

		assert.Equal(t, "New", calendar.Name)
		assert.Equal(t, "keep me", calendar.Description)
	})

	t.Run("rejects a payload that is not an object", func(t *testing.T) {
		t.Parallel()

		calendar := &nylas.Calendar{}
		err := nylas.FromWire(nylas.CalendarSchema, calendar, []byte(`[1, 2]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding calendar")
	})
}

func TestToWire(t *testing.T) {
	t.Parallel()
	t.Run("stamps the object type name", func(t *testing.T) {
		t.Parallel()

		out := nylas.ToWire(nylas.CalendarSchema, &nylas.Calendar{Name: "Work"})
		assert.Equal(t, "calendar", out["object"])
		assert.Equal(t, "Work", out["name"])
	})

	t.Run("nested records carry no object name", func(t *testing.T) {
		t.Parallel()

		out := nylas.ToWire(wireRecordSchema, &wireRecord{})
		_, present := out["object"]
		assert.False(t, present)
	})
}
