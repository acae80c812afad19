package nylas

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	json "github.com/goccy/go-json"
)

// ChunkSize is the fixed number of items requested per chunk during
// collection traversal. It is shared by every traversal mode; callers control
// the number of round trips, never the width of one.
const ChunkSize = 100

// Collection provides chunked, cursor-driven access to one resource's listing
// endpoint, plus item retrieval and mutation. Chunks are fetched strictly
// sequentially: the offset of chunk n+1 depends on the observed length of
// chunk n, so a traversal never has more than one request outstanding and
// terminates on the first short chunk.
//
// The schema must come from NewSchema; object schemas have no collection
// endpoint.
type Collection[M any] struct {
	api    Requester
	schema *Schema[M]
	prefix string
}

// NewCollection creates a collection rooted at /{collectionName}.
func NewCollection[M any](api Requester, schema *Schema[M]) *Collection[M] {
	return &Collection[M]{api: api, schema: schema}
}

// NewPrefixedCollection roots the collection under an extra path prefix, e.g.
// the application-management tree /a/{clientID}.
func NewPrefixedCollection[M any](api Requester, schema *Schema[M], prefix string) *Collection[M] {
	return &Collection[M]{api: api, schema: schema, prefix: prefix}
}

// Path returns the collection's listing path.
func (c *Collection[M]) Path() string {
	return c.prefix + "/" + c.schema.collection
}

// ItemPath returns the path addressing one item.
func (c *Collection[M]) ItemPath(id string) string {
	return c.Path() + "/" + id
}

// Schema returns the collection's resource schema.
func (c *Collection[M]) Schema() *Schema[M] {
	return c.schema
}

// Count issues a single count-view request and returns the server-reported
// total. It never paginates. Any view on params is overridden.
func (c *Collection[M]) Count(ctx context.Context, params *QueryParams) (int, error) {
	query := params.clone()
	query.View = ViewCount
	query.Expanded = false

	resp, err := c.api.Get(ctx, c.Path(), query.Values())
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", c.schema.collection, err)
	}

	var result struct {
		Count int `json:"count"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return 0, fmt.Errorf("counting %s: %w", c.schema.collection, err)
	}

	return result.Count, nil
}

// First fetches a one-item chunk at offset 0 and returns the item, or nil if
// the collection is empty.
func (c *Collection[M]) First(ctx context.Context, params *QueryParams) (*M, error) {
	if err := c.checkItemView(params); err != nil {
		return nil, fmt.Errorf("fetching first of %s: %w", c.schema.collection, err)
	}

	chunk, err := c.fetchChunk(ctx, params, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("fetching first of %s: %w", c.schema.collection, err)
	}

	if len(chunk) == 0 {
		return nil, nil
	}

	return c.decodeItem(chunk[0])
}

// List accumulates up to params.Limit items (unbounded when zero), fetching
// chunks of min(ChunkSize, remaining) at increasing offsets until the server
// returns a short chunk or the limit is reached. An error during any chunk
// discards the partial result.
func (c *Collection[M]) List(ctx context.Context, params *QueryParams) ([]*M, error) {
	if err := c.checkItemView(params); err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.schema.collection, err)
	}

	var (
		out    []*M
		limit  = limitOf(params)
		offset = offsetOf(params)
	)

	for {
		want := ChunkSize
		if limit > 0 && limit-len(out) < ChunkSize {
			want = limit - len(out)
		}

		chunk, err := c.fetchChunk(ctx, params, offset, want)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", c.schema.collection, err)
		}

		for _, raw := range chunk {
			item, err := c.decodeItem(raw)
			if err != nil {
				return nil, fmt.Errorf("listing %s: %w", c.schema.collection, err)
			}

			out = append(out, item)
		}

		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}

		if len(chunk) < ChunkSize {
			return out, nil
		}

		offset += len(chunk)
	}
}

// ForEach streams the whole collection lazily: fixed-size chunks starting at
// offset 0, invoking fn for every item in arrival order as each chunk
// resolves. The offset advances by each chunk's observed length, so a short
// final chunk still terminates the traversal. A non-nil error from fn aborts
// the traversal and is returned as-is.
func (c *Collection[M]) ForEach(ctx context.Context, params *QueryParams, fn func(*M) error) error {
	if err := c.checkItemView(params); err != nil {
		return fmt.Errorf("iterating %s: %w", c.schema.collection, err)
	}

	offset := 0

	for {
		chunk, err := c.fetchChunk(ctx, params, offset, ChunkSize)
		if err != nil {
			return fmt.Errorf("iterating %s: %w", c.schema.collection, err)
		}

		for _, raw := range chunk {
			item, err := c.decodeItem(raw)
			if err != nil {
				return fmt.Errorf("iterating %s: %w", c.schema.collection, err)
			}

			if err := fn(item); err != nil {
				return err
			}
		}

		if len(chunk) < ChunkSize {
			return nil
		}

		offset += len(chunk)
	}
}

// Find fetches a single resource by id.
func (c *Collection[M]) Find(ctx context.Context, id string, params *QueryParams) (*M, error) {
	if id == "" {
		return nil, fmt.Errorf("finding %s: %w", c.schema.object, ErrMissingID)
	}

	if view := params.effectiveView(); view == ViewCount || view == ViewIDs {
		return nil, fmt.Errorf("finding %s: %s view: %w", c.schema.object, view, ErrIncompatibleView)
	}

	resp, err := c.api.Get(ctx, c.ItemPath(id), params.Values())
	if err != nil {
		return nil, fmt.Errorf("finding %s %q: %w", c.schema.object, id, err)
	}

	return c.decodeItem(resp.Body)
}

// IDs traverses the collection in the ids view, returning bare id strings
// without constructing models. Chunking and limits behave exactly like List.
func (c *Collection[M]) IDs(ctx context.Context, params *QueryParams) ([]string, error) {
	query := params.clone()
	query.View = ViewIDs
	query.Expanded = false

	var (
		out    []string
		limit  = limitOf(params)
		offset = offsetOf(params)
	)

	for {
		want := ChunkSize
		if limit > 0 && limit-len(out) < ChunkSize {
			want = limit - len(out)
		}

		chunk, err := c.fetchIDChunk(ctx, query, offset, want)
		if err != nil {
			return nil, fmt.Errorf("listing %s ids: %w", c.schema.collection, err)
		}

		out = append(out, chunk...)

		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}

		if len(chunk) < ChunkSize {
			return out, nil
		}

		offset += len(chunk)
	}
}

// Build constructs a detached, unsaved instance with the object type seeded.
// No network call is made; fields are set directly on the returned struct.
func (c *Collection[M]) Build() *M {
	item := new(M)
	if c.schema.base != nil {
		c.schema.base(item).Object = c.schema.object
	}

	return item
}

// Save persists the instance: PUT when it already has an id, POST otherwise.
// The body comes from the resource's SaveBodyProvider hook when implemented,
// its full wire form otherwise, and the same instance is re-hydrated from the
// server's response, so server-assigned fields appear on it afterward.
func (c *Collection[M]) Save(ctx context.Context, item *M, params *QueryParams) error {
	if item == nil {
		return fmt.Errorf("saving %s: %w", c.schema.object, ErrNilModel)
	}

	var (
		resp *Response
		err  error
	)

	if id := c.schema.base(item).ID; id != "" {
		resp, err = c.api.Put(ctx, c.ItemPath(id), params.Values(), c.saveBody(item))
	} else {
		resp, err = c.api.Post(ctx, c.Path(), params.Values(), c.saveBody(item))
	}

	if err != nil {
		return fmt.Errorf("saving %s: %w", c.schema.object, err)
	}

	if err := FromWire(c.schema, item, resp.Body); err != nil {
		return fmt.Errorf("saving %s: %w", c.schema.object, err)
	}

	return nil
}

// Delete removes an item by id. Delete side-channels ride on params as
// passthrough filters (e.g. notify_participants).
func (c *Collection[M]) Delete(ctx context.Context, id string, params *QueryParams) error {
	if id == "" {
		return fmt.Errorf("deleting %s: %w", c.schema.object, ErrMissingID)
	}

	if _, err := c.api.Delete(ctx, c.ItemPath(id), params.Values(), nil); err != nil {
		return fmt.Errorf("deleting %s %q: %w", c.schema.object, id, err)
	}

	return nil
}

// DeleteModel removes a live instance, honoring its DeleteBodyProvider and
// DeleteQueryProvider hooks so resources like drafts can send their version
// check.
func (c *Collection[M]) DeleteModel(ctx context.Context, item *M, params *QueryParams) error {
	if item == nil {
		return fmt.Errorf("deleting %s: %w", c.schema.object, ErrNilModel)
	}

	id := c.schema.base(item).ID
	if id == "" {
		return fmt.Errorf("deleting %s: %w", c.schema.object, ErrMissingID)
	}

	var body interface{}
	if provider, ok := any(item).(DeleteBodyProvider); ok {
		body = provider.DeleteBody()
	}

	values := params.Values()

	if provider, ok := any(item).(DeleteQueryProvider); ok {
		for key, vals := range provider.DeleteQuery() {
			values[key] = vals
		}
	}

	if _, err := c.api.Delete(ctx, c.ItemPath(id), values, body); err != nil {
		return fmt.Errorf("deleting %s %q: %w", c.schema.object, id, err)
	}

	return nil
}

// saveBody resolves the save payload: the SaveBodyProvider hook when the
// resource implements it, the full wire form otherwise.
func (c *Collection[M]) saveBody(item *M) map[string]interface{} {
	if provider, ok := any(item).(SaveBodyProvider); ok {
		return provider.SaveBody()
	}

	return ToWire(c.schema, item)
}

// checkItemView rejects views whose responses cannot be decoded into typed
// items. Use Count and IDs for those modes.
func (c *Collection[M]) checkItemView(params *QueryParams) error {
	switch view := params.effectiveView(); view {
	case ViewCount, ViewIDs:
		return fmt.Errorf("%s view: %w", view, ErrIncompatibleView)
	default:
		return nil
	}
}

func (c *Collection[M]) fetchChunk(ctx context.Context, params *QueryParams, offset, limit int) ([]json.RawMessage, error) {
	resp, err := c.api.Get(ctx, c.Path(), chunkValues(params, offset, limit))
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, fmt.Errorf("decoding chunk: %w", err)
	}

	return items, nil
}

func (c *Collection[M]) fetchIDChunk(ctx context.Context, params *QueryParams, offset, limit int) ([]string, error) {
	resp, err := c.api.Get(ctx, c.Path(), chunkValues(params, offset, limit))
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(resp.Body, &ids); err != nil {
		return nil, fmt.Errorf("decoding id chunk: %w", err)
	}

	return ids, nil
}

func (c *Collection[M]) decodeItem(raw json.RawMessage) (*M, error) {
	item := new(M)
	if err := FromWire(c.schema, item, raw); err != nil {
		return nil, err
	}

	return item, nil
}

// chunkValues renders params with the engine's own offset and limit, leaving
// the caller's copy untouched.
func chunkValues(params *QueryParams, offset, limit int) url.Values {
	query := params.clone()
	query.Offset = 0
	query.Limit = 0

	values := query.Values()
	values.Set("offset", strconv.Itoa(offset))
	values.Set("limit", strconv.Itoa(limit))

	return values
}

func offsetOf(params *QueryParams) int {
	if params == nil {
		return 0
	}

	return params.Offset
}

func limitOf(params *QueryParams) int {
	if params == nil {
		return 0
	}

	return params.Limit
}

// Singleton fetches the one resource living at a fixed endpoint with no id
// and no listing, such as the current account.
type Singleton[M any] struct {
	api    Requester
	schema *Schema[M]
	path   string
}

// NewSingleton creates a singleton accessor for the given fixed path.
func NewSingleton[M any](api Requester, schema *Schema[M], path string) *Singleton[M] {
	return &Singleton[M]{api: api, schema: schema, path: path}
}

// Get fetches the resource and constructs a fresh instance.
func (s *Singleton[M]) Get(ctx context.Context, params *QueryParams) (*M, error) {
	resp, err := s.api.Get(ctx, s.path, params.Values())
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.schema.object, err)
	}

	item := new(M)
	if err := FromWire(s.schema, item, resp.Body); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.schema.object, err)
	}

	return item, nil
}
