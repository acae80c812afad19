package nylas

import (
	"fmt"
	"net/url"

	json "github.com/goccy/go-json"
)

// Resource is the embedded base of every addressable API resource. The three
// fields ride along in every schema via the base descriptors NewSchema adds.
type Resource struct {
	ID        string `json:"id"         yaml:"id"`
	Object    string `json:"object"     yaml:"object"`
	AccountID string `json:"account_id" yaml:"account_id"`
}

// Schema binds a resource type to its wire object name, its URL collection
// segment, and its ordered attribute list. A schema is built once per type,
// at package init, and shared by every instance; it is never mutated after
// construction.
type Schema[M any] struct {
	object     string
	collection string
	base       func(*M) *Resource
	attrs      []Attribute[M]
}

// NewSchema declares the schema of an addressable resource. The id, object,
// and account_id descriptors are added for the embedded Resource, followed by
// the given attributes in order.
func NewSchema[M any](object, collection string, base func(*M) *Resource, attrs ...Attribute[M]) *Schema[M] {
	all := make([]Attribute[M], 0, len(attrs)+3)
	all = append(all,
		String("id", func(m *M) *string { return &base(m).ID }),
		String("object", func(m *M) *string { return &base(m).Object }),
		String("account_id", func(m *M) *string { return &base(m).AccountID }),
	)
	all = append(all, attrs...)

	return &Schema[M]{
		object:     object,
		collection: collection,
		base:       base,
		attrs:      all,
	}
}

// NewObjectSchema declares the schema of a nested record that is not
// addressable on its own (no id, no collection endpoint), such as an event
// participant. ToWire does not inject an object name for these; if the wire
// shape carries one, declare it as an ordinary attribute.
func NewObjectSchema[M any](attrs ...Attribute[M]) *Schema[M] {
	return &Schema[M]{attrs: attrs}
}

// ObjectName returns the wire object type name, e.g. "calendar".
func (s *Schema[M]) ObjectName() string {
	return s.object
}

// CollectionName returns the URL collection segment, e.g. "calendars".
func (s *Schema[M]) CollectionName() string {
	return s.collection
}

// Equal reports resource identity: both instances present and carrying the
// same non-empty id. Detached unsaved instances are never equal.
func (s *Schema[M]) Equal(a, b *M) bool {
	if s.base == nil || a == nil || b == nil {
		return false
	}

	idA := s.base(a).ID

	return idA != "" && idA == s.base(b).ID
}

// FromWire updates m field-by-field from a wire-format JSON object. Keys
// absent from the payload leave the corresponding fields untouched, which
// gives save its partial-update semantics; explicit nulls assign kind-zero
// values; unknown keys are ignored. Returns the error only for malformed
// JSON.
func FromWire[M any](schema *Schema[M], m *M, raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("decoding %s: %w", schema.describe(), err)
	}

	for _, attr := range schema.attrs {
		rawVal, ok := fields[attr.wireKey]
		if !ok {
			continue
		}

		attr.decode(m, rawVal)
	}

	return nil
}

// ToWire builds the wire-format object for m: every declared attribute keyed
// by its wire key, plus the schema's object type name for addressable
// resources. Resources that need a narrower payload on save implement
// SaveBodyProvider instead of overriding this.
func ToWire[M any](schema *Schema[M], m *M) map[string]interface{} {
	out := make(map[string]interface{}, len(schema.attrs)+1)

	for _, attr := range schema.attrs {
		out[attr.wireKey] = attr.encode(m)
	}

	if schema.object != "" {
		out["object"] = schema.object
	}

	return out
}

// SaveBodyProvider restricts or reshapes the payload sent by save. Resources
// whose endpoints accept only a subset of fields (e.g. a calendar's
// name/description/location/timezone) implement this; everything else saves
// its full ToWire form.
type SaveBodyProvider interface {
	SaveBody() map[string]interface{}
}

// DeleteBodyProvider attaches a request body to delete calls, for endpoints
// with delete side-channels such as a draft's version check.
type DeleteBodyProvider interface {
	DeleteBody() map[string]interface{}
}

// DeleteQueryProvider attaches query parameters to delete calls. Values
// returned here are merged over the caller's params.
type DeleteQueryProvider interface {
	DeleteQuery() url.Values
}

func (s *Schema[M]) describe() string {
	if s.object != "" {
		return s.object
	}

	return "record"
}
