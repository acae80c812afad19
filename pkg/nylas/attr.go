package nylas

import (
	"bytes"
	"math"
	"time"

	json "github.com/goccy/go-json"
)

// dateLayout is the wire format for Date attributes. DateTime attributes use
// fractional Unix epoch seconds instead.
const dateLayout = "2006-01-02"

// Numeric constrains the native field types a Number attribute can bind.
type Numeric interface {
	~int | ~int64 | ~float64
}

// Attribute declares one field of resource type M: the wire key plus the
// coercion between the wire JSON value and the typed native field. Attributes
// are built with the kind constructors below, each closing over a typed field
// accessor, so schemas are checked at compile time and serialization never
// touches reflection.
//
// Decoding is total: an absent key is skipped by the engine, an explicit null
// assigns the kind's zero value, and a malformed value leaves the field
// untouched. Encoding is total for every kind.
type Attribute[M any] struct {
	wireKey string
	decode  func(m *M, raw json.RawMessage)
	encode  func(m *M) interface{}
}

// WireKey returns the JSON key this attribute binds.
func (a Attribute[M]) WireKey() string {
	return a.wireKey
}

// String declares a string attribute.
func String[M any](key string, field func(*M) *string) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			if isNull(raw) {
				*field(m) = ""

				return
			}

			var v string
			if err := json.Unmarshal(raw, &v); err == nil {
				*field(m) = v
			}
		},
		encode: func(m *M) interface{} {
			return *field(m)
		},
	}
}

// Number declares a numeric attribute. The native type may be int, int64, or
// float64; the wire value is always a JSON number.
func Number[M any, N Numeric](key string, field func(*M) *N) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			if isNull(raw) {
				*field(m) = 0

				return
			}

			var v float64
			if err := json.Unmarshal(raw, &v); err == nil {
				*field(m) = N(v)
			}
		},
		encode: func(m *M) interface{} {
			return *field(m)
		},
	}
}

// Bool declares a boolean attribute.
func Bool[M any](key string, field func(*M) *bool) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			if isNull(raw) {
				*field(m) = false

				return
			}

			var v bool
			if err := json.Unmarshal(raw, &v); err == nil {
				*field(m) = v
			}
		},
		encode: func(m *M) interface{} {
			return *field(m)
		},
	}
}

// StringList declares a list-of-strings attribute. Null decodes to an empty
// list, and a nil native slice encodes as an empty JSON array.
func StringList[M any](key string, field func(*M) *[]string) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			if isNull(raw) {
				*field(m) = []string{}

				return
			}

			var v []string
			if err := json.Unmarshal(raw, &v); err == nil {
				*field(m) = v
			}
		},
		encode: func(m *M) interface{} {
			if *field(m) == nil {
				return []string{}
			}

			return *field(m)
		},
	}
}

// Date declares a calendar-date attribute carried as an ISO-8601 date string
// ("2006-01-02"). The zero time encodes as null.
func Date[M any](key string, field func(*M) *time.Time) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			if isNull(raw) {
				*field(m) = time.Time{}

				return
			}

			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return
			}

			if t, err := time.Parse(dateLayout, v); err == nil {
				*field(m) = t
			}
		},
		encode: func(m *M) interface{} {
			t := *field(m)
			if t.IsZero() {
				return nil
			}

			return t.Format(dateLayout)
		},
	}
}

// DateTime declares a timestamp attribute carried as fractional Unix epoch
// seconds. Decoding rounds to the millisecond; the zero time encodes as null.
func DateTime[M any](key string, field func(*M) *time.Time) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			if isNull(raw) {
				*field(m) = time.Time{}

				return
			}

			var secs float64
			if err := json.Unmarshal(raw, &secs); err == nil {
				*field(m) = time.UnixMilli(int64(math.Round(secs * 1000))).UTC()
			}
		},
		encode: func(m *M) interface{} {
			t := *field(m)
			if t.IsZero() {
				return nil
			}

			return epochSeconds(t)
		},
	}
}

// epochSeconds renders a timestamp as fractional Unix epoch seconds with
// millisecond precision.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

// Object declares a nested-record attribute decoded through the given schema.
// Null or a non-object value zeroes the field.
func Object[M, C any](key string, field func(*M) *C, schema *Schema[C]) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			var c C
			if isNull(raw) {
				*field(m) = c

				return
			}

			if err := FromWire(schema, &c, raw); err == nil {
				*field(m) = c
			}
		},
		encode: func(m *M) interface{} {
			return ToWire(schema, field(m))
		},
	}
}

// ObjectList declares a list-of-records attribute. Absent, null, or
// non-array input fails soft to an empty list.
func ObjectList[M, C any](key string, field func(*M) *[]C, schema *Schema[C]) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			if isNull(raw) {
				*field(m) = []C{}

				return
			}

			var elems []json.RawMessage
			if err := json.Unmarshal(raw, &elems); err != nil {
				*field(m) = []C{}

				return
			}

			out := make([]C, 0, len(elems))

			for _, elem := range elems {
				var c C
				if err := FromWire(schema, &c, elem); err != nil {
					continue
				}

				out = append(out, c)
			}

			*field(m) = out
		},
		encode: func(m *M) interface{} {
			items := *field(m)
			out := make([]interface{}, 0, len(items))

			for i := range items {
				out = append(out, ToWire(schema, &items[i]))
			}

			return out
		},
	}
}

// Raw declares an opaque attribute passed through without coercion, for
// free-form payloads like metadata.
func Raw[M any](key string, field func(*M) *map[string]interface{}) Attribute[M] {
	return Attribute[M]{
		wireKey: key,
		decode: func(m *M, raw json.RawMessage) {
			if isNull(raw) {
				*field(m) = nil

				return
			}

			var v map[string]interface{}
			if err := json.Unmarshal(raw, &v); err == nil {
				*field(m) = v
			}
		},
		encode: func(m *M) interface{} {
			return *field(m)
		},
	}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
