// Package nylas provides types, schemas, and helpers for working with the
// Nylas v2 email and calendar API.
//
// # Overview
//
// The nylas package defines the domain types (e.g., Calendar, Event, Message,
// Draft, Account) together with the generic machinery they are built on: a
// declarative attribute schema per resource, a schema-driven wire codec, and a
// generic Collection engine that handles chunked pagination, count/id views,
// and item mutation uniformly for every resource. A concrete client is
// constructed by the nylasclient package, which wires configuration,
// transport, and authentication. Most consumers should import nylasclient to
// build a client and then work with the services exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/Towerism/nylas-go/pkg/nylas"
//	  "github.com/Towerism/nylas-go/pkg/nylasclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := nylasclient.New(&nylas.Config{AccessToken: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // List up to 50 calendars
//	  cals, err := cli.Calendars().List(ctx, nylas.NewQueryParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = cals
//	}
//
// # Queries and pagination
//
// Use QueryParams to express list options (offset, limit, expanded view,
// resource-specific filters). Collections fetch in fixed 100-item chunks,
// strictly sequentially; List bounds the total, ForEach streams items as
// chunks arrive, Count and IDs request the server-side count and id views:
//
//	err := cli.Events().ForEach(ctx, nylas.NewQueryParams().WithFilter("calendar_id", calID),
//	  func(ev *nylas.Event) error {
//	    _ = ev
//	    return nil
//	  })
//
// # Errors
//
// API failures are represented by RequestError, which carries the HTTP status
// code and the server-reported message. Helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited make it easy to branch on common cases.
// Precondition violations (missing id, incompatible view) are reported
// synchronously, before any request is sent.
//
// # Schemas
//
// Every resource declares its wire mapping once, as an ordered list of typed
// attribute descriptors (see attr.go). FromWire and ToWire drive serialization
// off that list; there is no reflection and no struct-tag magic on the wire
// path. Resources that restrict their save payload implement SaveBodyProvider.
package nylas
