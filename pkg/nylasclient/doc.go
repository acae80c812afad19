// Package nylasclient provides the primary entry point for constructing an
// API client that implements the nylas.Client interface.
//
// It layers configuration and the HTTP dispatcher on top of the schemas and
// collection engine defined in the nylas package. Most applications should
// import nylasclient to build a client, then use the returned nylas.Client
// to access resource-specific services, for example Calendars(), Events(),
// Messages(), etc.
//
// Quick start
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
//
//	  // Minimal: one connected account's access token.
//	  cli, err := nylasclient.NewWithToken("nylas-access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full application credentials for hosted auth and the
//	  // account-management endpoints:
//	  cli, err = nylasclient.New(&nylas.Config{
//	    ClientID:     "app-client-id",
//	    ClientSecret: "app-client-secret",
//	    AccessToken:  "nylas-access-token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource services via the nylas.Client interface
//	  calendars, err := cli.Calendars().List(ctx, nylas.NewQueryParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = calendars
//	}
//
// # Base URL
//
// Config.BaseURL defaults to the hosted API. Point it somewhere else for
// testing or for a regional deployment; a URL without a scheme is assumed
// to be HTTPS, and a trailing slash is stripped.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithCredentials that wrap New with the appropriate configuration.
package nylasclient
