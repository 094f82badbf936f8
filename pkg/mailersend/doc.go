// Package mailersend provides request builders, resource client interfaces
// and the response Envelope for the MailerSend email and SMS API.
//
// # Overview
//
// Requests are assembled by builders (EmailBuilder, DomainsBuilder,
// SMSBuilder, ...). Setters validate their argument immediately; the first
// failure sticks and is returned by every Build method, so a chain can be
// written without checking each step. Build methods return immutable request
// values that the resource clients accept. A concrete Client is provided by
// the msclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
//	  "github.com/fivetwenty-io/mailersend-go/pkg/msclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := msclient.New(ctx, &mailersend.Config{APIKey: "mlsn.xxx"})
//	  if err != nil { log.Fatal(err) }
//
//	  email, err := mailersend.NewEmailBuilder().
//	    From("info@example.com", "Example").
//	    To("jane@example.org", "Jane").
//	    Subject("Hello").
//	    Text("Hi Jane").
//	    Build()
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Emails().Send(ctx, email)
//	  if err != nil { log.Fatal(err) }
//	  id, _ := resp.Get("id")
//	  _ = id
//	}
//
// # Responses
//
// Every HTTP response becomes an Envelope, including 4xx and 5xx answers;
// check Success or Err. Fields are reachable by key (Get("status_code")),
// by body field (Field("data_id") or Field("id")) and by Path for nested
// values. Headers are matched without regard to case or to "-" versus "_".
//
// # Errors
//
// Builder failures are *ValidationError, network failures *TransportError
// and unknown keys *KeyError. They match ErrValidation, ErrTransport and
// ErrKeyNotPresent with errors.Is. Envelope.Err converts an unsuccessful
// response into an *APIError for callers who prefer error values; helpers
// such as IsRateLimited and IsUnprocessable branch on it.
package mailersend
