// Package msclient is the entry point for constructing a MailerSend API
// client that implements the mailersend.Client interface.
//
// It normalizes the configuration, resolves the API key and wires the HTTP
// transport behind the resource clients defined in the mailersend package.
// Most applications import msclient to build a client, then use builders from
// the mailersend package to create requests for it.
//
// Quick start
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
//
//	  // The key falls back to MAILERSEND_API_KEY when empty.
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
//	  env, err := cli.Emails().Send(ctx, email)
//	  if err != nil { log.Fatal(err) } // transport failure
//	  if apiErr := env.Err(); apiErr != nil { log.Fatal(apiErr) } // non-2xx
//	}
//
// Every call returns a *mailersend.Envelope for any HTTP status. Only
// transport failures, missing identifiers and nil requests are returned as
// errors.
package msclient
