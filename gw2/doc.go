// Package gw2 provides a client for the Guild Wars 2 web API (version 2).
//
// Every exposed operation maps to exactly one HTTP GET against a fixed
// endpoint of https://api.guildwars2.com and decodes the JSON response into
// a typed result.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client holding the session (locale, optional token)
//   - Endpoints: the fixed catalog of /v2 path templates
//   - Dispatch: per-call status classification and typed decoding
//   - Errors: structured error types for better error handling
//
// # Usage
//
// Create a client with the locale to request and, for account-bound
// endpoints, an API token:
//
//	logger := zerolog.New(os.Stdout)
//	client := gw2.NewClient("en",
//		gw2.WithToken("your-api-token"),
//		gw2.WithLogger(logger),
//	)
//
//	ctx := context.Background()
//	account, err := client.Account(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Calls return one of a small set of error types:
//
//   - *APIError: a failure documented by the remote API (missing scope,
//     unknown ID, malformed filter); carries the API's message text
//   - *UnexpectedStatusError: the API answered with a status the endpoint
//     does not document
//   - *DecodeError: the body of a successful response did not match the
//     expected shape, which indicates schema drift between client and API
//   - ErrNoToken: an account-bound endpoint was called on a client that
//     has no token configured
//
// Transport failures (DNS, connection reset) are wrapped and returned
// as-is; they are never reinterpreted as API errors.
//
// The client performs no caching, retrying or rate limiting. It is safe
// for concurrent use; all fields are fixed at construction time.
package gw2
