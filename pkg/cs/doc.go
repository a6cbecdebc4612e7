// Package cs provides types, interfaces, and helpers for working with the
// Container Security registry API.
//
// # Overview
//
// The cs package defines the opaque Record type, the resource client
// interfaces (ReportsClient, RepositoriesClient, UsageClient) and the shared
// request infrastructure: parameter validation and a lazy offset/limit
// Iterator. A concrete implementation is provided by the csclient package.
//
// Getting a client
//
//	cli, err := csclient.New(&cs.Config{AccessKey: ak, SecretKey: sk})
//	if err != nil { log.Fatal(err) }
//
//	report, err := cli.Reports().Report(ctx, "sha256:...")
//
// # Pagination
//
// Repository listing returns an Iterator. Construction performs no request;
// pages are fetched as the iterator advances:
//
//	it, err := cli.Repositories().List(ctx, cs.NewRepositoryQuery().WithContains("ubuntu"))
//	if err != nil { /* validation error */ }
//	for repo, err := range it.Seq() {
//	  if err != nil { break }
//	  _ = repo
//	}
//
// Iteration ends when a page holds fewer items than the page size or when
// the optional page cap is reached.
//
// # Errors
//
// ValidationError is returned before any request for bad input.
// ResponseError carries non-2xx responses and ParseError malformed bodies.
// IsNotFound, IsUnauthorized and IsForbidden branch on common cases.
package cs
