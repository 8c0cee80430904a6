// Package dropbox provides the core plumbing shared by every Dropbox v2
// namespace client: the bearer token holder, the three call styles, and the
// response envelope.
//
// The Dropbox v2 API splits its routes across three hosts. RPC routes take a
// JSON body on the api host; upload routes put the JSON arg in the
// Dropbox-API-Arg header and the raw bytes in the body; download routes
// return the JSON result in the Dropbox-API-Result header and the payload in
// the body. The unauthenticated longpoll route lives on the notify host.
//
// Every call follows the same envelope convention: a 200 response decodes
// into the typed result, anything else becomes an *APIError wrapping the
// parsed error body. There is no retry, backoff, caching, or client-side
// polling anywhere in this library; cancellation and deadlines are the
// caller's via context.Context and the injected http.Client.
//
// # Usage
//
//	core, err := dropbox.NewClient(token, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fc := files.NewClient(core, logger)
//
//	res, err := fc.Copy(ctx, files.RelocationArg{FromPath: "/a.txt", ToPath: "/b.txt"})
//	var apiErr *dropbox.APIError
//	if errors.As(err, &apiErr) && apiErr.IsConflict() {
//	    // the decoded error body is in apiErr
//	}
package dropbox
