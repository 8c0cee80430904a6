// Package paper provides a client for the paper namespace of the Dropbox
// v2 API: creating, updating, exporting, listing, and permanently deleting
// Paper docs.
//
// Create and update are upload-style calls (document bytes in the body,
// JSON arg in the Dropbox-API-Arg header) and download is a download-style
// call, but all of them go to the api host rather than the content host.
package paper
