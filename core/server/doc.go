// Package server holds the HTTP server configuration.
//
// The `start` command serves the balance rebuild over HTTP; this package
// defines where it listens, the API key protecting it and the upload size limit.
package server
