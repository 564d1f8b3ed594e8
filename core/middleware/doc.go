// Package middleware contains HTTP middleware for the Fiber application.
//
//   - auth: API key validation (X-API-Key) protecting the balance endpoints.
//   - rayid: a request id (X-Ray-ID) stored in locals and echoed in responses,
//     picked up by logger.WithRayID.
package middleware
