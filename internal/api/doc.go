// Package api contains the HTTP route layer: request/response models,
// handlers for the entry CRUD routes and the statistics route, and the
// mapping from internal errors to HTTP status codes.
package api
