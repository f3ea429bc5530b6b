// Package api contains the HTTP handlers for the task tracker's REST
// endpoints, the request/response DTOs, and the mapping from service
// errors to HTTP status codes.
package api
