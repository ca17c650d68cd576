// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
//
// Two response conventions coexist, both inherited from the API contract the
// mobile client depends on: the register and login endpoints always respond
// with HTTP 200 and carry the outcome in a {status, data} body, while every
// other endpoint uses conventional status codes (401/403/404/...).
package http
