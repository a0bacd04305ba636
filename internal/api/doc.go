// Package api handles incoming HTTP requests for the books resource: request
// validation, response formatting and the mapping of service errors to HTTP
// statuses. It acts as an adapter between external clients and the internal
// application services.
package api
