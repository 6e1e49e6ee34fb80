// Package http provides HTTP handlers and middleware for the classroom
// reservation API.
//
// The router exposes the following endpoints:
//   - GET /: health check reporting database reachability and server time.
//   - GET /api/rooms: the static classroom catalog.
//   - GET /api/rooms/{roomId}/schedule?date=YYYY-MM-DD: the composed daily
//     schedule for one room, merging recurring lectures with that date's
//     reservations into the list and grid shapes defined in
//     schedule_handler.go.
//   - POST /api/reservations: registers an ad-hoc reservation. Overlapping
//     requests for the same room and date are rejected with 409.
//   - POST /api/chat: relays a free-text question to the configured
//     assistant endpoint and returns its reply.
//
// Every endpoint answers with the `{success, message?, data?, errors?}`
// envelope defined in responder.go. Request/response DTOs live alongside
// their respective handlers so tests and documentation share the same ground
// truth.
package http
