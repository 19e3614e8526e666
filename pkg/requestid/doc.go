// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client supplied X-Request-ID header when it is short and
// made of [a-zA-Z0-9_-], otherwise it generates a UUIDv4. The id is stored in
// the request context (FromContext) and echoed in the response header so that
// a visitor reporting a failed contact submission can quote it.
//
// LoggerExtractor plugs into pkg/logger so the id lands on every log line
// written with the request context.
package requestid
