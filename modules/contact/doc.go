// Package contact implements the contact form endpoint.
//
// A request passes through four steps, each owned by a separate piece:
//
//   - admission: a ratelimit.Limiter keyed by client IP
//   - parsing and validation: Validate turns the decoded JSON into a sanitized
//     Submission or a FieldErrors map
//   - dispatch: Dispatcher renders the notification and sends it through the
//     first configured email.Strategy
//   - response: Handler maps every outcome to a JSON Response
//
// Dispatch does not cascade. When the selected strategy fails the request
// fails, even if a later strategy is configured.
package contact
