// Package clientip resolves the originating client address of an HTTP request
// served behind a reverse proxy or CDN.
//
// Resolution order:
//
//  1. X-Forwarded-For, first entry that parses as an IP
//  2. X-Real-IP
//  3. RemoteAddr
//
// Key wraps GetIP with the "unknown" fallback used as the rate-limit identity.
// Middleware caches the resolved address in the request context.
//
// Forwarding headers are client controlled unless the edge proxy overwrites
// them. Deploy behind a proxy that does.
package clientip
