package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Unknown is the key used when no origin address can be determined.
const Unknown = "unknown"

// GetIP returns the client's IP address from the request, checking in order:
//  1. X-Forwarded-For (first valid entry)
//  2. X-Real-IP
//  3. RemoteAddr
//
// It returns "" when none of them holds a valid address.
func GetIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if parsed := parseIP(r.Header.Get("X-Real-IP")); parsed != "" {
		return parsed
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Key returns the rate-limit identity for r: its client IP, or Unknown.
// All requests without a determinable origin share the Unknown bucket.
func Key(r *http.Request) string {
	if ip := GetIPFromContext(r.Context()); ip != "" {
		return ip
	}
	if ip := GetIP(r); ip != "" {
		return ip
	}
	return Unknown
}

// parseIP validates and normalizes an IP address string.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}
	return ip.String()
}
