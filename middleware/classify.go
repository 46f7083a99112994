package middleware

import (
	"strings"

	"github.com/Maetry/website/i18n"
)

// RouteClass is the edge router's classification of an incoming request.
type RouteClass int

const (
	// RouteSystem bypasses the edge router entirely (API, assets, health).
	RouteSystem RouteClass = iota
	// RouteShortlink arrived on the dedicated short-link host.
	RouteShortlink
	// RouteLocalePrefixed already carries a supported locale segment.
	RouteLocalePrefixed
	// RouteBare needs a locale redirect.
	RouteBare
)

// Classification is the result of classifying host+path.
type Classification struct {
	Class RouteClass
	// Locale is the path's locale segment, set for RouteLocalePrefixed only.
	Locale i18n.Locale
}

// systemPathPrefixes are reserved paths the edge router never touches.
var systemPathPrefixes = []string{
	"/api",
	"/assets",
	"/.well-known",
	"/health",
	"/cache",
	"/swagger",
}

// IsSystemPath reports whether a path belongs to the reserved system surface.
func IsSystemPath(pathname string) bool {
	for _, prefix := range systemPathPrefixes {
		if strings.HasPrefix(pathname, prefix) {
			return true
		}
	}
	return pathname == "/favicon.ico"
}

// NormalizeHost strips an http/https scheme prefix and lowercases the rest.
// Hosts are case-insensitive per HTTP convention.
func NormalizeHost(host string) string {
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.ToLower(host)
}

// isLoopbackHost reports whether a normalized host is a loopback address,
// with or without a port.
func isLoopbackHost(host string) bool {
	hostname := host
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.HasPrefix(host, "[") {
		hostname = host[:i]
	}
	if strings.HasPrefix(host, "[") {
		// bracketed IPv6, e.g. [::1]:3000
		if end := strings.Index(host, "]"); end != -1 {
			hostname = host[1:end]
		}
	}
	switch hostname {
	case "localhost", "127.0.0.1", "::1", "0.0.0.0":
		return true
	}
	return false
}

// IsShortlinkHost reports whether host is the configured short-link host.
// Loopback hosts never match, whatever the configured value, so local
// development is never misrouted into the link-resolution flow.
func IsShortlinkHost(host, shortlinkHost string) bool {
	normalized := NormalizeHost(host)
	if isLoopbackHost(normalized) {
		return false
	}
	return normalized == NormalizeHost(shortlinkHost)
}

// localePrefix returns the path's leading locale segment, if any.
func localePrefix(pathname string) (i18n.Locale, bool) {
	trimmed := strings.TrimPrefix(pathname, "/")
	segment, _, _ := strings.Cut(trimmed, "/")
	if i18n.IsSupported(segment) {
		return i18n.Locale(segment), true
	}
	return "", false
}

// Classify decides how the edge router treats a request: reserved system
// path, short-link host, already locale-prefixed, or bare.
func Classify(host, pathname, shortlinkHost string) Classification {
	if IsSystemPath(pathname) {
		return Classification{Class: RouteSystem}
	}
	if IsShortlinkHost(host, shortlinkHost) {
		return Classification{Class: RouteShortlink}
	}
	if locale, ok := localePrefix(pathname); ok {
		return Classification{Class: RouteLocalePrefixed, Locale: locale}
	}
	return Classification{Class: RouteBare}
}
