package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// TrustedRealIP rewrites r.RemoteAddr from X-Real-IP or X-Forwarded-For, but
// only when the connection comes from a trusted proxy. Otherwise RemoteAddr
// is reduced to its host part and the headers are ignored, so clients cannot
// spoof their address to dodge rate limiting.
//
// trusted entries may be CIDRs ("10.0.0.0/8") or single addresses.
func TrustedRealIP(trusted []string) func(http.Handler) http.Handler {
	// Parse trusted prefixes once at startup
	var prefixes []netip.Prefix
	for _, entry := range trusted {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if p, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		slog.Warn("realip: invalid trusted proxy, skipping", "entry", entry)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remote, ok := parseAddr(r.RemoteAddr)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			r.RemoteAddr = remote.String()

			if isTrusted(remote, prefixes) {
				if ip, ok := forwardedIP(r); ok {
					r.RemoteAddr = ip.String()
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// forwardedIP returns the client address claimed by proxy headers.
// X-Real-IP wins; otherwise the first X-Forwarded-For entry is used.
func forwardedIP(r *http.Request) (netip.Addr, bool) {
	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		addr, err := netip.ParseAddr(strings.TrimSpace(rip))
		return addr.Unmap(), err == nil
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		addr, err := netip.ParseAddr(strings.TrimSpace(first))
		return addr.Unmap(), err == nil
	}
	return netip.Addr{}, false
}

// parseAddr parses "host:port" or a bare IP.
func parseAddr(s string) (netip.Addr, bool) {
	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func isTrusted(addr netip.Addr, prefixes []netip.Prefix) bool {
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
