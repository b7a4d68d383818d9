package fetcher

import (
	"fmt"
	"net"
	"net/url"
)

// validateURL validates a URL for security before making an HTTP request.
// It prevents Server-Side Request Forgery by allowing only http/https
// schemes and, when denyPrivateIPs is true, rejecting hostnames that
// resolve to loopback, private, or link-local addresses.
func validateURL(urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	// DNS resolution catches URLs whose hostname points into the internal network.
	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", ErrInvalidURL, hostname, err)
	}

	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname '%s' resolves to private IP %s", ErrPrivateIP, hostname, ip.String())
		}
	}

	return nil
}

// isPrivateIP checks if an IP address is in a private, loopback, or
// link-local range. Supports both IPv4 and IPv6.
func isPrivateIP(ip net.IP) bool {
	// 127.0.0.0/8, ::1
	if ip.IsLoopback() {
		return true
	}

	// 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16, fc00::/7
	if ip.IsPrivate() {
		return true
	}

	// 169.254.0.0/16, fe80::/10
	if ip.IsLinkLocalUnicast() {
		return true
	}

	return false
}
