package service

import (
	"net"
	"net/http"
	"strings"

	"biolink/internal/model"
)

var (
	mobileMarkers = []string{"mobile", "android", "iphone"}
	tabletMarkers = []string{"tablet", "ipad"}
)

// NewVisitRequest collects the visit attributes from request headers,
// substituting defaults for absent values
func NewVisitRequest(header http.Header, remoteAddr string) *model.VisitRequest {
	req := &model.VisitRequest{
		ForwardedFor: header.Get("X-Forwarded-For"),
		RemoteAddr:   remoteAddr,
		UserAgent:    header.Get("User-Agent"),
		Referrer:     header.Get("Referer"),
	}
	applyDefaults(req)
	return req
}

func applyDefaults(req *model.VisitRequest) {
	if req.UserAgent == "" {
		req.UserAgent = model.Unknown
	}
	if req.Referrer == "" {
		req.Referrer = model.Direct
	}
}

// ExtractClientIP returns the originating client address: the first
// X-Forwarded-For entry when present, otherwise the connection's remote host
func ExtractClientIP(header http.Header, remoteAddr string) string {
	return clientIP(header.Get("X-Forwarded-For"), remoteAddr)
}

func clientIP(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	remoteAddr = strings.TrimSpace(remoteAddr)
	if remoteAddr == "" {
		return model.Unknown
	}
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

// ClassifyDevice maps a user agent to a device class.
// Mobile markers take precedence over tablet markers.
func ClassifyDevice(userAgent string) model.DeviceClass {
	ua := strings.ToLower(userAgent)
	switch {
	case containsAny(ua, mobileMarkers):
		return model.DeviceMobile
	case containsAny(ua, tabletMarkers):
		return model.DeviceTablet
	default:
		return model.DeviceDesktop
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
