package request

import "strings"

const (
	ClientTypeWeb    = "web"
	ClientTypeMobile = "mobile"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls
// back to sniffing the User-Agent. Web clients get cookie-based tokens,
// mobile clients carry tokens in the response body.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case ClientTypeWeb:
		return ClientTypeWeb
	case ClientTypeMobile:
		return ClientTypeMobile
	}

	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "okhttp") || strings.Contains(ua, "dart") || strings.Contains(ua, "cfnetwork") {
		return ClientTypeMobile
	}
	return ClientTypeWeb
}

func IsWebClient(clientType string) bool {
	return clientType == ClientTypeWeb
}
