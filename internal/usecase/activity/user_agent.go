package activity

import "strings"

// browserTokens is checked in order; Chromium based browsers also announce Chrome and Safari
var browserTokens = []struct {
	token string
	name  string
}{
	{"Edg/", "Edge"},
	{"OPR/", "Opera"},
	{"Firefox/", "Firefox"},
	{"Chrome/", "Chrome"},
	{"CriOS/", "Chrome"},
	{"Safari/", "Safari"},
	{"PostmanRuntime/", "Postman"},
	{"curl/", "curl"},
}

// ParseUserAgent derives a browser family and a device class from a User-Agent header
func ParseUserAgent(ua string) (browser, device string) {
	if strings.TrimSpace(ua) == "" {
		return "Unknown", "Unknown"
	}

	browser = "Other"
	for _, b := range browserTokens {
		if strings.Contains(ua, b.token) {
			browser = b.name
			break
		}
	}

	switch {
	case strings.Contains(ua, "iPad"), strings.Contains(ua, "Tablet"),
		strings.Contains(ua, "Android") && !strings.Contains(ua, "Mobile"):
		device = "Tablet"
	case strings.Contains(ua, "Mobile"), strings.Contains(ua, "iPhone"):
		device = "Mobile"
	default:
		device = "Desktop"
	}
	return browser, device
}
