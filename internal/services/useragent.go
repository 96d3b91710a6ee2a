package services

import "strings"

type uaRule struct {
	patterns []string
	category string
}

// Ordered rule sets, first match wins. Android user agents match the "linux"
// rule before their own, mirroring the dashboard's expectations.
var (
	deviceRules = []uaRule{
		{[]string{"mobile"}, "Mobile"},
		{[]string{"tablet"}, "Tablet"},
	}
	osRules = []uaRule{
		{[]string{"windows"}, "Windows"},
		{[]string{"macintosh", "mac os x"}, "macOS"},
		{[]string{"linux"}, "Linux"},
		{[]string{"android"}, "Android"},
		{[]string{"ios", "iphone", "ipad"}, "iOS"},
	}
	browserRules = []uaRule{
		{[]string{"chrome", "crios"}, "Chrome"},
		{[]string{"firefox", "fxios"}, "Firefox"},
		{[]string{"safari"}, "Safari"},
		{[]string{"edg"}, "Edge"},
	}
)

func matchRules(ua string, rules []uaRule, fallback string) string {
	for _, rule := range rules {
		for _, p := range rule.patterns {
			if strings.Contains(ua, p) {
				return rule.category
			}
		}
	}
	return fallback
}

// ClassifyUserAgent derives device, OS and browser categories from a raw
// user-agent string via case-insensitive substring matching.
func ClassifyUserAgent(userAgent string) (device, os, browser string) {
	ua := strings.ToLower(userAgent)
	device = matchRules(ua, deviceRules, "Desktop")
	os = matchRules(ua, osRules, "Unknown OS")
	browser = matchRules(ua, browserRules, "Unknown Browser")
	return device, os, browser
}
