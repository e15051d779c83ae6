package record

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"securenest/internal/domain/validation"
)

const maxURLLen = 2083

var allowedSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ftp":   {},
}

func validateCreate(in CreateInput) error {
	verr := &validation.Error{}
	if strings.TrimSpace(in.Title) == "" {
		verr.Add("title", "Title is required")
	}
	if in.Secret == "" {
		verr.Add("password", "Password is required")
	}
	if in.URL != "" && !ValidURL(in.URL) {
		verr.Add("url", "Invalid URL format")
	}
	return verr.Err()
}

func validatePatch(p Patch) error {
	verr := &validation.Error{}
	if v, ok := p.Title.Get(); ok && strings.TrimSpace(v) == "" {
		verr.Add("title", "Title cannot be empty")
	}
	if v, ok := p.Secret.Get(); ok && v == "" {
		verr.Add("password", "Password cannot be empty")
	}
	if v, ok := p.URL.Get(); ok && v != "" && !ValidURL(v) {
		verr.Add("url", "Invalid URL format")
	}
	return verr.Err()
}

// ValidURL accepts http, https and ftp URLs with a fully qualified host name
// or an IP address. The scheme may be omitted, in which case http is assumed.
func ValidURL(raw string) bool {
	if raw == "" || len(raw) > maxURLLen || strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return false
	}

	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "http://" + strings.TrimPrefix(candidate, "//")
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if _, ok := allowedSchemes[strings.ToLower(u.Scheme)]; !ok {
		return false
	}

	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return false
		}
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	return isFQDN(host)
}

func isFQDN(host string) bool {
	host = strings.TrimSuffix(host, ".")
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}

	tld := labels[len(labels)-1]
	if !strings.HasPrefix(strings.ToLower(tld), "xn--") {
		if len(tld) < 2 {
			return false
		}
		for _, r := range tld {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}

	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}
