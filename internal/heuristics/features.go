package heuristics

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Feature extractors. Each is a pure function over the raw URL and/or
// its hostname; parse failures degrade to empty values so the scorer
// always produces a total.

// Hostname extracts the hostname from a raw URL, or "" when the URL
// does not parse.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// ContainsIPAddress reports whether the URL embeds a dotted-quad IPv4
// address.
func ContainsIPAddress(rawURL string) bool {
	return ipv4Pattern.MatchString(rawURL)
}

// CountSubdirectories counts non-empty path segments, or 0 when the URL
// does not parse.
func CountSubdirectories(rawURL string) int {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0
	}
	n := 0
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}

// containsAt reports the "@" obfuscation trick, where everything before
// the "@" is discarded by the browser when resolving the host.
func containsAt(rawURL string) bool {
	return strings.Contains(rawURL, "@")
}

// CountPhishingKeywords counts how many keywords from the fixed list
// appear in the URL, case-insensitively.
func CountPhishingKeywords(rawURL string) int {
	lower := strings.ToLower(rawURL)
	n := 0
	for _, word := range phishingKeywords {
		if strings.Contains(lower, word) {
			n++
		}
	}
	return n
}

// fuzzyBrandMatch strips digits from the hostname, lower-cases it, and
// returns the first brand whose name minus its last character is a
// substring. Returns "" when nothing matches.
func fuzzyBrandMatch(hostname string) string {
	cleaned := strings.ToLower(digitsPattern.ReplaceAllString(hostname, ""))
	for _, brand := range brandList {
		if strings.Contains(cleaned, brand[:len(brand)-1]) {
			return brand
		}
	}
	return ""
}

// hasPunycode reports an IDN marker in the hostname, a common homograph
// attack vector.
func hasPunycode(hostname string) bool {
	return strings.Contains(hostname, "xn--")
}

func hyphenCount(hostname string) int {
	return strings.Count(hostname, "-")
}

// suspiciousSubdomain reports whether the non-registrable prefix of the
// hostname matches a credential-themed keyword. The registrable domain
// comes from the public suffix list; when the lookup fails the last two
// labels stand in for it.
func suspiciousSubdomain(hostname string) bool {
	labels := strings.Split(hostname, ".")
	if len(labels) <= 2 {
		return false
	}
	prefix := strings.Join(labels[:len(labels)-2], ".")
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(hostname); err == nil {
		if rest, ok := strings.CutSuffix(hostname, "."+etld1); ok {
			prefix = rest
		}
	}
	return subdomainKeywordPattern.MatchString(prefix)
}
