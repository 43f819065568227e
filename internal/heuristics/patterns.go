package heuristics

import "regexp"

// Fixed pattern objects, compiled once at startup. Extractors stay pure
// functions over (url, hostname).
var (
	// Dotted-quad anywhere in the URL.
	ipv4Pattern = regexp.MustCompile(`(\d{1,3}\.){3}\d{1,3}`)

	// Letters followed by digits (optionally followed by letters) in the
	// hostname, e.g. paypa1.com or g00gle-mail.net.
	mixedAlnumPattern = regexp.MustCompile(`[a-zA-Z]+[0-9]+[a-zA-Z]*`)

	// High-risk or free TLDs, matched against the end of the hostname.
	riskyTLDPattern = regexp.MustCompile(`(?i)\.(tk|ml|ga|cf|gq|xyz|top|club|link|click|info|ru)$`)

	// Keyword patterns for the non-registrable subdomain prefix.
	subdomainKeywordPattern = regexp.MustCompile(`(?i)login|secure|verify|update`)

	digitsPattern = regexp.MustCompile(`[0-9]`)
)

// phishingKeywords are matched case-insensitively as substrings of the
// whole URL.
var phishingKeywords = []string{
	"login", "secure", "account", "verify", "update", "signin", "password",
	"auth", "bank", "confirm", "security", "id", "credential", "reset",
	"validate", "update-info",
}

// brandList holds brands commonly impersonated in phishing URLs. The
// match is deliberately loose: digits are stripped from the hostname and
// each brand is checked minus its final character, so paypa1.com and
// paypall.com both hit "paypal". Loose by intent; accepted
// false-positive source.
var brandList = []string{
	"paypal", "google", "facebook", "apple", "amazon", "bankofamerica",
	"microsoft", "instagram", "dropbox", "linkedin", "netflix",
}
