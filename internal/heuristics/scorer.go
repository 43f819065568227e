package heuristics

import "fmt"

// Rule weights. The two hyphen rules are independent and additive:
// a multi-hyphen hostname collects both.
const (
	weightLongURL            = 15
	weightAtSymbol           = 25
	weightIPAddress          = 35
	weightDeepPath           = 10
	weightHyphen             = 10
	weightMultipleHyphens    = 10
	weightBrandImpersonation = 40
	weightMixedAlnum         = 15
	weightRiskyTLD           = 15
	weightPunycode           = 20
	weightMultipleKeywords   = 10
	weightSubdomainKeyword   = 15
)

const longURLThreshold = 75

// sentinelReason is recorded when no rule triggers, so reasons are
// never empty.
const sentinelReason = "No suspicious patterns detected"

// Result is the outcome of heuristic analysis: a clamped 0-100 score
// and one reason per triggered rule, in evaluation order.
type Result struct {
	Score   int
	Reasons []string
}

// Analyze runs every extractor against the URL, sums the triggered
// weights and clamps the total to [0, 100]. It is pure: identical input
// always yields identical output.
func Analyze(rawURL string) Result {
	score := 0
	var reasons []string
	hostname := Hostname(rawURL)
	subdirCount := CountSubdirectories(rawURL)

	if len(rawURL) > longURLThreshold {
		score += weightLongURL
		reasons = append(reasons, "Long URL length (> 75 chars)")
	}

	if containsAt(rawURL) {
		score += weightAtSymbol
		reasons = append(reasons, `Contains "@" symbol (obfuscation)`)
	}

	if ContainsIPAddress(rawURL) {
		score += weightIPAddress
		reasons = append(reasons, "Uses IP address instead of domain name")
	}

	if subdirCount > 5 {
		score += weightDeepPath
		reasons = append(reasons, fmt.Sprintf("Excessive subdirectories (%d)", subdirCount))
	}

	hyphens := hyphenCount(hostname)
	if hyphens > 0 {
		score += weightHyphen
		reasons = append(reasons, "Contains hyphen in domain")
	}
	if hyphens > 1 {
		score += weightMultipleHyphens
		reasons = append(reasons, "Multiple hyphens in domain")
	}

	if brand := fuzzyBrandMatch(hostname); brand != "" && CountPhishingKeywords(rawURL) > 0 {
		score += weightBrandImpersonation
		reasons = append(reasons, fmt.Sprintf("Possible brand impersonation (e.g., %s)", brand))
	}

	if mixedAlnumPattern.MatchString(hostname) {
		score += weightMixedAlnum
		reasons = append(reasons, "Suspicious use of numbers in domain")
	}

	if riskyTLDPattern.MatchString(hostname) {
		score += weightRiskyTLD
		reasons = append(reasons, "High-risk or free domain extension")
	}

	if hasPunycode(hostname) {
		score += weightPunycode
		reasons = append(reasons, "Punycode/IDN detected (possible homograph attack)")
	}

	if kw := CountPhishingKeywords(rawURL); kw > 1 {
		score += weightMultipleKeywords
		reasons = append(reasons, fmt.Sprintf("Multiple phishing keywords in URL path (%d)", kw))
	}

	if suspiciousSubdomain(hostname) {
		score += weightSubdomainKeyword
		reasons = append(reasons, "Suspicious subdomain pattern detected")
	}

	if score > 100 {
		score = 100
	}
	if len(reasons) == 0 {
		reasons = append(reasons, sentinelReason)
	}
	return Result{Score: score, Reasons: reasons}
}
