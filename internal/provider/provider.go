package provider

import (
	"context"
	"strings"
)

// Platform identifies one of the supported rating sources.
type Platform string

const (
	LeetCode   Platform = "leetcode"
	Codeforces Platform = "codeforces"
	CodeChef   Platform = "codechef"
	AtCoder    Platform = "atcoder"
)

// Platforms lists the supported platforms in a stable order.
var Platforms = []Platform{LeetCode, Codeforces, CodeChef, AtCoder}

// NormalizePlatform trims and lowercases a raw platform identifier. The
// normalized form is what unsupported-platform records echo back.
func NormalizePlatform(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParsePlatform matches a raw identifier against the closed platform set.
func ParsePlatform(raw string) (Platform, bool) {
	switch p := Platform(NormalizePlatform(raw)); p {
	case LeetCode, Codeforces, CodeChef, AtCoder:
		return p, true
	default:
		return "", false
	}
}

// Adapter translates one external source's response into a Record.
//
// Fetch never returns an error: every failure path — timeout, connection
// failure, missing user, malformed payload — is folded into the record's
// Status and Error fields. Each call issues exactly one outbound request
// with no retries.
type Adapter interface {
	Platform() Platform
	Fetch(ctx context.Context, username string) Record
}
