package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]+)(")`)
	reToken    = regexp.MustCompile(`(?i)(token"\s*:\s*")([^"]+)(")`)
	reBearer   = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// It covers JSON password/token fields and Authorization header values so
// request/response logging never leaks credentials.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***$3")
	out = reToken.ReplaceAllString(out, "$1***$3")
	out = reBearer.ReplaceAllString(out, "$1***")
	// Env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"DAMA_TOKEN", "ACCESS_TOKEN"} {
		if idx := strings.Index(out, k+"="); idx >= 0 {
			end := idx + len(k) + 1
			rest := out[end:]
			if sp := strings.IndexAny(rest, " ;\n"); sp >= 0 {
				out = out[:end] + "***" + rest[sp:]
			} else {
				out = out[:end] + "***"
			}
		}
	}
	return out
}
