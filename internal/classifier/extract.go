package classifier

import (
	"errors"
	"strings"
)

// ErrNoJSONObject means the raw response contained no brace-delimited
// object at all.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// ExtractJSONObject returns the substring between the first '{' and the
// last '}' of s. Generative models often surround the requested JSON with
// prose; this trims it without attempting to parse the prose.
func ExtractJSONObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", ErrNoJSONObject
	}
	return s[start : end+1], nil
}
