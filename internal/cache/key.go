package cache

import (
	"fmt"
	"sort"
	"strings"
)

// Key derives a deterministic request identity for a base URL and a set of
// query parameters. Each parameter is rendered as "name_value", the rendered
// tokens are sorted, joined with "_", and prefixed with the base URL, so the
// same URL and parameters always produce the same key regardless of map
// iteration order. A plain page fetch passes no parameters and its identity
// is the URL itself.
//
// The "_" separator is not escaped; parameter values containing it could in
// principle collide. Known limitation, accepted for this key shape.
func Key(baseURL string, params map[string]string) string {
	if len(params) == 0 {
		return baseURL
	}
	tokens := make([]string, 0, len(params))
	for name, value := range params {
		tokens = append(tokens, fmt.Sprintf("%s_%s", name, value))
	}
	sort.Strings(tokens)
	return baseURL + "_" + strings.Join(tokens, "_")
}
