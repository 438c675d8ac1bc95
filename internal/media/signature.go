package media

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// Signature computes the request signature for an authenticated upload:
// parameters with empty values are dropped, the rest are sorted by name,
// joined as name=value pairs with "&", the raw secret is appended and the
// SHA-1 digest is rendered as lowercase hex. Deterministic and independent
// of the map's iteration order.
func Signature(params map[string]string, secret string) string {
	names := make([]string, 0, len(params))
	for name, value := range params {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+params[name])
	}

	toSign := strings.Join(pairs, "&") + secret
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
