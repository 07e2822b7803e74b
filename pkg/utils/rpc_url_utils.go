package utils

import (
	"net/url"
	"strings"
)

const redacted = "REDACTED"

// apiKeyPathPrefixes are the path segments hosted providers put right before the API key
var apiKeyPathPrefixes = map[string]bool{
	"v2": true,
	"v3": true,
}

// RedactRPCURL hides the credentials an RPC endpoint can carry: userinfo, query values
// and the key segment of provider paths such as /v2/<key>. Unparseable input is returned as is.
func RedactRPCURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	if u.User != nil {
		u.User = url.User(redacted)
	}
	if u.RawQuery != "" {
		query := u.Query()
		for key := range query {
			query.Set(key, redacted)
		}
		u.RawQuery = query.Encode()
	}

	segments := strings.Split(u.Path, "/")
	for i := 1; i < len(segments); i++ {
		if apiKeyPathPrefixes[segments[i-1]] && segments[i] != "" {
			segments[i] = redacted
		}
	}
	u.Path = strings.Join(segments, "/")
	u.RawPath = ""

	return u.String()
}

// RedactRPCURLIn replaces every occurrence of rpcURL in text with its redacted form
func RedactRPCURLIn(text, rpcURL string) string {
	if rpcURL == "" {
		return text
	}
	return strings.ReplaceAll(text, rpcURL, RedactRPCURL(rpcURL))
}
