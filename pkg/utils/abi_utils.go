package utils

import (
	"strings"

	"github.com/tidwall/gjson"
)

const functionTypeField = `"type":"function"`

// NormalizeABIFragment adds "type":"function" to an ABI entry that omits it.
// Old solc output leaves the type out of plain functions and go-ethereum rejects such entries.
func NormalizeABIFragment(raw string) string {
	fragment := gjson.Parse(raw)
	if !fragment.IsObject() || fragment.Get("type").Exists() {
		return raw
	}

	body := strings.TrimSpace(strings.TrimSpace(raw)[1:])
	if strings.HasPrefix(body, "}") {
		return "{" + functionTypeField + "}"
	}
	return "{" + functionTypeField + "," + body
}

// NormalizeABI applies NormalizeABIFragment to every entry of an ABI array.
// Anything that is not an array is returned unchanged.
func NormalizeABI(raw []byte) []byte {
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return raw
	}

	var b strings.Builder
	b.WriteByte('[')
	first := true
	doc.ForEach(func(_, fragment gjson.Result) bool {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(NormalizeABIFragment(fragment.Raw))
		return true
	})
	b.WriteByte(']')
	return []byte(b.String())
}
