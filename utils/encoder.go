package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeJSONBody renders body as a raw JSON document suitable for the
// executor's Post. HTML escaping is off; URLs in payloads stay readable.
func EncodeJSONBody(body any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return "", fmt.Errorf("encode body: %w", err)
	}
	// Encode appends a newline; the wire doesn't want it.
	return strings.TrimRight(buf.String(), "\n"), nil
}
