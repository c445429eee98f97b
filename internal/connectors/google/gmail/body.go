package gmail

import (
	"encoding/base64"

	"google.golang.org/api/gmail/v1"
)

// ExtractBody walks a message payload tree and returns the decoded
// content of the first text/html part. When no HTML part exists it
// falls back to the first non-empty part of any type, and failing
// that, to the payload's own body. Returns "" for an empty message.
func ExtractBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}

	if html := findPart(payload, "text/html"); html != "" {
		return html
	}
	if any := findPart(payload, ""); any != "" {
		return any
	}
	if payload.Body != nil {
		return decodeBody(payload.Body.Data)
	}
	return ""
}

// findPart depth-first searches the part tree for the first part with
// the given MIME type carrying data. An empty mimeType matches any
// part.
func findPart(part *gmail.MessagePart, mimeType string) string {
	if part == nil {
		return ""
	}

	if (mimeType == "" || part.MimeType == mimeType) && part.Body != nil && part.Body.Data != "" {
		if decoded := decodeBody(part.Body.Data); decoded != "" {
			return decoded
		}
	}

	for _, child := range part.Parts {
		if found := findPart(child, mimeType); found != "" {
			return found
		}
	}
	return ""
}

// decodeBody decodes Gmail's base64url body encoding. Gmail omits
// padding, but padded data shows up in the wild, so both forms are
// accepted. Undecodable data yields "".
func decodeBody(data string) string {
	if data == "" {
		return ""
	}
	if raw, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(raw)
	}
	if raw, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(raw)
	}
	return ""
}
