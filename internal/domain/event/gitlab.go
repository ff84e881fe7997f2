package event

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
)

const SourceGitLab = "gitlab"

// Content-derived keys are namespaced so they cannot collide with raw
// provider event ids.
const hashedKeyPrefix = "gitlab_msg:"

var ErrMalformedPayload = errors.New("payload is not a valid JSON object")

type GitLabProvider struct{}

func NewGitLabProvider() *GitLabProvider {
	return &GitLabProvider{}
}

func (p *GitLabProvider) Source() string {
	return SourceGitLab
}

// DedupKey uses object_attributes.id verbatim when the payload carries one.
// Otherwise the whole payload is canonicalized (json.Marshal of a decoded
// map sorts keys, so field order does not matter) and hashed with SHA-256.
func (p *GitLabProvider) DedupKey(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return "", ErrMalformedPayload
	}
	if dec.More() {
		return "", ErrMalformedPayload
	}

	if key := objectAttributesID(payload); key != "" {
		return key, nil
	}

	canonical, err := json.Marshal(payload)
	if err != nil {
		return "", ErrMalformedPayload
	}
	sum := sha256.Sum256(canonical)
	return hashedKeyPrefix + hex.EncodeToString(sum[:]), nil
}

func objectAttributesID(payload map[string]any) string {
	attrs, ok := payload["object_attributes"].(map[string]any)
	if !ok {
		return ""
	}
	switch id := attrs["id"].(type) {
	case json.Number:
		// Zero is treated as absent, matching the provider's id space
		// which starts at 1.
		if s := id.String(); s != "" && s != "0" {
			return s
		}
	case string:
		if id != "" {
			return id
		}
	}
	return ""
}
