package publish

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/santa/types"
)

const (
	giverKeyPrefix = "giver."
	metaKey        = "meta"
)

// Record is the private reveal stored for one giver.
type Record struct {
	DrawID      string            `json:"drawId"`
	Giver       types.Participant `json:"giver"`
	Recipient   types.Participant `json:"recipient"`
	PublishedAt time.Time         `json:"publishedAt"`
}

// Meta describes a published draw without revealing any pair.
type Meta struct {
	DrawID       string    `json:"drawId"`
	Participants int       `json:"participants"`
	Attempt      int       `json:"attempt"`
	Fingerprint  string    `json:"fingerprint"`
	PublishedAt  time.Time `json:"publishedAt"`
}

// giverKey encodes a participant into a KV-safe key.
//
// Participant identifiers are arbitrary strings, while KV keys are limited
// to [-/_=.a-zA-Z0-9], so names are base64url encoded.
func giverKey(p types.Participant) string {
	return giverKeyPrefix + base64.RawURLEncoding.EncodeToString([]byte(p))
}

// parseGiverKey reverses giverKey.
func parseGiverKey(key string) (types.Participant, error) {
	enc, ok := strings.CutPrefix(key, giverKeyPrefix)
	if !ok {
		return "", fmt.Errorf("not a giver key: %q", key)
	}

	raw, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		return "", fmt.Errorf("malformed giver key %q: %w", key, err)
	}

	return types.Participant(raw), nil
}
