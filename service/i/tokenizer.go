package i

import "time"

// Tokenizer signs explorer claims into bearer tokens and reads them back.
// Decode fails on expired, tampered or foreign tokens.
type Tokenizer interface {
	Generate(claims map[string]any, ttl time.Duration) (string, error)
	Decode(token string) (map[string]any, error)
}
