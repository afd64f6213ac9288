package cache

import "time"

// BytesCache stores serialized report payloads with a TTL. Backends only
// deal in raw bytes so the caller controls the encoding.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
