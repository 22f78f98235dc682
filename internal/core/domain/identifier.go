package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Entity id prefixes. Ids follow the persisted-data contract
// "{prefix}-{unix millis}-{9 base36 chars}" and are treated as opaque strings
// everywhere else.
const (
	UserIDPrefix        = "user"
	SpaceIDPrefix       = "space"
	CategoryIDPrefix    = "cat"
	TransactionIDPrefix = "tx"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a new entity id with the given prefix.
func NewID(prefix string) string {
	b := make([]byte, 9)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// timestamp-only id rather than panic.
		return fmt.Sprintf("%s-%d-%09d", prefix, time.Now().UnixMilli(), time.Now().Nanosecond())
	}
	for i, v := range b {
		b[i] = idAlphabet[int(v)%len(idAlphabet)]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), string(b))
}
