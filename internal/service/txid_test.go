package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionID(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		id := newTransactionID()
		assert.Regexp(t, `^tx_\d+_[0-9a-z]{9}$`, id)

		_, dup := seen[id]
		assert.False(t, dup, "duplicate transaction id: %s", id)
		seen[id] = struct{}{}
	}
}
