package HashTable

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-hashtable/Maps"
)

// Strategy selects how a HashTable resolves collisions. It is fixed at construction.
type Strategy byte

const (
	SeparateChaining Strategy = iota + 1
	OpenAddressing
)

func (s Strategy) String() string {
	switch s {
	case SeparateChaining:
		return "separate-chaining"
	case OpenAddressing:
		return "open-addressing"
	}
	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// ParseStrategy accepts the names returned by String, case-insensitively, plus the short forms "chaining" and "probing".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "separate-chaining", "separate_chaining", "chaining":
		return SeparateChaining, nil
	case "open-addressing", "open_addressing", "probing":
		return OpenAddressing, nil
	}
	return 0, errors.Wrapf(Maps.ErrInvalidConfiguration, "unknown strategy %q", s)
}
