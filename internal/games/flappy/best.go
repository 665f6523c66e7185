package flappy

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyValueStore is the persistence facility for the best score.
// storage.Store implements it.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// LoadBestScore reads the best score stored under key. A missing key yields
// 0 with no error; a stored value that is not a non-negative integer yields
// 0 and an error so the caller can log it.
func LoadBestScore(kv KeyValueStore, key string) (int, error) {
	if kv == nil {
		return 0, nil
	}

	value, ok, err := kv.Get(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	best, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("flappy: stored best score %q is not an integer: %w", value, err)
	}
	if best < 0 {
		return 0, fmt.Errorf("flappy: stored best score %d is negative", best)
	}
	return best, nil
}

// SaveBestScore writes score under key as a decimal string.
func SaveBestScore(kv KeyValueStore, key string, score int) error {
	if kv == nil {
		return nil
	}
	return kv.Set(key, strconv.Itoa(score))
}
