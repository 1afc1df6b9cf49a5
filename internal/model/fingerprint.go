package model

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns a hex SHA3-256 digest of the ordered article URLs.
//
// Two crawls of the same historical date yield the same fingerprint when
// they discover the same URLs in the same order. An empty list still has a
// fingerprint.
func Fingerprint(articles []Article) string {
	h := sha3.New256()
	for _, a := range articles {
		h.Write([]byte(a.URL))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
