package levels

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Digest hashes the canonical encoding of doc. Two documents with the same
// content always share a digest.
func Digest(doc *Document) uint64 {
	data, err := Encode(doc)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// DigestString is Digest in fixed-width hex.
func DigestString(doc *Document) string {
	s := strconv.FormatUint(Digest(doc), 16)
	for len(s) < 16 {
		s = "0" + s
	}
	return s
}
