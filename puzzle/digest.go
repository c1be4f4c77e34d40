package puzzle

import (
	"hash/fnv"
	"strconv"
)

// clueDigest hashes a clue grid's shape and contents into a short
// hex string.  It has no cryptographic purpose - it's a cache key,
// not a security boundary - so the standard library's FNV-1a is a
// fine fit with no third-party dependency needed for it.
func clueDigest(rows, cols int, clues []int8) string {
	h := fnv.New64a()
	h.Write([]byte(strconv.Itoa(rows)))
	h.Write([]byte{':'})
	h.Write([]byte(strconv.Itoa(cols)))
	h.Write([]byte{':'})
	buf := make([]byte, len(clues))
	for i, k := range clues {
		if k == noClue {
			buf[i] = '.'
		} else {
			buf[i] = byte('0' + k)
		}
	}
	h.Write(buf)
	return strconv.FormatUint(h.Sum64(), 16)
}
