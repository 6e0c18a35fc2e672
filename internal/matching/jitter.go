package matching

import "crypto/md5" //nolint:gosec // non-cryptographic use: stable score jitter

// jitterRange bounds the deterministic per-job score offset to [0, 4].
const jitterRange = 5

// jitter derives a small stable offset from the job ID so jobs with equal raw
// totals do not all display the identical score. The same ID always yields the
// same offset; the digest choice is not load-bearing beyond stability.
func jitter(jobID string) int {
	sum := md5.Sum([]byte(jobID)) //nolint:gosec
	// Interpret the digest as a big-endian integer modulo jitterRange,
	// folding byte by byte to avoid big-int arithmetic.
	r := 0
	for _, b := range sum {
		r = (r*256 + int(b)) % jitterRange
	}
	return r
}
