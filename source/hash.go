package source

import (
	"github.com/minio/highwayhash"
)

// fingerprintKey is fixed: fingerprints recorded in reports are compared across runs
// and processes, so they must not depend on a per-process key.
var fingerprintKey = []byte("dequery-fingerprint-key-00000000")

// Fingerprint returns a HighwayHash-64 of the source content. Passes compare fingerprints
// rather than bytes to detect a fixed point.
func Fingerprint(code []byte) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(code)
	return hash.Sum64(), err
}

// Fingerprint returns fingerprint of the document content
func (d *Document) Fingerprint() (uint64, error) {
	return Fingerprint(d.Code)
}
