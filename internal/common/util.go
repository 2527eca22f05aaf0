package common

// WipeByteArray overwrites b in place with zeroes. Use it to scrub password
// bytes once they have been handed off to the transport layer.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
