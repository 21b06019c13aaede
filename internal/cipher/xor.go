// Package cipher implements the reversible XOR obfuscation applied to
// buffer contents. It is a scrambling utility, not cryptography.
package cipher

// DefaultKey is the key used when the config does not override it.
const DefaultKey byte = 67

// Transform XORs every byte of text with key and returns the result.
// The operation runs over the UTF-8 byte encoding rather than code
// points, so applying it twice with the same key always restores the
// original string, including for non-ASCII input. The intermediate
// string may not be valid UTF-8.
func Transform(text string, key byte) string {
	if key == 0 {
		return text
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = text[i] ^ key
	}
	return string(out)
}
