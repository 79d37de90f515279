package utils

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// ValidPhone reports whether phone looks like a mainland CN mobile number:
// 11 digits starting with 1.
func ValidPhone(phone string) bool {
	if len(phone) != 11 || phone[0] != '1' {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RandomCode returns n random decimal digits.
func RandomCode(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			buf[i] = '0'
			continue
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf)
}

// RandomToken returns a URL-safe random token of nBytes entropy.
func RandomToken(nBytes int) string {
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
