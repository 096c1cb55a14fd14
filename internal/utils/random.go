package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// LoginCodeLength is the number of printed digits in a login code.
const LoginCodeLength = 6

// GenerateLoginCode returns a uniformly random code of LoginCodeLength
// digits, rendered as a string. The first digit is never zero, so for the
// default length the range is 100000-999999 and the code always prints at
// its full width, matching what the login UI expects.
func GenerateLoginCode() (string, error) {
	low := int64(1)
	for i := 1; i < LoginCodeLength; i++ {
		low *= 10
	}
	n, err := rand.Int(rand.Reader, big.NewInt(9*low))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+low, 10), nil
}
