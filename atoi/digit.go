package atoi

// digit decodes ch under radix, which must already be validated.
// Letters of either case stand for the values 10 through 35.
func digit(ch byte, radix int) (byte, bool) {
	c := int(ch)

	switch {
	case '0' <= c && c <= '9' && c < '0'+radix:
		return ch - '0', true
	case 'a' <= c && c <= 'z' && c < 'a'+radix-10:
		return ch - 'a' + 10, true
	case 'A' <= c && c <= 'Z' && c < 'A'+radix-10:
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

// Digit returns the value of the ASCII digit ch under radix, or false if ch
// is not a digit of that radix. It panics if radix is outside
// [MinRadix, MaxRadix].
func Digit(ch byte, radix int) (byte, bool) {
	checkRadix(radix)

	return digit(ch, radix)
}
