package acceptlang

// isValidRange reports whether token is a syntactically valid language
// range: the wildcard, or a primary subtag of 1-8 ASCII letters followed
// by zero or more hyphen-separated subtags of 1-8 ASCII alphanumerics.
// Validation ignores case; lowercasing happens at insertion time.
func isValidRange(token string) bool {
	if token == wildcard {
		return true
	}
	start, primary := 0, true
	for i := 0; ; i++ {
		if i == len(token) || token[i] == '-' {
			if n := i - start; n < 1 || n > 8 {
				return false
			}
			if i == len(token) {
				return true
			}
			start, primary = i+1, false
			continue
		}
		switch c := token[i]; {
		case isAlpha(c):
		case isDigit(c):
			if primary {
				return false
			}
		default:
			return false
		}
	}
}

// parseQuality converts the literal after the ";q=" marker to its
// fixed-point form. The strict grammar is a leading "0" with up to three
// fraction digits, or a leading "1" with up to three zero fraction
// digits. Lenient mode additionally accepts a bare fraction such as
// ".8". Conversion drops the decimal point and right-pads the digits
// with zeros to four places, so "0.8" becomes 800 and "1" becomes 1000.
func parseQuality(s string, lenient bool) (Quality, bool) {
	if lenient && len(s) > 1 && s[0] == '.' {
		s = "0" + s
	}
	if s == "" || (s[0] != '0' && s[0] != '1') {
		return 0, false
	}
	digits := make([]byte, 1, 4)
	digits[0] = s[0]
	if len(s) > 1 {
		// At most "X.ddd".
		if s[1] != '.' || len(s) > 5 {
			return 0, false
		}
		for i := 2; i < len(s); i++ {
			c := s[i]
			if !isDigit(c) {
				return 0, false
			}
			if s[0] == '1' && c != '0' {
				return 0, false
			}
			digits = append(digits, c)
		}
	}
	for len(digits) < 4 {
		digits = append(digits, '0')
	}
	var q Quality
	for _, c := range digits {
		q = q*10 + Quality(c-'0')
	}
	return q, true
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
