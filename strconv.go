package efp

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	// defaultDigits is the number of significant digits produced by String.
	defaultDigits = 18
	maxDigits     = 20

	// maxExactFormatExp bounds the high exponent for which the value
	// fits a big.Float, whose exponent is an int32.
	maxExactFormatExp = 1 << 30
)

// String returns the value in decimal scientific notation with 18
// significant digits.
func (v Value) String() string {
	return v.Format(defaultDigits)
}

// GoString returns a debug representation, [2^exp * mantissa].
// For diagnostics only, it does not round-trip.
func (v Value) GoString() string {
	return fmt.Sprintf("[2^%d * %g]", v.exp, v.fp)
}

// Format returns the value in decimal scientific notation,
// [-]D.DDD...[e[+]EEE], with up to nsig significant digits, nsig
// clamped to [1, 20]. Trailing zero digits are trimmed, the decimal
// exponent is omitted when it is zero, and the zero value is rendered
// as "0.0".
//
// Digits come correctly rounded from the arbitrary-precision bridge,
// so formatting and reparsing a value restores it exactly. Exponents
// beyond the bridge's range fall back to a float-only path whose last
// couple of digits are approximate.
func (v Value) Format(nsig int) string {
	if nsig < 1 {
		nsig = 1
	}
	if nsig > maxDigits {
		nsig = maxDigits
	}
	if v.IsZero() {
		return "0.0"
	}
	if !v.IsValid() {
		return strconv.FormatFloat(v.fp, 'e', -1, 64)
	}
	if v.exp > maxExactFormatExp || v.exp < -maxExactFormatExp {
		return v.formatApprox(nsig)
	}
	s := v.BigFloat().Text('e', nsig-1)
	i := strings.LastIndexByte(s, 'e')
	mant, dec := s[:i], s[i+1:]
	mant = strings.TrimRight(mant, "0")
	if strings.HasSuffix(mant, ".") {
		mant += "0"
	} else if !strings.Contains(mant, ".") {
		// a single-digit mantissa comes without a point
		mant += ".0"
	}
	d, err := strconv.Atoi(dec)
	if err != nil || d == 0 {
		return mant
	}
	return mant + fmt.Sprintf("e%+d", d)
}

// formatApprox renders the value with float arithmetic only: the
// decimal exponent comes from de*log10(2), its fractional part is
// folded into the mantissa, and the mantissa is scaled to an nsig-digit
// integer and rounded.
func (v Value) formatApprox(nsig int) string {
	var b strings.Builder
	da := v.zeroedFraction()
	de := v.FullExponent()
	if da < 0 {
		da = -da
		b.WriteByte('-')
	}
	// convert the exponent to base 10
	dlog := float64(de) * math.Log10(2)
	dec := int64(math.Floor(dlog))
	da *= math.Pow(10, dlog-math.Floor(dlog))
	// decimal exponent of the mantissa itself
	dexp := int64(math.Floor(math.Log10(da)))
	dec += dexp
	// scale the mantissa to an integer with nsig digits and round it
	da *= float64(pow10int(int64(nsig) - 1 - dexp))
	dfrac := int64(math.Round(da))
	// split the digits around the decimal point
	sep := pow10int(int64(nsig) - 1)
	b.WriteString(strconv.FormatInt(dfrac/sep, 10))
	b.WriteByte('.')
	writeRightJustified(&b, dfrac%sep, nsig-1)
	if dec > 0 {
		b.WriteString("e+")
		b.WriteString(strconv.FormatInt(dec, 10))
	} else if dec < 0 {
		b.WriteByte('e')
		b.WriteString(strconv.FormatInt(dec, 10))
	}
	return b.String()
}

// writeRightJustified writes val right-justified in a field of width
// zeros. Nonpositive values produce only zeros.
func writeRightJustified(b *strings.Builder, val int64, width int) {
	var s string
	if val > 0 {
		s = strconv.FormatInt(val, 10)
	}
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// pow10int returns 10^exp as an integer, or 0 for negative exponents.
func pow10int(exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result, power := int64(1), int64(10)
	for exp != 0 {
		if exp&1 != 0 {
			result *= power
		}
		power *= power
		exp >>= 1
	}
	return result
}

// FromString parses decimal scientific notation, [-]D.DDD...[e[+]EEE],
// into a value. The decimal exponent is applied with the extended
// power, so exponents far outside float64 range parse fine.
// On failure the zero value is returned together with the error.
func FromString(s string) (Value, error) {
	mantPart, expPart, hasExp := s, "", false
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantPart, expPart, hasExp = s[:i], s[i+1:], true
	}
	f, err := strconv.ParseFloat(mantPart, 64)
	if err != nil {
		return zero, fmt.Errorf("parsing failed: %w", err)
	}
	nval := FromFloat64(f)
	if hasExp {
		e, err := strconv.ParseInt(expPart, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("error parsing exponent: %w", err)
		}
		nval = nval.Mul(Pow10(e))
	}
	return nval.Canonicalize(), nil
}

// ReadValue reads a single value token from r: an optional leading
// minus, digits, at most one decimal point, and an optional exponent
// part after an 'e' or 'E' marker. Leading whitespace is skipped,
// reading stops at the first byte that cannot extend the token.
func ReadValue(r io.ByteScanner) (Value, error) {
	c, err := r.ReadByte()
	for err == nil && isSpace(c) {
		c, err = r.ReadByte()
	}
	if err != nil {
		return zero, err
	}
	var token []byte
	for err == nil && isTokenByte(c, token) {
		token = append(token, c)
		c, err = r.ReadByte()
	}
	if err == nil {
		if err = r.UnreadByte(); err != nil {
			return zero, err
		}
	} else if err != io.EOF {
		return zero, err
	}
	return FromString(string(token))
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isTokenByte reports whether c can extend the token read so far.
// A sign is only allowed at the very beginning or right after the
// exponent marker.
func isTokenByte(c byte, token []byte) bool {
	switch {
	case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E':
		return true
	case c == '-', c == '+':
		if len(token) == 0 {
			return c == '-'
		}
		last := token[len(token)-1]
		return last == 'e' || last == 'E'
	}
	return false
}
