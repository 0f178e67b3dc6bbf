// Package units holds the numeric helpers shared by every colour format:
// CSS unit matching, bounding into [0, 1], alpha normalisation and rounding.
package units

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	cssInteger = `[-\+]?\d+%?`
	cssNumber  = `[-\+]?\d*\.\d+%?`
	cssUnit    = `(?:` + cssNumber + `)|(?:` + cssInteger + `)`

	permissive3 = `[\s|\(]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)\s*\)?`
	permissive4 = `[\s|\(]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)[,|\s]+(` + cssUnit + `)\s*\)?`
)

var (
	unitRe  = regexp.MustCompile(cssUnit)
	floatRe = regexp.MustCompile(`^\s*[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
)

// Matcher is a compiled pair of functional-notation patterns for one
// prefix, e.g. "rgb": Three accepts "rgb(1, 2, 3)" and Four "rgba 1 2 3 0.5".
// Three components take the bare prefix and four the prefix with "a".
type Matcher struct {
	Three *regexp.Regexp
	Four  *regexp.Regexp
}

// NewMatcher compiles the permissive patterns for prefix.
func NewMatcher(prefix string) Matcher {
	return Matcher{
		Three: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + permissive3 + `$`),
		Four:  regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `a` + permissive4 + `$`),
	}
}

// Match returns the captured components of s, or nil.
func (m Matcher) Match(s string) []string {
	if sub := m.Three.FindStringSubmatch(s); sub != nil {
		return sub[1:]
	}
	return nil
}

// Match4 returns the four captured components of s, or nil.
func (m Matcher) Match4(s string) []string {
	if sub := m.Four.FindStringSubmatch(s); sub != nil {
		return sub[1:]
	}
	return nil
}

// IsValidUnit reports whether tok contains a CSS number or integer.
// The match is unanchored, so "12px" is a valid unit while "invalid" is not.
func IsValidUnit(tok string) bool {
	return unitRe.MatchString(tok)
}

// IsPercentage reports whether tok is written as a percentage.
func IsPercentage(tok string) bool {
	return strings.Contains(tok, "%")
}

// IsOnePointZero reports whether tok is a decimal spelling of one, like "1.0".
// Such tokens mean 100% rather than the raw value 1.
func IsOnePointZero(tok string) bool {
	if !strings.Contains(tok, ".") {
		return false
	}
	f, ok := ParseFloat(tok)
	return ok && f == 1
}

// ParseFloat parses the leading number of s and ignores whatever follows,
// so "50%" yields 50. It reports false when s does not start with a number.
func ParseFloat(s string) (float64, bool) {
	m := floatRe.FindString(s)
	if m == "" {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return math.NaN(), false
	}
	return f, true
}

// Token turns an input component into the textual form the parsers work on.
// Numbers use their shortest exact decimal form. It reports false for
// values that are neither numbers nor strings.
func Token(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, true
	case float64:
		return FormatFloat(n), true
	case float32:
		return FormatFloat(float64(n)), true
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case interface{ String() string }:
		return n.String(), true
	}
	return "", false
}

// FormatFloat prints f in its shortest form, e.g. 0.5 or 255.
func FormatFloat(f float64) string {
	if f == 0 {
		f = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Bound01 maps tok onto [0, 1] relative to max. Percentages are taken
// relative to max; "1.0" style tokens count as 100%. Values equal to max
// map to exactly 1, everything else wraps modulo max.
func Bound01(tok string, max float64) float64 {
	if IsOnePointZero(tok) {
		tok = "100%"
	}
	percent := IsPercentage(tok)
	n, ok := ParseFloat(tok)
	if !ok {
		return 0
	}
	n = math.Min(max, math.Max(0, n))
	if percent {
		n = math.Trunc(n*max) / 100
	}
	return wrap01(n, max)
}

// BoundFloat01 is Bound01 for a value that is already numeric.
func BoundFloat01(n, max float64) float64 {
	if math.IsNaN(n) {
		return 0
	}
	return wrap01(math.Min(max, math.Max(0, n)), max)
}

func wrap01(n, max float64) float64 {
	if math.Abs(n-max) < 0.000001 {
		return 1
	}
	return math.Mod(n, max) / max
}

// BoundAlpha normalises an alpha component. Anything that is missing,
// non-numeric or outside [0, 1] becomes 1.
func BoundAlpha(v any) float64 {
	tok, ok := Token(v)
	if !ok {
		return 1
	}
	a, ok := ParseFloat(tok)
	if !ok || a < 0 || a > 1 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return a
}

// ConvertToPercentage rewrites a token that is a plain fraction (at most 1)
// as a percentage, so 0.5 becomes "50%". Other tokens are returned as is.
func ConvertToPercentage(tok string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil || f > 1 {
		return tok
	}
	return FormatFloat(f*100) + "%"
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// Round rounds half up, towards positive infinity.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundIf01 rounds channel values below one, so fractional inputs like 0.1
// do not survive as sub-integer channels.
func RoundIf01(v float64) float64 {
	if v < 1 {
		return Round(v)
	}
	return v
}

// RoundAlpha rounds alpha to two decimals.
func RoundAlpha(a float64) float64 {
	r := Round(100*a) / 100
	if r == 0 {
		return 0
	}
	return r
}

// HasAlpha reports whether a is a partial alpha in [0, 1).
func HasAlpha(a float64) bool {
	return a >= 0 && a < 1
}

// Pad2 left-pads a single hex digit with a zero.
func Pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
