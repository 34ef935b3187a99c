package json5ext

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsonfive/json5"
)

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func formatFloat(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0"
		}
		return "0.0"
	}
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}

func parseInt(text string) (int64, error) {
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &json5.Error{Kind: json5.InvalidNumber, Message: fmt.Sprintf("invalid integer %q", text)}
	}
	return i, nil
}

func parseFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &json5.Error{Kind: json5.InvalidNumber, Message: fmt.Sprintf("invalid float %q", text)}
	}
	return f, nil
}

func parseHexSigned(text string) (int64, error) {
	neg := false
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		neg = text[0] == '-'
		text = text[1:]
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	mag, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, &json5.Error{Kind: json5.NumericOverflow, Message: fmt.Sprintf("hexadecimal literal %q does not fit in a signed 64-bit integer", text)}
	}
	if neg {
		if mag == 1<<63 {
			return math.MinInt64, nil
		}
		if mag > 1<<63 {
			return 0, &json5.Error{Kind: json5.NumericOverflow, Message: fmt.Sprintf("hexadecimal literal %q does not fit in a signed 64-bit integer", text)}
		}
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, &json5.Error{Kind: json5.NumericOverflow, Message: fmt.Sprintf("hexadecimal literal %q does not fit in a signed 64-bit integer", text)}
	}
	return int64(mag), nil
}

func unrepresentable(kind json5.NumberKind) error {
	return &json5.Error{Kind: json5.UnrepresentableNumber, Message: fmt.Sprintf("%s has no plain-JSON representation", kind)}
}

func unrepresentableKind(element interface{}) error {
	return &json5.Error{Kind: json5.UnrepresentableNumber, Message: fmt.Sprintf("cannot encode Go value of type %T", element)}
}
