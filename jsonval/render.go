package jsonval

import (
	"math"
	"strconv"
)

// numberPrecision bounds rendered significant digits. Ten digits round-trip
// the engine's coordinate and distance doubles without trailing noise.
const numberPrecision = 10

// Render serializes v to compact JSON with no extraneous whitespace.
func Render(v Value) string {
	return string(Append(nil, v))
}

// Append serializes v to compact JSON, appending to dst.
func Append(dst []byte, v Value) []byte {
	switch t := v.(type) {
	case String:
		return appendString(dst, t.Value)
	case Number:
		return appendNumber(dst, t.Value)
	case *Object:
		dst = append(dst, '{')
		for i, key := range t.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, key)
			dst = append(dst, ':')
			dst = Append(dst, t.values[key])
		}
		return append(dst, '}')
	case *Array:
		dst = append(dst, '[')
		for i, elem := range t.Values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = Append(dst, elem)
		}
		return append(dst, ']')
	case True:
		return append(dst, "true"...)
	case False:
		return append(dst, "false"...)
	case Null:
		return append(dst, "null"...)
	default:
		// Value is a closed set; a nil interface is the only way here.
		return append(dst, "null"...)
	}
}

func appendNumber(dst []byte, f float64) []byte {
	// JSON has no representation for non-finite numbers.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	return strconv.AppendFloat(dst, f, 'g', numberPrecision, 64)
}

const hexDigits = "0123456789abcdef"

func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				// Bytes >= 0x20 pass through untouched, including non-ASCII.
				dst = append(dst, c)
			}
		}
	}
	return append(dst, '"')
}
