package transformers

import (
	"fmt"
	"strconv"
	"strings"
)

// English number words the upstream is known to put in count fields.
var wordNumbers = map[string]int{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
}

// lookup walks a dot-separated path through nested JSON maps and reports
// whether a non-nil value exists there.
func lookup(m map[string]interface{}, path string) (interface{}, bool) {
	keys := strings.Split(path, ".")
	current := m
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	val, ok := current[keys[len(keys)-1]]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

// asString renders a value as a trimmed string. The "null"/"undefined"
// literals that loosely typed upstreams serialize by accident count as empty.
func asString(v interface{}) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	case float64:
		if t == float64(int64(t)) {
			s = strconv.FormatInt(int64(t), 10)
		} else {
			s = strconv.FormatFloat(t, 'f', -1, 64)
		}
	case bool:
		s = strconv.FormatBool(t)
	default:
		s = fmt.Sprintf("%v", t)
	}
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "null", "undefined":
		return ""
	}
	return s
}

// optionalString is asString for fields that are omitted entirely when no
// real value exists. A stray "0" carries no meaning there.
func optionalString(v interface{}) string {
	s := asString(v)
	if s == "0" {
		return ""
	}
	return s
}

// firstString resolves the first path that yields a usable string.
func firstString(raw map[string]interface{}, paths ...string) string {
	for _, path := range paths {
		if v, ok := lookup(raw, path); ok {
			if s := asString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// asNumber coerces numbers and numeric strings.
func asNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// firstNumber resolves the first path holding a coercible number. Zero is a
// usable value and does not fall through to later paths.
func firstNumber(raw map[string]interface{}, paths ...string) (float64, bool) {
	for _, path := range paths {
		if v, ok := lookup(raw, path); ok {
			if n, numOK := asNumber(v); numOK {
				return n, true
			}
		}
	}
	return 0, false
}

// parseLeadingInt mimics parseInt: an optional sign followed by digits, with
// trailing garbage ignored.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// count coerces a bedroom/bathroom-style value into a positive whole count.
// Empty strings, the word "zero" and the number 0 all mean "no data", not a
// count of zero. Array input is judged by its first element.
func count(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t > 0 {
			return int(t), true
		}
	case int:
		if t > 0 {
			return t, true
		}
	case string:
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			return 0, false
		}
		lower := strings.ToLower(trimmed)
		if lower == "zero" {
			return 0, false
		}
		if n, ok := wordNumbers[lower]; ok {
			if n > 0 {
				return n, true
			}
			return 0, false
		}
		if n, ok := parseLeadingInt(trimmed); ok && n > 0 {
			return n, true
		}
	case []interface{}:
		if len(t) > 0 {
			return count(t[0])
		}
	}
	return 0, false
}

// stringSlice extracts the non-empty string entries of an array value,
// preserving order.
func stringSlice(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range arr {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
