package filter

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the timestamp forms found in FRED payloads.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05-07",
	time.RFC3339,
}

// helperFunctions returns the functions available to every expression
func helperFunctions() map[string]any {
	return map[string]any{
		// Date helpers
		"parseDate": parseDate,
		"daysSince": func(v any) int {
			t := parseDate(v)
			if t.IsZero() {
				return 0
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"before": func(v any, date string) bool {
			t, ref := parseDate(v), parseDate(date)
			return !t.IsZero() && !ref.IsZero() && t.Before(ref)
		},
		"after": func(v any, date string) bool {
			t, ref := parseDate(v), parseDate(date)
			return !t.IsZero() && !ref.IsZero() && t.After(ref)
		},

		// String helpers, case-insensitive. The built-in contains, startsWith
		// and endsWith operators and the lower/upper functions are case-sensitive.
		"hasText": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasTextPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasTextSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},

		// FRED sends observation values as strings, with "." for missing.
		"num":     num,
		"missing": func(v any) bool { return v == nil || v == "." || v == "" },
	}
}

// parseDate accepts a time.Time or any of dateLayouts; anything else is the zero time.
func parseDate(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// num converts JSON numbers and numeric strings to float64; anything else is 0.
func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
