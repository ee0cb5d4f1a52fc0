package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// StringList normalizes a loosely-typed list filter argument into either
// nil ("no constraint") or an ordered slice of strings. Calling agents are
// unreliable about sending proper arrays: a bare string, a stringified
// JSON array, or even a raw number can show up where a list belongs. This
// never fails; anything ambiguous degrades to nil with a warning so a bad
// argument drops one filter instead of the whole request.
func StringList(arg any, logger *zap.Logger) []string {
	switch v := arg.(type) {
	case nil:
		return nil
	case []string:
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	case []any:
		return stringifyItems(v)
	case string:
		if strings.TrimSpace(v) == "" {
			logger.Warn("List argument is empty or whitespace; ignoring this filter",
				zap.String("argument", v))
			return nil
		}
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			// Not JSON at all, e.g. actors="Bill Murray". Treat the
			// whole string as a single-element list.
			return []string{v}
		}
		if items, ok := parsed.([]any); ok {
			return stringifyItems(items)
		}
		logger.Warn("List argument was valid JSON but not an array; ignoring this filter",
			zap.String("argument", v))
		return nil
	default:
		logger.Warn("List argument is neither an array nor a string; ignoring this filter",
			zap.Any("argument", arg))
		return nil
	}
}

func stringifyItems(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, stringify(item))
	}
	return out
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
