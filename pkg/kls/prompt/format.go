package prompt

import (
	"fmt"
	"strings"
)

// FormatValue renders collected answers for echoes and summaries.
// Lists are shown as "[a, b, c]".
func FormatValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case []interface{}:
		parts := make([]string, len(value))
		for i, elem := range value {
			parts[i] = FormatValue(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []string:
		return "[" + strings.Join(value, ", ") + "]"
	case Number:
		return value.String()
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
