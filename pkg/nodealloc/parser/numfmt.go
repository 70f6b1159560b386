package parser

import "strings"

// builtinDateFormats lists the built-in number format ids that render dates,
// including the locale-specific ranges used by CJK workbooks.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true,
	34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true,
	57: true, 58: true,
}

// isDateNumFmt reports whether a number format renders a calendar date.
// Pure time formats (h:mm, mm:ss) are not dates.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	return builtinDateFormats[id]
}

// isDateFormatCode inspects a custom format code such as "dd/mm/yyyy".
// Quoted literals, escaped characters and bracketed sections are ignored.
func isDateFormatCode(code string) bool {
	// Only the first section applies to positive numbers.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			b.WriteByte(ch)
		}
	}
	stripped := strings.ToLower(b.String())
	return strings.ContainsAny(stripped, "yd")
}
