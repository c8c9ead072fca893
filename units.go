package debugscreens

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// RemPixels is the fixed rem to pixel ratio used for display annotations
const RemPixels = 16

// SizeInPixels returns the pixel equivalent of a rem threshold, e.g.
// "48rem" -> "768px". Only the leading integer part is used ("2.5rem" ->
// "32px"). Pixel values, other units and unparsable input yield "".
func SizeInPixels(size string) string {
	if size == "" || !strings.Contains(size, "rem") {
		return ""
	}

	n, ok := leadingInt(strings.Replace(size, "rem", "", 1))
	if !ok || n > math.MaxInt/RemPixels || n < math.MinInt/RemPixels {
		return ""
	}
	return strconv.Itoa(n*RemPixels) + "px"
}

// leadingInt parses an optionally signed run of digits after leading
// whitespace and ignores whatever follows it.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// cssString quotes s as a double-quoted CSS string. Control characters
// become hex escapes ("\n" -> "\a ") so the string stays on one line.
func cssString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			b.WriteString("\\" + strconv.FormatInt(int64(r), 16) + " ")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// cssUnquote reverses cssString for any double-quoted CSS string
func cssUnquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	s = s[1 : len(s)-1]

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i == len(s) {
			break
		}

		// Up to six hex digits, optionally followed by one space
		end := i
		for end < len(s) && end-i < 6 && isHex(s[end]) {
			end++
		}
		if end == i {
			if s[i] != '\n' {
				b.WriteByte(s[i])
			}
			continue
		}
		code, _ := strconv.ParseUint(s[i:end], 16, 32)
		b.WriteRune(rune(code))
		if end < len(s) && s[end] == ' ' {
			end++
		}
		i = end - 1
	}
	return b.String(), true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// kebabCase converts a camelCase property name to its CSS form:
// "backgroundColor" -> "background-color".
// Names that are already kebab-case or custom properties pass through.
func kebabCase(name string) string {
	if strings.HasPrefix(name, "--") || strings.HasPrefix(name, "@") {
		return name
	}

	// "ms" is the one vendor prefix written in lower case: "msTransform"
	if len(name) > 2 && name[:2] == "ms" && unicode.IsUpper(rune(name[2])) {
		name = "M" + name[1:]
	}

	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			// A leading capital is a vendor prefix: "WebkitTransform" -> "-webkit-transform"
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
