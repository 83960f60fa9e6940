package classname

import "strings"

// Render normalizes class text and applies the configured prefix.
//
// Runs of whitespace, newlines and tabs included, collapse to a single space
// and the result is trimmed. With a prefix set, the base class name of each
// space-separated class is prefixed unless the class carries a namespace
// marker such as "hover:" or "md:", in which case it is left untouched.
// The prefix goes in once per class, before its first word, so "w-1/2"
// becomes "tw-w-1/2" and "!mt-2" becomes "!tw-mt-2".
func Render(text string, cfg Config) string {
	fields := strings.Fields(text)
	if cfg.Prefix != "" {
		for i, class := range fields {
			fields[i] = prefixClass(class, cfg.Prefix)
		}
	}
	return strings.Join(fields, " ")
}

func prefixClass(class, prefix string) string {
	start := -1
	for i := 0; i < len(class); {
		if !isWordByte(class[i]) {
			i++
			continue
		}
		end := i
		for end < len(class) && isWordByte(class[end]) {
			end++
		}
		if end < len(class) && class[end] == ':' {
			return class
		}
		if start < 0 {
			start = i
		}
		i = end
	}
	if start < 0 {
		return class
	}
	return class[:start] + prefix + class[start:]
}

// isWordByte matches letters, digits, hyphens and underscores.
func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '-' || b == '_'
}
