package generation

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// 모델 출력은 코드펜스로 감싸지거나 문자열 안에 이스케이프되지 않은 제어문자를
// 포함하는 경우가 있다. DecodeItems 는 엄격한 파싱부터 시작해 점점 관대한
// 복구 단계를 차례로 시도한다.

var errNoJSON = errors.New("no JSON array or object found in model output")

var fencePattern = regexp.MustCompile("(?s)^\\s*```[a-zA-Z]*\\s*\n?(.*?)\\s*```\\s*$")

// stringLiteralPattern 은 JSON 문자열 리터럴 하나를 찾는다 (개행 포함).
var stringLiteralPattern = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)

// StripCodeFences removes a surrounding markdown code fence, if any.
func StripCodeFences(s string) string {
	if m := fencePattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return strings.TrimSpace(s)
}

// ExtractJSON returns the outermost JSON value in s. Whichever of '[' or '{'
// comes first decides the shape, and the value runs to the last matching
// closer. Truncated output without a closer yields everything from the opener.
func ExtractJSON(s string) (body string, isArray bool, err error) {
	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return "", false, errNoJSON
	}
	isArray = s[start] == '['
	closer := "}"
	if isArray {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end <= start {
		return s[start:], isArray, nil
	}
	return s[start : end+1], isArray, nil
}

// EscapeControlChars escapes raw control characters inside string literals.
func EscapeControlChars(s string) string {
	return stringLiteralPattern.ReplaceAllStringFunc(s, func(lit string) string {
		var b strings.Builder
		b.Grow(len(lit))
		for _, r := range lit {
			writeEscaped(&b, r)
		}
		return b.String()
	})
}

// WalkRepair scans the text rune by rune, tracking whether it is inside a
// string. Control characters inside strings are escaped, and a quote that is
// not followed by a JSON delimiter is treated as a literal quote. An
// unterminated string or unbalanced bracket at the end is closed.
func WalkRepair(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 16)

	var stack []rune
	inString := false
	escaped := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if inString {
			switch {
			case escaped:
				escaped = false
				b.WriteRune(r)
			case r == '\\':
				escaped = true
				b.WriteRune(r)
			case r == '"':
				if closesString(runes, i+1) {
					inString = false
					b.WriteRune(r)
				} else {
					b.WriteString(`\"`)
				}
			default:
				writeEscaped(&b, r)
			}
			continue
		}

		switch r {
		case '"':
			inString = true
		case '[', '{':
			stack = append(stack, r)
		case ']', '}':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
		b.WriteRune(r)
	}

	if inString {
		if escaped {
			b.WriteRune('\\')
		}
		b.WriteRune('"')
	}
	out := strings.TrimRight(b.String(), " \t\r\n,")
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '[' {
			out += "]"
		} else {
			out += "}"
		}
	}
	return out
}

// closesString reports whether the next non-space rune after a quote is a
// JSON delimiter, i.e. the quote really ends the string.
func closesString(runes []rune, from int) bool {
	for j := from; j < len(runes); j++ {
		switch runes[j] {
		case ' ', '\t', '\r', '\n':
			continue
		case ',', ':', '}', ']':
			return true
		default:
			return false
		}
	}
	return true
}

func writeEscaped(b *strings.Builder, r rune) {
	switch r {
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	default:
		if r < 0x20 {
			b.WriteString(`\u00`)
			b.WriteByte("0123456789abcdef"[r>>4])
			b.WriteByte("0123456789abcdef"[r&0xf])
			return
		}
		b.WriteRune(r)
	}
}

// DecodeItems parses raw model output that holds either a JSON array of items
// or a single item object. A single object comes back as a one-element slice.
func DecodeItems[T any](raw string) ([]T, error) {
	body, isArray, err := ExtractJSON(StripCodeFences(raw))
	if err != nil {
		return nil, &Error{Kind: KindMalformedOutput, Err: err}
	}

	if isArray {
		var items []T
		if err := decodeRepaired(body, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var one T
	if err := decodeRepaired(body, &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}

// decodeRepaired tries strict parsing first and then each repair stage in turn.
func decodeRepaired(body string, v any) error {
	var lastErr error
	for _, stage := range []func(string) string{
		func(s string) string { return s },
		EscapeControlChars,
		WalkRepair,
	} {
		if lastErr = json.Unmarshal([]byte(stage(body)), v); lastErr == nil {
			return nil
		}
	}
	return &Error{Kind: KindMalformedOutput, Err: lastErr}
}
