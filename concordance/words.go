package concordance

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ScanWords is a bufio.SplitFunc yielding runs of letters and digits. An
// apostrophe is kept when it sits inside a word ("don't"), trailing ones are
// dropped.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[start:])
		if isWordRune(r) {
			break
		}
		start += width
	}
	for i := start; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return start, nil, nil
		}
		r, width := utf8.DecodeRune(data[i:])
		if !isWordRune(r) && r != '\'' {
			return i + width, bytes.TrimRight(data[start:i], "'"), nil
		}
		i += width
	}
	if atEOF && len(data) > start {
		return len(data), bytes.TrimRight(data[start:], "'"), nil
	}
	return start, nil, nil
}
