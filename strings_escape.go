package ctjson

import "unicode/utf8"

// unescapeJSONString decodes JSON backslash escapes in content (the bytes
// between the quotes of a JSON string). The common case of no backslash
// at all is handled without allocating beyond the final string copy.
func unescapeJSONString(content []byte) ([]byte, error) {
	if indexByteSlice(content, '\\') < 0 {
		return content, nil
	}
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(content) {
			return nil, newError(InvalidString, 0, "dangling escape at end of string")
		}
		switch content[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			if i+4 >= len(content) {
				return nil, newError(InvalidString, 0, "truncated \\u escape")
			}
			r, err := hex4(content[i+1 : i+5])
			if err != nil {
				return nil, err
			}
			i += 4
			if utf16IsHighSurrogate(r) && i+6 < len(content) && content[i+1] == '\\' && content[i+2] == 'u' {
				r2, err := hex4(content[i+3 : i+7])
				if err == nil && utf16IsLowSurrogate(r2) {
					r = utf16Decode(r, r2)
					i += 6
				}
			}
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], rune(r))
			out = append(out, buf[:n]...)
		default:
			return nil, newError(InvalidString, 0, "invalid escape sequence")
		}
	}
	return out, nil
}

func indexByteSlice(b []byte, target byte) int {
	for i, c := range b {
		if c == target {
			return i
		}
	}
	return -1
}

func hex4(b []byte) (rune, error) {
	var v rune
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			v |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= rune(c-'A') + 10
		default:
			return 0, newError(InvalidString, 0, "invalid hex digit in \\u escape")
		}
	}
	return v, nil
}

func utf16IsHighSurrogate(r rune) bool { return r >= 0xd800 && r <= 0xdbff }
func utf16IsLowSurrogate(r rune) bool  { return r >= 0xdc00 && r <= 0xdfff }

func utf16Decode(hi, lo rune) rune {
	return ((hi - 0xd800) << 10) | (lo - 0xdc00) + 0x10000
}
