// Package textline splits text on the universal line terminators: CR, LF and
// CRLF all end a line, the terminator is not part of the line, and a
// terminator at the very end of the input does not produce a trailing empty
// line.
package textline

// Split is a bufio.SplitFunc implementing the universal line rules. A final
// unterminated line is returned as the last token.
func Split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			return i + 1, data[:i], nil
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if atEOF {
				return i + 1, data[:i], nil
			}
			// A CR at the buffer edge: request more data to tell CR from CRLF.
			return 0, nil, nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
