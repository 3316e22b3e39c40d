package htmlserializer

import (
	"io"
	"unicode/utf8"
)

// writeEscaped streams text through the serializer's character map.
// `&` and U+00A0 become entities in both modes; `"` is escaped only in
// attribute mode, `<` and `>` only in text mode. Runs of unescaped
// characters are written in single calls. A sink failure aborts
// mid-stream; whatever prefix the sink already accepted stays written.
func writeEscaped(w io.Writer, text string, attrMode bool) error {
	last := 0
	for i, r := range text {
		var entity string
		switch r {
		case '&':
			entity = "&amp;"
		case '\u00a0':
			entity = "&nbsp;"
		case '"':
			if attrMode {
				entity = "&quot;"
			}
		case '<':
			if !attrMode {
				entity = "&lt;"
			}
		case '>':
			if !attrMode {
				entity = "&gt;"
			}
		}
		if entity == "" {
			continue
		}
		if _, err := io.WriteString(w, text[last:i]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, entity); err != nil {
			return err
		}
		last = i + utf8.RuneLen(r)
	}
	_, err := io.WriteString(w, text[last:])
	return err
}

// writeMarkup writes one fixed piece of tag punctuation ("<", ">",
// "</", `="`, `"`). When sanitize is true the piece goes through the
// text-mode character map instead, turning the tag into literal
// visible text. Quotes survive literalization because the text-mode
// map leaves them alone.
func writeMarkup(w io.Writer, piece string, sanitize bool) error {
	if !sanitize {
		_, err := io.WriteString(w, piece)
		return err
	}
	return writeEscaped(w, piece, false)
}
