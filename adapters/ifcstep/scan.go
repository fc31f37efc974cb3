package ifcstep

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// checkEvery bounds how often the scanner polls for context cancellation.
const checkEvery = 4096

// scanDataSection extracts all records between DATA; and ENDSEC;. Records may
// span lines; ';' only terminates a record outside a quoted string. Records
// that do not look like `#id=TYPE(...)` are skipped; the scanner is tolerant
// of what it does not understand.
func scanDataSection(ctx context.Context, src string) ([]*stepEntity, error) {
	start := strings.Index(src, "DATA;")
	if start < 0 {
		return nil, fmt.Errorf("no DATA section found")
	}
	body := src[start+len("DATA;"):]

	var (
		records  []*stepEntity
		buf      strings.Builder
		inString bool
		skipped  int
	)

	for i := 0; i < len(body); i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		ch := body[i]

		if inString {
			buf.WriteByte(ch)
			if ch == '\'' {
				// '' is an escaped quote inside a STEP string
				if i+1 < len(body) && body[i+1] == '\'' {
					buf.WriteByte('\'')
					i++
				} else {
					inString = false
				}
			}
			continue
		}

		switch ch {
		case '\'':
			inString = true
			buf.WriteByte(ch)
		case ';':
			record := strings.TrimSpace(buf.String())
			buf.Reset()
			if record == "ENDSEC" {
				if skipped > 0 {
					log.Printf("[ifcstep] skipped %d unrecognized records", skipped)
				}
				return records, nil
			}
			if record == "" {
				continue
			}
			if e, ok := parseRecord(record); ok {
				records = append(records, e)
			} else {
				skipped++
			}
		case '/':
			// skip /* ... */ comment blocks
			if i+1 < len(body) && body[i+1] == '*' {
				if end := strings.Index(body[i+2:], "*/"); end >= 0 {
					i += 2 + end + 1
					continue
				}
				i = len(body)
				continue
			}
			buf.WriteByte(ch)
		default:
			buf.WriteByte(ch)
		}
	}

	if skipped > 0 {
		log.Printf("[ifcstep] skipped %d unrecognized records", skipped)
	}
	return records, nil
}

// parseRecord decodes one `#id=TYPE(attr,attr,...)` record. The Name attribute
// of IfcRoot-derived entities is the third one; '$' and '*' mean absent.
func parseRecord(record string) (*stepEntity, bool) {
	if !strings.HasPrefix(record, "#") {
		return nil, false
	}

	eq := strings.IndexByte(record, '=')
	if eq < 0 {
		return nil, false
	}

	id, err := strconv.ParseInt(strings.TrimSpace(record[1:eq]), 10, 64)
	if err != nil {
		return nil, false
	}

	rest := strings.TrimSpace(record[eq+1:])
	open := strings.IndexByte(rest, '(')
	if open < 0 || !strings.HasSuffix(rest, ")") {
		return nil, false
	}

	token := strings.ToUpper(strings.TrimSpace(rest[:open]))
	if token == "" {
		return nil, false
	}

	e := &stepEntity{id: id, rawType: token}

	attrs := splitTopLevel(rest[open+1 : len(rest)-1])
	if len(attrs) >= 3 {
		if name, ok := decodeString(attrs[2]); ok {
			e.name = name
			e.hasName = true
		}
	}

	return e, true
}

// splitTopLevel splits an attribute list on commas at nesting depth zero,
// honoring quoted strings and nested aggregates like (1.0,0.0,0.0).
func splitTopLevel(s string) []string {
	var (
		parts    []string
		buf      strings.Builder
		depth    int
		inString bool
	)

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			buf.WriteByte(ch)
			if ch == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					buf.WriteByte('\'')
					i++
				} else {
					inString = false
				}
			}
			continue
		}

		switch ch {
		case '\'':
			inString = true
			buf.WriteByte(ch)
		case '(':
			depth++
			buf.WriteByte(ch)
		case ')':
			depth--
			buf.WriteByte(ch)
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(buf.String()))
				buf.Reset()
			} else {
				buf.WriteByte(ch)
			}
		default:
			buf.WriteByte(ch)
		}
	}

	if buf.Len() > 0 {
		parts = append(parts, strings.TrimSpace(buf.String()))
	}
	return parts
}

// decodeString unwraps a quoted STEP string attribute. Unset attributes
// ('$' or the derived marker '*') report false.
func decodeString(attr string) (string, bool) {
	if len(attr) < 2 || attr[0] != '\'' || attr[len(attr)-1] != '\'' {
		return "", false
	}
	inner := attr[1 : len(attr)-1]
	return strings.ReplaceAll(inner, "''", "'"), true
}
