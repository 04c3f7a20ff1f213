package dyn

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// CSVOption configures a CSV parse. The only documented knob is the field
// delimiter.
type CSVOption func(*csvConfig)

type csvConfig struct {
	delimiter string
}

func defaultCSVConfig() csvConfig {
	return csvConfig{delimiter: ","}
}

// WithDelimiter overrides the default ',' field delimiter.
func WithDelimiter(r rune) CSVOption {
	return func(c *csvConfig) { c.delimiter = string(r) }
}

// ParseCSVHeaded parses input with the first record as a header, producing
// a CsvObject: one map per subsequent record, keyed by header column name.
func ParseCSVHeaded(input []byte, opts ...CSVOption) (Value, error) {
	if len(input) == 0 {
		return NewCsvObject(nil), nil
	}
	if hasBOM(input) {
		return None, newError(UnexpectedCharacter, 1, 1, "byte-order mark is not valid CSV input")
	}
	p := newCSVParser(input, opts)
	return p.parseHeaded()
}

// ParseCSVHeadless parses input with no header, producing a CsvArray: the
// width of the first record establishes the expected width of every row.
func ParseCSVHeadless(input []byte, opts ...CSVOption) (Value, error) {
	if len(input) == 0 {
		return NewCsvArray(nil), nil
	}
	if hasBOM(input) {
		return None, newError(UnexpectedCharacter, 1, 1, "byte-order mark is not valid CSV input")
	}
	p := newCSVParser(input, opts)
	return p.parseHeadless()
}

type rawField struct {
	text   string
	quoted bool
}

type csvRecord struct {
	fields []rawField
}

type csvParser struct {
	c   *cursor
	cfg csvConfig
}

func newCSVParser(input []byte, opts []CSVOption) *csvParser {
	cfg := defaultCSVConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &csvParser{c: newCursor(input), cfg: cfg}
}

func (p *csvParser) errAt(kind ErrorKind, format string, args ...any) error {
	line, col := p.c.position()
	return newError(kind, line, col, format, args...)
}

func isRecordSeparator(s string) bool {
	return s == "\n" || s == "\r" || s == "\r\n"
}

// consumeRecordSeparator eats the record separator at the cursor, if any.
// RFC 4180 §2 specifies CRLF; \n and bare \r are accepted uniformly too, and
// the final record may have none at all.
func (p *csvParser) consumeRecordSeparator() {
	if s, ok := p.c.peek(); ok && isRecordSeparator(s) {
		p.c.advance()
	}
}

// readRecord lexes one record: fields separated by the configured
// delimiter, up to (but not including) a record separator or EOF.
func (p *csvParser) readRecord() (csvRecord, error) {
	var rec csvRecord
	for {
		f, err := p.readField()
		if err != nil {
			return csvRecord{}, err
		}
		rec.fields = append(rec.fields, f)

		s, ok := p.c.peek()
		if ok && s == p.cfg.delimiter {
			p.c.advance()
			continue
		}
		return rec, nil
	}
}

func (p *csvParser) readField() (rawField, error) {
	s, ok := p.c.peek()
	if ok && s == `"` {
		return p.readQuotedField()
	}
	return p.readUnquotedField()
}

func (p *csvParser) readUnquotedField() (rawField, error) {
	var b strings.Builder
	for {
		s, ok := p.c.peek()
		if !ok || s == p.cfg.delimiter || isRecordSeparator(s) {
			return rawField{text: b.String()}, nil
		}
		if s == `"` {
			return rawField{}, p.errAt(CsvUnescapedQuote, "unescaped '\"' in unquoted field")
		}
		b.WriteString(s)
		p.c.advance()
	}
}

func (p *csvParser) readQuotedField() (rawField, error) {
	p.c.advance() // consume opening quote
	var b strings.Builder
	for {
		s, ok := p.c.advance()
		if !ok {
			return rawField{}, p.errAt(CsvUnterminatedQuotedField, "unterminated quoted field")
		}
		if s != `"` {
			b.WriteString(s)
			continue
		}
		// Saw a quote: "" escapes a literal quote and stays in quoted mode.
		if next, ok := p.c.peek(); ok && next == `"` {
			b.WriteString(`"`)
			p.c.advance()
			continue
		}
		// End of quoted field: next must be delimiter, record separator, or EOF.
		if next, ok := p.c.peek(); ok && next != p.cfg.delimiter && !isRecordSeparator(next) {
			return rawField{}, p.errAt(CsvUnescapedQuote, "unescaped '\"' after closing quote")
		}
		return rawField{text: b.String(), quoted: true}, nil
	}
}

// csvNumberRE matches plain decimal integer and float literal shapes,
// deliberately narrower than strconv.ParseFloat's accepted syntax (no
// "Inf"/"NaN", hex floats, or digit-separating underscores) so that a field
// like "NaN" is classified as a string, not a number.
var csvNumberRE = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// coerceField classifies a raw field's text into a Value: empty unquoted
// text becomes None, number- and bool-shaped text coerce to the matching
// kind, everything else stays a String. Quoted fields are always String,
// including the empty string.
func coerceField(f rawField) Value {
	if f.quoted {
		return NewString(f.text)
	}
	if f.text == "" {
		return None
	}
	if csvNumberRE.MatchString(f.text) {
		if f.text[0] == '-' && strings.Trim(f.text[1:], "0") == "" {
			// Mirrors the JSON number parser: -0 (or -00, ...) has no
			// negative-integer representation here, so it becomes Uint(0).
			return NewUint(0)
		}
		negative := f.text[0] == '-'
		hasFracOrExp := strings.ContainsAny(f.text, ".eE")
		if !hasFracOrExp {
			if !negative {
				if u, err := strconv.ParseUint(f.text, 10, 64); err == nil {
					return NewUint(u)
				}
			} else if i, err := strconv.ParseInt(f.text, 10, 64); err == nil {
				return NewInt(i)
			}
		}
		if fv, err := strconv.ParseFloat(f.text, 64); err == nil && !math.IsInf(fv, 0) {
			return NewFloat(fv)
		}
	}
	switch f.text {
	case "true":
		return NewBool(true)
	case "false":
		return NewBool(false)
	default:
		return NewString(f.text)
	}
}

func isBlankRecord(rec csvRecord) bool {
	return len(rec.fields) == 1 && rec.fields[0].text == "" && !rec.fields[0].quoted
}

// parseHeaded reads the first record as H column names; every later record
// is padded to H entries with None when short and rejected with
// CsvRaggedRow when it overflows H. A lone-blank-field record between data
// rows is skipped.
func (p *csvParser) parseHeaded() (Value, error) {
	header, err := p.readRecord()
	if err != nil {
		return None, err
	}
	p.consumeRecordSeparator()

	names := make([]string, len(header.fields))
	for i, f := range header.fields {
		names[i] = f.text
	}
	h := len(names)

	var rows []map[string]Value
	for !p.c.atEnd() {
		line, col := p.c.position()
		rec, err := p.readRecord()
		if err != nil {
			return None, err
		}
		p.consumeRecordSeparator()

		if isBlankRecord(rec) {
			continue
		}
		if len(rec.fields) > h {
			return None, newError(CsvRaggedRow, line, col, "record has %d fields, expected %d", len(rec.fields), h)
		}

		row := make(map[string]Value, h)
		for i, name := range names {
			if i < len(rec.fields) {
				row[name] = coerceField(rec.fields[i])
			} else {
				row[name] = None
			}
		}
		rows = append(rows, row)
	}
	return NewCsvObject(rows), nil
}

// parseHeadless uses the width of the first record, W, as the expected
// width of every row. Short rows are padded with None; long rows are
// rejected with CsvRaggedRow.
func (p *csvParser) parseHeadless() (Value, error) {
	var rows [][]Value
	w := -1

	for !p.c.atEnd() {
		line, col := p.c.position()
		rec, err := p.readRecord()
		if err != nil {
			return None, err
		}
		p.consumeRecordSeparator()

		if w < 0 {
			w = len(rec.fields)
		} else if len(rec.fields) > w {
			return None, newError(CsvRaggedRow, line, col, "record has %d fields, expected %d", len(rec.fields), w)
		}

		row := make([]Value, w)
		for i := 0; i < w; i++ {
			if i < len(rec.fields) {
				row[i] = coerceField(rec.fields[i])
			} else {
				row[i] = None
			}
		}
		rows = append(rows, row)
	}
	return NewCsvArray(rows), nil
}
