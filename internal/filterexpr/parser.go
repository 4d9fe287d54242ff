package filterexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piksel-lt/orderdesk/internal/apperrors"
)

// columns whitelists the predicate field names and maps them to the
// columns of the orders table. Anything else in a predicate is rejected.
var columns = map[string]string{
	"id":             "order_id",
	"client":         "client",
	"agency":         "agency",
	"invoice_id":     "invoice_id",
	"approved":       "approved",
	"viaduct":        "viaduct",
	"from":           "from_date",
	"to":             "to_date",
	"media_received": "media_received",
	"invoice_sent":   "invoice_sent",
	"final_price":    "final_price",
	"updated":        "updated_at",
	"created":        "created_at",
}

// ToSQL parses a filter predicate and renders it as a parameterized SQL
// condition. Placeholders are numbered starting at argOffset+1 so the
// condition can be appended to a query that already carries arguments.
// An empty predicate returns an empty condition and no error. Malformed
// predicates and unknown fields return an error wrapping
// apperrors.ErrValidation.
func ToSQL(filter string, argOffset int) (string, []any, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return "", nil, nil
	}

	p := &parser{lex: newLexer(filter), argOffset: argOffset}
	cond, err := p.parseOr()
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid filter: %v", apperrors.ErrValidation, err)
	}
	if tok := p.lex.next(); tok.kind != tokEOF {
		return "", nil, fmt.Errorf("%w: invalid filter: unexpected %q", apperrors.ErrValidation, tok.text)
	}
	return cond, p.args, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokOp     // = != ~ >= <= > <
	tokAnd    // &&
	tokOr     // ||
	tokLParen // (
	tokRParen // )
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
}

type lexer struct {
	input  string
	pos    int
	peeked *token
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) peek() token {
	if l.peeked == nil {
		t := l.scan()
		l.peeked = &t
	}
	return *l.peeked
}

func (l *lexer) next() token {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t
	}
	return l.scan()
}

func (l *lexer) scan() token {
	for l.pos < len(l.input) && l.input[l.pos] == ' ' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF}
	}

	c := l.input[l.pos]
	switch {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "("}
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")"}
	case c == '&':
		if strings.HasPrefix(l.input[l.pos:], "&&") {
			l.pos += 2
			return token{kind: tokAnd, text: "&&"}
		}
	case c == '|':
		if strings.HasPrefix(l.input[l.pos:], "||") {
			l.pos += 2
			return token{kind: tokOr, text: "||"}
		}
	case c == '"':
		return l.scanString()
	case c == '!':
		if strings.HasPrefix(l.input[l.pos:], "!=") {
			l.pos += 2
			return token{kind: tokOp, text: "!="}
		}
	case c == '>' || c == '<':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '=' {
			l.pos += 2
			return token{kind: tokOp, text: string(c) + "="}
		}
		l.pos++
		return token{kind: tokOp, text: string(c)}
	case c == '=':
		l.pos++
		return token{kind: tokOp, text: "="}
	case c == '~':
		l.pos++
		return token{kind: tokOp, text: "~"}
	case isIdentStart(c):
		start := l.pos
		for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.input[start:l.pos]}
	case isDigit(c) || c == '-':
		start := l.pos
		l.pos++
		for l.pos < len(l.input) && (isDigit(l.input[l.pos]) || l.input[l.pos] == '.') {
			l.pos++
		}
		return token{kind: tokNumber, text: l.input[start:l.pos]}
	}
	return token{kind: tokInvalid, text: string(c)}
}

func (l *lexer) scanString() token {
	// Opening quote already seen.
	l.pos++
	var b strings.Builder
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '\\' && l.pos+1 < len(l.input) {
			b.WriteByte(l.input[l.pos+1])
			l.pos += 2
			continue
		}
		if c == '"' {
			l.pos++
			return token{kind: tokString, text: b.String()}
		}
		b.WriteByte(c)
		l.pos++
	}
	return token{kind: tokInvalid, text: "unterminated string"}
}

func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentChar(c byte) bool  { return isIdentStart(c) || isDigit(c) }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }

type parser struct {
	lex       *lexer
	args      []any
	argOffset int
}

func (p *parser) placeholder(v any) string {
	p.args = append(p.args, v)
	return fmt.Sprintf("$%d", p.argOffset+len(p.args))
}

func (p *parser) parseOr() (string, error) {
	left, err := p.parseAnd()
	if err != nil {
		return "", err
	}
	parts := []string{left}
	for p.lex.peek().kind == tokOr {
		p.lex.next()
		right, err := p.parseAnd()
		if err != nil {
			return "", err
		}
		parts = append(parts, right)
	}
	if len(parts) == 1 {
		return left, nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", nil
}

func (p *parser) parseAnd() (string, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return "", err
	}
	parts := []string{left}
	for p.lex.peek().kind == tokAnd {
		p.lex.next()
		right, err := p.parsePrimary()
		if err != nil {
			return "", err
		}
		parts = append(parts, right)
	}
	if len(parts) == 1 {
		return left, nil
	}
	return "(" + strings.Join(parts, " AND ") + ")", nil
}

func (p *parser) parsePrimary() (string, error) {
	tok := p.lex.next()
	if tok.kind == tokLParen {
		inner, err := p.parseOr()
		if err != nil {
			return "", err
		}
		if closing := p.lex.next(); closing.kind != tokRParen {
			return "", fmt.Errorf("expected ')', got %q", closing.text)
		}
		return inner, nil
	}
	if tok.kind != tokIdent {
		return "", fmt.Errorf("expected field name, got %q", tok.text)
	}
	column, ok := columns[tok.text]
	if !ok {
		return "", fmt.Errorf("unknown field %q", tok.text)
	}

	op := p.lex.next()
	if op.kind != tokOp {
		return "", fmt.Errorf("expected operator after %q, got %q", tok.text, op.text)
	}

	val := p.lex.next()
	switch val.kind {
	case tokString:
		return p.comparison(column, op.text, val.text)
	case tokNumber:
		n, err := strconv.ParseFloat(val.text, 64)
		if err != nil {
			return "", fmt.Errorf("bad number %q", val.text)
		}
		return p.comparison(column, op.text, n)
	case tokIdent:
		switch val.text {
		case "true", "false":
			return p.comparison(column, op.text, val.text == "true")
		}
		return "", fmt.Errorf("unexpected value %q", val.text)
	default:
		return "", fmt.Errorf("expected value after operator, got %q", val.text)
	}
}

func (p *parser) comparison(column, op string, value any) (string, error) {
	switch op {
	case "~":
		s, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("operator ~ needs a quoted string")
		}
		return fmt.Sprintf("%s ILIKE %s", column, p.placeholder("%"+escapeLike(s)+"%")), nil
	case "=":
		return fmt.Sprintf("%s = %s", column, p.placeholder(value)), nil
	case "!=":
		return fmt.Sprintf("%s <> %s", column, p.placeholder(value)), nil
	case ">=", "<=", ">", "<":
		return fmt.Sprintf("%s %s %s", column, op, p.placeholder(value)), nil
	default:
		return "", fmt.Errorf("unsupported operator %q", op)
	}
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
