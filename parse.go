package options

import (
	"fmt"
	"strconv"
	"strings"
)

// AddFromString parses scope grammar text into s, for example:
//
//	threads=4, net("weights.pb", scale=1.0), search(cpuct=3.1, "name"="test run")
//
// key=value assigns into the current scope with the type inferred from the
// literal form: a quoted literal is a string, "true"/"false" a bool, an
// integer literal an int, a float literal a float64, and anything else a
// string. Keys may be quoted. name(...) creates a subscope and parses the
// parenthesized contents into it. A bare value without a key is assigned to
// the empty-string key of the current scope. Whitespace around tokens is
// insignificant.
//
// Malformed text yields a *SyntaxError; a subscope name colliding with an
// existing sibling yields ErrDuplicateSubscope.
func (s *Scope) AddFromString(text string) error {
	p := &parser{input: text}
	if err := p.parseScope(s); err != nil {
		return err
	}
	// parseScope stops at end of input or at an unopened ')'.
	if p.pos < len(p.input) {
		return p.errf(p.pos, "unexpected %q", p.input[p.pos])
	}
	return nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errf(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// parseScope parses a comma-separated clause list into dst. It returns with
// the position on the terminating ')' or at end of input; the caller decides
// which of the two is legal.
func (p *parser) parseScope(dst *Scope) error {
	for {
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] == ')' {
			return nil
		}
		if err := p.parseClause(dst); err != nil {
			return err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] == ')' {
			return nil
		}
		if p.input[p.pos] != ',' {
			return p.errf(p.pos, "expected ',' between assignments, found %q", p.input[p.pos])
		}
		p.pos++
	}
}

// parseClause parses one of: key=value, name(...), or a bare value assigned
// to the empty-string key.
func (p *parser) parseClause(dst *Scope) error {
	start := p.pos
	var first string
	var quoted bool
	if p.input[p.pos] == '"' {
		tok, err := p.parseQuoted()
		if err != nil {
			return err
		}
		first, quoted = tok, true
	} else {
		first = p.parseBare()
		if first == "" {
			return p.errf(start, "expected identifier or value, found %q", p.input[p.pos])
		}
	}

	p.skipSpace()
	switch {
	case p.pos < len(p.input) && p.input[p.pos] == '=':
		p.pos++
		return p.parseValue(dst, first)
	case !quoted && p.pos < len(p.input) && p.input[p.pos] == '(':
		parenPos := p.pos
		p.pos++
		child, err := dst.AddSubscope(first)
		if err != nil {
			return err
		}
		if err := p.parseScope(child); err != nil {
			return err
		}
		if p.pos >= len(p.input) {
			return p.errf(parenPos, "unmatched '('")
		}
		p.pos++ // consume ')'
		return nil
	default:
		// Bare value without a key: store under the scope's empty key.
		if quoted {
			Set(dst, "", first)
		} else {
			setInferred(dst, "", first)
		}
		return nil
	}
}

// parseValue parses the right-hand side of an assignment and stores it under
// key with its inferred type.
func (p *parser) parseValue(dst *Scope, key string) error {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '"' {
		v, err := p.parseQuoted()
		if err != nil {
			return err
		}
		Set(dst, key, v)
		return nil
	}
	start := p.pos
	tok := p.parseBare()
	if tok == "" {
		return p.errf(start, "missing value after '='")
	}
	setInferred(dst, key, tok)
	return nil
}

// setInferred stores an unquoted literal with its type inferred from the
// form: "true"/"false" are booleans, integer literals ints, float literals
// (decimal point or exponent) float64s, anything else a plain string.
func setInferred(dst *Scope, key, tok string) {
	switch tok {
	case "true":
		Set(dst, key, true)
	case "false":
		Set(dst, key, false)
	default:
		if n, err := strconv.Atoi(tok); err == nil {
			Set(dst, key, n)
		} else if f, err := strconv.ParseFloat(tok, 64); err == nil {
			Set(dst, key, f)
		} else {
			Set(dst, key, tok)
		}
	}
}

// parseQuoted consumes a double-quoted string starting at the current
// position. A backslash escapes the following character.
func (p *parser) parseQuoted() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.input) {
		switch c := p.input[p.pos]; c {
		case '\\':
			if p.pos+1 >= len(p.input) {
				return "", p.errf(start, "unterminated quoted string")
			}
			p.pos++
			b.WriteByte(p.input[p.pos])
			p.pos++
		case '"':
			p.pos++
			return b.String(), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errf(start, "unterminated quoted string")
}

// parseBare consumes a run of characters up to a structural character or
// whitespace. The result may be empty.
func (p *parser) parseBare() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '=' || c == '(' || c == ')' || c == ',' || c == '"' || isSpace(c) {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
