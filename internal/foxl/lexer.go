// lexer.go scans FoxL source text into a token stream. It is a single-pass,
// non-restartable cursor over the input: each call to Next consumes and
// returns the next token, terminating the sequence with an EOF token.
package foxl

import "strings"

// Lexer scans a source string into tokens. Create one with NewLexer and
// drain it with repeated calls to Next.
type Lexer struct {
	src  string
	pos  int
	line int
}

// NewLexer returns a Lexer positioned at the start of src, line 1.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1}
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekByte() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekByteAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
	}
	return b
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentCont(b byte) bool { return isIdentStart(b) || isDigit(b) }

// skipWhitespaceAndComments advances past whitespace (including CR, which
// is tolerated as whitespace per spec) and "//" line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		b := l.peekByte()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.advance()
		case b == '/' && l.peekByteAt(1) == '/':
			for !l.atEnd() && l.peekByte() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// Next returns the next token in the stream, or an EOF token once the
// input is exhausted. It returns an error for an unterminated string or an
// unrecognized byte.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespaceAndComments()
	if l.atEnd() {
		return Token{Kind: EOF, Line: l.line}, nil
	}

	startLine := l.line
	b := l.peekByte()

	switch {
	case isIdentStart(b):
		return l.scanIdentifier(startLine), nil
	case isDigit(b):
		return l.scanNumber(startLine), nil
	case b == '\'' || b == '"':
		return l.scanString(startLine)
	case strings.IndexByte(operatorLeadBytes, b) != -1:
		return l.scanOperator(startLine), nil
	case strings.IndexByte(symbolBytes, b) != -1:
		l.advance()
		return Token{Kind: Symbol, Text: string(b), Line: startLine}, nil
	default:
		l.advance()
		return Token{}, &LexError{Line: startLine, Msg: "unknown character"}
	}
}

func (l *Lexer) scanIdentifier(line int) Token {
	start := l.pos
	for !l.atEnd() && isIdentCont(l.peekByte()) {
		l.advance()
	}
	text := l.src[start:l.pos]
	if keywords[text] {
		return Token{Kind: Keyword, Text: text, Line: line}
	}
	return Token{Kind: Identifier, Text: text, Line: line}
}

func (l *Lexer) scanNumber(line int) Token {
	start := l.pos
	seenDot := false
	for !l.atEnd() {
		b := l.peekByte()
		if isDigit(b) {
			l.advance()
			continue
		}
		if b == '.' && !seenDot && isDigit(l.peekByteAt(1)) {
			seenDot = true
			l.advance()
			continue
		}
		break
	}
	return Token{Kind: Number, Text: l.src[start:l.pos], Line: line}
}

func (l *Lexer) scanString(line int) (Token, error) {
	quote := l.advance()
	var b strings.Builder
	for {
		if l.atEnd() {
			return Token{}, &LexError{Line: line, Msg: "unterminated string literal"}
		}
		c := l.advance()
		if c == quote {
			return Token{Kind: StringLiteral, Text: b.String(), Line: line}, nil
		}
		if c == '\\' {
			if l.atEnd() {
				return Token{}, &LexError{Line: line, Msg: "unterminated string literal"}
			}
			esc := l.advance()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '\'':
				b.WriteByte('\'')
			case '"':
				b.WriteByte('"')
			default:
				b.WriteByte(esc)
			}
			continue
		}
		b.WriteByte(c)
	}
}

func (l *Lexer) scanOperator(line int) Token {
	for _, op := range multiCharOperators {
		if strings.HasPrefix(l.src[l.pos:], op) {
			for range op {
				l.advance()
			}
			return Token{Kind: Operator, Text: op, Line: line}
		}
	}
	b := l.advance()
	return Token{Kind: Operator, Text: string(b), Line: line}
}

// Tokenize drains a fresh Lexer over src into a slice, ending with EOF.
// Used by the parser's lookahead buffer and by tests.
func Tokenize(src string) ([]Token, error) {
	lx := NewLexer(src)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}
