// ----------------------------------------------------------------------------
// FILE: lexer/lexer.go
// ----------------------------------------------------------------------------
// PACKAGE: lexer
// PURPOSE: Converts source text into a token stream. Character-driven scan
//          with a single integer cursor, following spec §4.1.
// ----------------------------------------------------------------------------

package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"schemego/lerr"
	"schemego/token"
)

// delimiters that terminate a bare identifier/number run (spec §4.1 rule 7).
const delimiters = "()'`,\""

// Lexer scans a source string into a stream of Tokens.
type Lexer struct {
	input        string
	position     int  // current position in input (points at current char)
	readPosition int  // position of the next rune to read
	ch           rune // current char under examination
	line         int
	column       int
}

// New initializes a new Lexer over the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize drains the Lexer into a slice of Tokens, terminating at EOF. It is
// the whole-input convenience the parser's token queue is built from.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok == (token.Token{}) {
			break // NextToken's end-of-input result; real tokens have Line >= 1
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (l *Lexer) isEOF() bool {
	return l.ch == 0 && l.readPosition >= len(l.input)
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// NextToken scans and returns the next Token, skipping whitespace and both
// comment styles first. Returns a *lerr.Error of Kind Syntax on malformed
// input (unterminated string/block comment, bad hash literal).
func (l *Lexer) NextToken() (token.Token, error) {
	for {
		l.skipWhitespace()

		if l.ch == ';' {
			l.skipLineComment()
			continue
		}
		if l.ch == '#' && l.peekChar() == '|' {
			if err := l.skipBlockComment(); err != nil {
				return token.Token{}, err
			}
			continue
		}
		break
	}

	line, column := l.line, l.column

	switch {
	case l.ch == 0:
		return token.Token{}, nil

	case l.ch == '#':
		return l.readHashLiteral(line, column)

	case l.ch == '(':
		l.readChar()
		return token.New(token.LeftParen, "(", line, column), nil
	case l.ch == ')':
		l.readChar()
		return token.New(token.RightParen, ")", line, column), nil
	case l.ch == '\'':
		l.readChar()
		return token.New(token.Quote, "'", line, column), nil
	case l.ch == '`':
		l.readChar()
		return token.New(token.Quasiquote, "`", line, column), nil
	case l.ch == ',':
		l.readChar()
		return token.New(token.Unquote, ",", line, column), nil

	case l.ch == '"':
		return l.readString(line, column)

	default:
		return l.readAtom(line, column)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) skipBlockComment() error {
	l.readChar() // consume '#'
	l.readChar() // consume '|'
	for {
		if l.ch == 0 {
			return lerr.Syntaxf("unterminated block comment")
		}
		if l.ch == '|' && l.peekChar() == '#' {
			l.readChar()
			l.readChar()
			return nil
		}
		l.readChar()
	}
}

func (l *Lexer) readHashLiteral(line, column int) (token.Token, error) {
	l.readChar() // consume '#'
	switch l.ch {
	case 't':
		l.readChar()
		tok := token.New(token.BooleanLiteral, "#t", line, column)
		tok.Bool = true
		return tok, nil
	case 'f':
		l.readChar()
		tok := token.New(token.BooleanLiteral, "#f", line, column)
		tok.Bool = false
		return tok, nil
	default:
		return token.Token{}, lerr.Syntaxf("unexpected character after '#': %q", l.ch)
	}
}

func (l *Lexer) readString(line, column int) (token.Token, error) {
	var out strings.Builder
	l.readChar() // consume opening quote
	for {
		if l.ch == 0 {
			return token.Token{}, lerr.Syntaxf("unterminated string literal")
		}
		if l.ch == '"' {
			l.readChar()
			return token.New(token.StringLiteral, out.String(), line, column), nil
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return token.Token{}, lerr.Syntaxf("unterminated string literal")
			}
			switch l.ch {
			case 'n':
				out.WriteByte('\n')
			default:
				out.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		out.WriteRune(l.ch)
		l.readChar()
	}
}

// readAtom reads a lexeme run until whitespace or a delimiter, then
// classifies it as DOT, a number, or an identifier (spec §4.1 rule 7).
func (l *Lexer) readAtom(line, column int) (token.Token, error) {
	start := l.position
	for l.ch != 0 && !isSpace(l.ch) && !strings.ContainsRune(delimiters, l.ch) {
		l.readChar()
	}
	text := l.input[start:l.position]
	if text == "" {
		return token.Token{}, lerr.Syntaxf("unexpected character %q", l.ch)
	}

	if text == "." {
		return token.New(token.Dot, ".", line, column), nil
	}

	if n, ok := parseNumber(text); ok {
		tok := token.New(token.NumericLiteral, text, line, column)
		tok.Num = n
		return tok, nil
	}

	return token.New(token.Identifier, text, line, column), nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// parseNumber recognizes a decimal integer or float with an optional
// leading sign, per spec §3.1. Anything that doesn't parse completely as a
// number is left to be treated as an identifier.
func parseNumber(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	body := text
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if body == "" || body == "." || strings.Trim(body, "0123456789.") != "" || strings.Count(body, ".") > 1 {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
