package clex

import (
	"strconv"
	"unicode"

	"github.com/ltungv/clex/internal/token"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line      int
	lineStart int
	start     int
	current   int
	source    []rune
	tokens    []*token.Token
	reporter  Reporter
	hadErr    bool
}

// NewScanner creates a new token scanner
func NewScanner(source []rune, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.source = source
	scanner.tokens = make([]*token.Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. Characters that start no token become ERROR tokens and are reported.
// The result always ends with EOF.
func (scanner *Scanner) Scan() []*token.Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.addToken(token.NEWLINE, nil)
			scanner.line++
			scanner.lineStart = scanner.current
		// Single character tokens
		case '(':
			scanner.addToken(token.LEFT_PAREN, nil)
		case ')':
			scanner.addToken(token.RIGHT_PAREN, nil)
		case '+':
			scanner.addToken(token.PLUS, nil)
		case '-':
			scanner.addToken(token.MINUS, nil)
		case '*':
			scanner.addToken(token.STAR, nil)
		case '/':
			scanner.addToken(token.SLASH, nil)
		case '^':
			scanner.addToken(token.CARET, nil)
		case '=':
			scanner.addToken(token.EQUAL, nil)
		default:
			if isDigit(r) || r == '.' && isDigit(scanner.peek()) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.scanError()
			}
		}
	}
	scanner.start = scanner.current
	scanner.addToken(token.EOF, nil)
	return scanner.tokens
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	// optional exponent, only taken when digits follow
	if r := scanner.peek(); r == 'e' || r == 'E' {
		next := scanner.peekNext()
		skip := 1
		if next == '+' || next == '-' {
			next = scanner.peekAt(2)
			skip = 2
		}
		if isDigit(next) {
			for i := 0; i < skip; i++ {
				scanner.advance()
			}
			for isDigit(scanner.peek()) {
				scanner.advance()
			}
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	literal, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// The lexeme is well-formed, so ParseFloat can only fail on range.
		scanner.report(NewNumberRangeError(scanner.line, scanner.col(), lexeme))
	}
	scanner.addToken(token.NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := token.Keywords[lexeme]; isKeyword {
		scanner.addToken(tokenType, nil)
	} else {
		scanner.addToken(token.IDENTIFIER, nil)
	}
}

// scanError groups a run of unexpected characters into one ERROR token.
func (scanner *Scanner) scanError() {
	for scanner.hasNext() && !startsToken(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	scanner.report(NewScanError(scanner.line, scanner.col(), lexeme))
	scanner.addToken(token.ERROR, nil)
}

func (scanner *Scanner) report(err error) {
	scanner.hadErr = true
	scanner.reporter.Report(err)
}

// HadError reports whether Scan found anything it could not turn into a token.
func (scanner *Scanner) HadError() bool {
	return scanner.hadErr
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ token.Type, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := token.New(typ, lexeme, literal, scanner.line, scanner.col())
	scanner.tokens = append(scanner.tokens, tok)
}

// col is the 1-based column of `start` on the current line
func (scanner *Scanner) col() int {
	return scanner.start - scanner.lineStart + 1
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	return scanner.peekAt(0)
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	return scanner.peekAt(1)
}

func (scanner *Scanner) peekAt(offset int) rune {
	if scanner.current+offset >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+offset]
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func startsToken(r rune) bool {
	switch r {
	case ' ', '\r', '\t', '\n', '(', ')', '+', '-', '*', '/', '^', '=', '.':
		return true
	}
	return isDigit(r) || isBeginIdent(r)
}
