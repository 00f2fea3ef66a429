package clex

import "github.com/ltungv/clex/internal/token"

// TokenStream hands out a scanned token sequence one token at a time. The
// sequence always ends with an EOF token, which is never consumed.
type TokenStream struct {
	current int
	tokens  []*token.Token
	// pushed holds a token given back by the parser. It is returned before
	// anything else in tokens.
	pushed *token.Token
}

// NewTokenStream creates a stream over tokens, appending EOF if the sequence
// does not already end with it.
func NewTokenStream(tokens []*token.Token) *TokenStream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Typ != token.EOF {
		line, col := 1, 1
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			line, col = last.Line, last.Col+len(last.Lexeme)
		}
		tokens = append(tokens, token.New(token.EOF, "", nil, line, col))
	}
	return &TokenStream{0, tokens, nil}
}

// Peek returns the next token without consuming it.
func (stream *TokenStream) Peek() *token.Token {
	if stream.pushed != nil {
		return stream.pushed
	}
	return stream.tokens[stream.current]
}

// Next consumes and returns the next token. Once the stream reaches EOF, every
// call returns the EOF token again.
func (stream *TokenStream) Next() *token.Token {
	if tok := stream.pushed; tok != nil {
		stream.pushed = nil
		return tok
	}
	tok := stream.tokens[stream.current]
	if tok.Typ != token.EOF {
		stream.current++
	}
	return tok
}

// GiveBack makes tok the next token returned by Peek and Next. Panics if a
// token was already given back and has not been consumed since.
func (stream *TokenStream) GiveBack(tok *token.Token) {
	if stream.pushed != nil {
		panic("clex: double give back")
	}
	stream.pushed = tok
}

// AtEnd reports whether the next token is EOF.
func (stream *TokenStream) AtEnd() bool {
	return stream.Peek().Typ == token.EOF
}
