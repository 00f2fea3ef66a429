package token

// Type is a just a wrapped int used to represent token's type
type Type int

const (
	ERROR Type = iota - 1
	EOF
	NEWLINE

	// Literals
	NUMBER
	IDENTIFIER

	// Binary and sign operators
	PLUS
	MINUS
	STAR
	SLASH
	CARET

	// Unary functions
	SQRT
	LOG
	SIN
	COS
	TAN
	ARCSIN
	ARCCOS
	ARCTAN

	EQUAL
	LEFT_PAREN
	RIGHT_PAREN
)

// Keywords maps the reserved function names to their token types.
var Keywords = map[string]Type{
	"sqrt":   SQRT,
	"log":    LOG,
	"sin":    SIN,
	"cos":    COS,
	"tan":    TAN,
	"arcsin": ARCSIN,
	"arccos": ARCCOS,
	"arctan": ARCTAN,
}

// BinaryOperators lists every type that can join two operands.
var BinaryOperators = []Type{PLUS, MINUS, STAR, SLASH, CARET}

func (tt Type) String() string {
	switch tt {
	case ERROR:
		return "ERROR"
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case NUMBER:
		return "NUMBER"
	case IDENTIFIER:
		return "IDENTIFIER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case CARET:
		return "CARET"
	case SQRT:
		return "SQRT"
	case LOG:
		return "LOG"
	case SIN:
		return "SIN"
	case COS:
		return "COS"
	case TAN:
		return "TAN"
	case ARCSIN:
		return "ARCSIN"
	case ARCCOS:
		return "ARCCOS"
	case ARCTAN:
		return "ARCTAN"
	case EQUAL:
		return "EQUAL"
	case LEFT_PAREN:
		return "LEFT_PAREN"
	case RIGHT_PAREN:
		return "RIGHT_PAREN"
	}
	return "INVALID"
}

// Lexeme returns the source text of a type that always has the same
// spelling, or the empty string.
func (tt Type) Lexeme() string {
	switch tt {
	case NEWLINE:
		return "\n"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case CARET:
		return "^"
	case EQUAL:
		return "="
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case SQRT:
		return "sqrt"
	case LOG:
		return "log"
	case SIN:
		return "sin"
	case COS:
		return "cos"
	case TAN:
		return "tan"
	case ARCSIN:
		return "arcsin"
	case ARCCOS:
		return "arccos"
	case ARCTAN:
		return "arctan"
	}
	return ""
}

// Describe renders the type for diagnostics, quoting fixed spellings:
// '+', 'sqrt', NUMBER, end of input.
func (tt Type) Describe() string {
	switch tt {
	case EOF:
		return "end of input"
	case NEWLINE:
		return "end of line"
	case NUMBER, IDENTIFIER, ERROR:
		return tt.String()
	}
	if lex := tt.Lexeme(); lex != "" {
		return "'" + lex + "'"
	}
	return tt.String()
}
