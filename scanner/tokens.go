package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/gorem"
)

// EOF is the token type of the distinguished end-of-input token.
const EOF gorem.TokType = -1

// Token types of the C-like language. The zero value is not a valid type.
const (
	LeftParen gorem.TokType = iota + 1
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Semicolon
	Comma
	Question
	BitNot
	Mod
	Dot
	Xor
	Colon
	DoubleColon
	Plus
	Minus
	Arrow
	Star
	Div
	Assign
	Equal
	Not
	NotEqual
	LessThan
	LessThanEqual
	ShiftLeft
	GreaterThan
	GreaterThanEqual
	ShiftRight
	BitAnd
	And
	BitOr
	Or
	// keywords
	Auto
	Break
	Case
	Const
	Continue
	Default
	Do
	Else
	Enum
	Extern
	For
	Goto
	If
	Register
	Return
	Static
	Struct
	Switch
	Typedef
	Union
	Volatile
	While
	// tokens with a value
	Identifier
	Integer
	Float
	String
	Character
	Directive
)

// FloatValue is the value of a Float token. Integral and fractional part
// are stored separately, each as an unsigned integer. Leading zeros of the
// fractional part are not preserved; clients needing the exact digits
// should use the token's lexeme.
type FloatValue struct {
	Integral   uint64
	Fractional uint64
}

func (f FloatValue) String() string {
	return fmt.Sprintf("%d.%d", f.Integral, f.Fractional)
}

// keywords maps C keywords to their token types.
var keywords = map[string]gorem.TokType{
	"auto":     Auto,
	"break":    Break,
	"case":     Case,
	"const":    Const,
	"continue": Continue,
	"default":  Default,
	"do":       Do,
	"else":     Else,
	"enum":     Enum,
	"extern":   Extern,
	"for":      For,
	"goto":     Goto,
	"if":       If,
	"register": Register,
	"return":   Return,
	"static":   Static,
	"struct":   Struct,
	"switch":   Switch,
	"typedef":  Typedef,
	"union":    Union,
	"volatile": Volatile,
	"while":    While,
}

// operators maps punctuation and operator lexemes to their token types.
var operators = map[string]gorem.TokType{
	"(":  LeftParen,
	")":  RightParen,
	"{":  LeftBrace,
	"}":  RightBrace,
	"[":  LeftBracket,
	"]":  RightBracket,
	";":  Semicolon,
	",":  Comma,
	"?":  Question,
	"~":  BitNot,
	"%":  Mod,
	".":  Dot,
	"^":  Xor,
	":":  Colon,
	"::": DoubleColon,
	"+":  Plus,
	"-":  Minus,
	"->": Arrow,
	"*":  Star,
	"/":  Div,
	"=":  Assign,
	"==": Equal,
	"!":  Not,
	"!=": NotEqual,
	"<":  LessThan,
	"<=": LessThanEqual,
	"<<": ShiftLeft,
	">":  GreaterThan,
	">=": GreaterThanEqual,
	">>": ShiftRight,
	"&":  BitAnd,
	"&&": And,
	"|":  BitOr,
	"||": Or,
}

var valueTokenNames = map[gorem.TokType]string{
	EOF:        "EOF",
	Identifier: "Identifier",
	Integer:    "Integer",
	Float:      "Float",
	String:     "String",
	Character:  "Character",
	Directive:  "Directive",
}

// Operators returns all operator and punctuation lexemes. The order is
// unspecified.
func Operators() []string {
	ops := make([]string, 0, len(operators))
	for op := range operators {
		ops = append(ops, op)
	}
	return ops
}

// Keywords returns all keyword lexemes. The order is unspecified.
func Keywords() []string {
	kw := make([]string, 0, len(keywords))
	for k := range keywords {
		kw = append(kw, k)
	}
	return kw
}

// OperatorType returns the token type for an operator lexeme.
func OperatorType(op string) (gorem.TokType, bool) {
	t, ok := operators[op]
	return t, ok
}

// TokTypeString is a gorem.TokTypeStringer for the alphabet of this package.
func TokTypeString(t gorem.TokType) string {
	if name, ok := valueTokenNames[t]; ok {
		return name
	}
	for op, typ := range operators {
		if typ == t {
			return op
		}
	}
	for kw, typ := range keywords {
		if typ == t {
			return kw
		}
	}
	return fmt.Sprintf("<toktype %d>", int(t))
}

var _ gorem.TokTypeStringer = TokTypeString

// --- Token construction shared by scanner backends -------------------------

// WordToken creates a keyword token if word is a C keyword, and an
// identifier token otherwise.
func WordToken(word string, span gorem.Span) Token {
	if kw, ok := keywords[word]; ok {
		return MakeToken(kw, word, nil, span)
	}
	return MakeToken(Identifier, word, word, span)
}

// NumberToken creates an Integer or Float token from a lexeme of decimal
// digits, containing at most one dot. Integers have to fit into an int64.
func NumberToken(lexeme string, span gorem.Span) (Token, error) {
	integral, fraction, isFloat := strings.Cut(lexeme, ".")
	if !isFloat {
		n, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return Token{}, fmt.Errorf("integer literal %s out of range", lexeme)
		}
		return MakeToken(Integer, lexeme, n, span), nil
	}
	return MakeToken(Float, lexeme, FloatValue{
		Integral:   unsignedOrZero(integral),
		Fractional: unsignedOrZero(fraction),
	}, span), nil
}

// QuotedToken creates a String or Character token, depending on the opening
// quote. The lexeme includes both quotes.
func QuotedToken(lexeme string, span gorem.Span) Token {
	if strings.HasPrefix(lexeme, "'") {
		return MakeToken(Character, lexeme, lexeme, span)
	}
	return MakeToken(String, lexeme, lexeme, span)
}

// DirectiveToken creates a pre-processor directive token. The lexeme
// includes the leading '#'.
func DirectiveToken(lexeme string, span gorem.Span) Token {
	return MakeToken(Directive, lexeme, lexeme, span)
}

// Empty or overlong halves of a float count as zero.
func unsignedOrZero(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
