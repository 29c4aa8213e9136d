package lexer

// TokenType represents the category of a token
type TokenType int

const (
	TOKEN_UNKNOWN     TokenType = iota
	TOKEN_WORD                  // SET, my_key, 42, + (bare word)
	TOKEN_STRING                // "hello there" (double-quoted, keeps whitespace)
	TOKEN_PLACEHOLDER           // {} or {0} (substitution slot)
	TOKEN_EOF                   // End of input
)

// Token represents a single token with position info
type Token struct {
	Type     TokenType
	Value    string // Token data with quotes/braces stripped and escapes resolved
	Position int    // Character position in input
	Line     int    // Line number (1-indexed)
	Column   int    // Column number (1-indexed)
}

// String returns human-readable token type name
func (t TokenType) String() string {
	names := []string{
		"UNKNOWN",
		"WORD",
		"STRING",
		"PLACEHOLDER",
		"EOF",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "UNKNOWN"
}
