package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Lexer state while walking a command literal. Double quotes keep whitespace
// inside a single token, curly braces mark a substitution placeholder. Quotes
// and braces only open at a word boundary; inside a word they are plain
// characters.
type state int

const (
	stateSplit  state = iota // Between words (whitespace)
	stateWord                // Inside unquoted word
	stateQuote               // Inside double quote
	stateEscape              // Inside double quote after backslash
	stateBrace               // Inside brace
)

// Tokenizer converts a command literal to tokens
type Tokenizer struct {
	input  string
	pos    int
	line   int
	column int
	tokens []Token
}

// Tokenize converts a command literal to tokens
func Tokenize(input string) ([]Token, error) {
	t := &Tokenizer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
	return t.tokenize()
}

func (t *Tokenizer) tokenize() ([]Token, error) {
	var word strings.Builder
	var quoted, braced bool
	st := stateSplit

	// Position of the first character of the token being built
	startPos, startLine, startCol := 0, 1, 1

	flush := func() {
		tokenType := TOKEN_WORD
		if quoted {
			tokenType = TOKEN_STRING
		} else if braced {
			tokenType = TOKEN_PLACEHOLDER
		}
		t.tokens = append(t.tokens, Token{
			Type:     tokenType,
			Value:    word.String(),
			Position: startPos,
			Line:     startLine,
			Column:   startCol,
		})
		word.Reset()
		quoted = false
		braced = false
	}

	for t.pos < len(t.input) {
		ch := t.input[t.pos]

		switch st {
		case stateSplit:
			switch ch {
			case ' ', '\t', '\n':
				// Stay between words; \r is an ordinary character
			case '"':
				t.markStart(&startPos, &startLine, &startCol)
				quoted = true
				st = stateQuote
			case '{':
				t.markStart(&startPos, &startLine, &startCol)
				braced = true
				st = stateBrace
			default:
				t.markStart(&startPos, &startLine, &startCol)
				word.WriteByte(ch)
				st = stateWord
			}

		case stateWord:
			switch ch {
			case ' ', '\t', '\n':
				flush()
				st = stateSplit
			default:
				word.WriteByte(ch)
			}

		case stateQuote:
			switch ch {
			case '"':
				// Closing quote; the word may continue ("ab"cd is one token)
				st = stateWord
			case '\\':
				st = stateEscape
			default:
				word.WriteByte(ch)
			}

		case stateEscape:
			word.WriteByte(unescape(ch))
			st = stateQuote

		case stateBrace:
			switch ch {
			case '}':
				st = stateWord
			default:
				word.WriteByte(ch)
			}
		}

		t.advance(ch)
	}

	// End of input: an open quote, brace, or escape means the literal is
	// malformed and the whole expansion must fail
	switch st {
	case stateWord:
		flush()
	case stateQuote:
		return nil, &ParseError{
			Message:  "unclosed double quote",
			Position: startPos,
			Line:     startLine,
			Column:   startCol,
		}
	case stateEscape:
		return nil, &ParseError{
			Message:  "incomplete escape sequence",
			Position: startPos,
			Line:     startLine,
			Column:   startCol,
		}
	case stateBrace:
		return nil, &ParseError{
			Message:  "unclosed brace",
			Position: startPos,
			Line:     startLine,
			Column:   startCol,
		}
	}

	// Validate placeholder contents: empty ({}) binds the next substitution
	// value, digits ({2}) bind by index. Indices must fit in an int so the
	// builder's range check is sound.
	for _, token := range t.tokens {
		if token.Type != TOKEN_PLACEHOLDER || token.Value == "" {
			continue
		}
		if !isDigits(token.Value) {
			return nil, NewParseError(token, fmt.Sprintf(
				"invalid placeholder {%s}: expected {} or an argument index like {0}", token.Value))
		}
		if _, err := strconv.Atoi(token.Value); err != nil {
			return nil, NewParseError(token, fmt.Sprintf(
				"placeholder index {%s} out of range", token.Value))
		}
	}

	// Add EOF token
	t.tokens = append(t.tokens, Token{
		Type:     TOKEN_EOF,
		Value:    "",
		Position: t.pos,
		Line:     t.line,
		Column:   t.column,
	})

	return t.tokens, nil
}

func (t *Tokenizer) markStart(pos, line, col *int) {
	*pos = t.pos
	*line = t.line
	*col = t.column
}

func (t *Tokenizer) advance(ch byte) {
	t.pos++
	if ch == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

// unescape resolves a backslash escape inside a quoted token.
// Unknown escapes keep the escaped character.
func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return ch
	}
}

func isDigits(content string) bool {
	for i := 0; i < len(content); i++ {
		if content[i] < '0' || content[i] > '9' {
			return false
		}
	}
	return true
}
