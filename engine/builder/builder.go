package builder

import (
	"fmt"
	"strconv"

	"github.com/cmdlit-engine/cmdlit/engine/lexer"
	"github.com/cmdlit-engine/cmdlit/engine/models"
)

// Build transforms a token sequence into a Command. The first token becomes
// the command name, every following token appends one argument, in order.
// Placeholder tokens resolve against subs: {} binds the next value
// left-to-right, {2} binds by index. Word and string tokens travel as
// strings; the client's command encoder handles typing on the wire.
func Build(raw string, tokens []lexer.Token, subs ...any) (*models.Command, error) {
	var values []any

	nextSub := 0
	indexed := false

	for _, token := range tokens {
		if token.Type == lexer.TOKEN_EOF {
			break
		}

		switch token.Type {
		case lexer.TOKEN_WORD, lexer.TOKEN_STRING:
			values = append(values, token.Value)

		case lexer.TOKEN_PLACEHOLDER:
			value, err := resolvePlaceholder(token, subs, &nextSub, &indexed)
			if err != nil {
				return nil, err
			}
			values = append(values, value)

		default:
			return nil, lexer.NewParseError(token, fmt.Sprintf("unexpected %s token", token.Type))
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("empty command literal")
	}

	// Surplus positional values are always a mistake; with indexed
	// placeholders the caller may intentionally reuse or skip values
	if !indexed && nextSub < len(subs) {
		return nil, fmt.Errorf("command literal %q uses %d substitution value(s), %d given",
			raw, nextSub, len(subs))
	}

	return &models.Command{
		Name: fmt.Sprint(values[0]),
		Args: values[1:],
		Raw:  raw,
	}, nil
}

func resolvePlaceholder(token lexer.Token, subs []any, nextSub *int, indexed *bool) (any, error) {
	if token.Value == "" {
		if *nextSub >= len(subs) {
			return nil, lexer.NewParseError(token, fmt.Sprintf(
				"placeholder {} has no substitution value (%d given)", len(subs)))
		}
		value := subs[*nextSub]
		*nextSub++
		return value, nil
	}

	*indexed = true
	idx, err := strconv.Atoi(token.Value)
	if err != nil {
		// The tokenizer rejects non-digit and overflowing indices, but a
		// caller-built token stream must still get a diagnostic, not a panic
		return nil, lexer.NewParseError(token, fmt.Sprintf(
			"placeholder index {%s} out of range", token.Value))
	}
	if idx >= len(subs) {
		return nil, lexer.NewParseError(token, fmt.Sprintf(
			"placeholder {%d} out of range (%d substitution value(s) given)", idx, len(subs)))
	}
	return subs[idx], nil
}
