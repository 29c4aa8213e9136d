package validator

import (
	"fmt"
	"strings"

	"github.com/cmdlit-engine/cmdlit/engine/lexer"
	"github.com/cmdlit-engine/cmdlit/engine/models"
	"github.com/cmdlit-engine/cmdlit/mapping"
)

// Validate checks an expanded command against the known command table:
// the name must be known and the argument count within the command's arity.
// Expansion itself never requires validation; this is an opt-in guard used
// by the code generator and available to library callers.
func Validate(cmd *models.Command) error {
	def, ok := mapping.Lookup(cmd.Name)
	if !ok {
		suggestion := lexer.SuggestSimilar(cmd.Name)
		if suggestion != "" {
			return fmt.Errorf("unknown command '%s'. Did you mean '%s'?", cmd.Name, suggestion)
		}
		return fmt.Errorf("unknown command '%s'", cmd.Name)
	}

	return validateArity(def, len(cmd.Args))
}

// ValidateName checks a command name alone, for callers that know the name
// at generation time but not the argument values.
func ValidateName(name string) error {
	if mapping.IsKnownCommand(name) {
		return nil
	}
	suggestion := lexer.SuggestSimilar(name)
	if suggestion != "" {
		return fmt.Errorf("unknown command '%s'. Did you mean '%s'?", strings.ToUpper(name), suggestion)
	}
	return fmt.Errorf("unknown command '%s'", strings.ToUpper(name))
}

// ValidateArity checks the argument count for a command name, where each
// substitution placeholder counts as exactly one argument.
func ValidateArity(name string, argc int) error {
	def, ok := mapping.Lookup(name)
	if !ok {
		return ValidateName(name)
	}
	return validateArity(def, argc)
}

func validateArity(def mapping.CommandDefinition, argc int) error {
	if argc < def.MinArgs {
		return fmt.Errorf("%s requires at least %d argument(s), got %d", def.Name, def.MinArgs, argc)
	}
	if def.MaxArgs >= 0 && argc > def.MaxArgs {
		return fmt.Errorf("%s takes at most %d argument(s), got %d", def.Name, def.MaxArgs, argc)
	}
	return nil
}
