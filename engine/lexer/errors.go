package lexer

import (
	"fmt"
	"strings"

	"github.com/cmdlit-engine/cmdlit/mapping"
)

// ParseError represents an error with position info
type ParseError struct {
	Message  string
	Position int
	Line     int
	Column   int
	Token    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// NewParseError creates a new parse error
func NewParseError(token Token, message string) *ParseError {
	return &ParseError{
		Message:  message,
		Position: token.Position,
		Line:     token.Line,
		Column:   token.Column,
		Token:    token.Value,
	}
}

// NewUnknownCommandError creates error with suggestion
func NewUnknownCommandError(token Token) *ParseError {
	suggestion := SuggestSimilar(token.Value)
	msg := fmt.Sprintf("unknown command '%s'", token.Value)
	if suggestion != "" {
		msg += fmt.Sprintf(". Did you mean '%s'?", suggestion)
	}
	return NewParseError(token, msg)
}

// SuggestSimilar finds the closest known command name
func SuggestSimilar(unknown string) string {
	unknown = strings.ToUpper(unknown)

	var bestMatch string
	bestDistance := 999
	maxDistance := 2 // Only suggest if within 2 edits

	// Common commands get priority with a -1 bonus so that short names
	// like GET and SET win over obscure commands at the same distance
	commonCommands := []string{"GET", "SET", "DEL", "EXISTS", "INCR", "HGET", "HSET", "LPUSH", "SADD"}
	commonSet := make(map[string]bool)
	for _, cmd := range commonCommands {
		commonSet[cmd] = true
		dist := levenshtein(unknown, cmd)
		if dist <= maxDistance && dist-1 < bestDistance {
			bestDistance = dist - 1
			bestMatch = cmd
		}
	}

	// Check remaining commands (no bonus)
	for _, cmd := range mapping.CommandNames {
		if commonSet[cmd] {
			continue // Already checked with bonus
		}
		dist := levenshtein(unknown, cmd)
		if dist < bestDistance && dist <= maxDistance {
			bestDistance = dist
			bestMatch = cmd
		}
	}

	return bestMatch
}

// levenshtein calculates edit distance between two strings
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	// Fill matrix
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
