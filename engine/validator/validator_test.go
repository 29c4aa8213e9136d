package validator

import (
	"strings"
	"testing"

	"github.com/cmdlit-engine/cmdlit/engine/models"
)

func TestValidateKnownCommand(t *testing.T) {
	cmd := &models.Command{Name: "SET", Args: []any{"my_key", "1"}}
	if err := Validate(cmd); err != nil {
		t.Errorf("Validate(SET my_key 1) error = %v", err)
	}

	// Case-insensitive, like the server
	cmd = &models.Command{Name: "get", Args: []any{"my_key"}}
	if err := Validate(cmd); err != nil {
		t.Errorf("Validate(get my_key) error = %v", err)
	}
}

func TestValidateUnknownCommand(t *testing.T) {
	cmd := &models.Command{Name: "GETT", Args: []any{"my_key"}}
	err := Validate(cmd)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "Did you mean 'GET'") {
		t.Errorf("error %q missing suggestion", err)
	}
}

func TestValidateArity(t *testing.T) {
	cases := []struct {
		name    string
		argc    int
		wantErr bool
	}{
		{"GET", 1, false},
		{"GET", 0, true},
		{"GET", 2, true},
		{"SET", 1, true},
		{"SET", 2, false},
		{"SET", 5, false}, // SET takes trailing options (EX, NX, ...)
		{"DEL", 3, false},
		{"PING", 0, false},
		{"DBSIZE", 1, true},
	}
	for _, tc := range cases {
		err := ValidateArity(tc.name, tc.argc)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateArity(%s, %d) error = %v, wantErr %v", tc.name, tc.argc, err, tc.wantErr)
		}
	}
}
