package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"Valid ID", "abc-123", "abc-123", false},
		{"Trims whitespace", "  abc-123  ", "abc-123", false},
		{"Empty", "", "", true},
		{"Whitespace only", "   ", "", true},
		{"Too long", strings.Repeat("a", 201), "", true},
		{"Exactly max length", strings.Repeat("a", 200), strings.Repeat("a", 200), false},
		{"Space inside passes", "bad id", "bad id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateID(tt.id, "salonId")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateID(%q) = %q, want %q", tt.id, got, tt.want)
			}
			if err != nil {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("error type = %T, want *ValidationError", err)
				} else if validationErr.Param != "salonId" {
					t.Errorf("error param = %q, want salonId", validationErr.Param)
				}
			}
		})
	}
}
