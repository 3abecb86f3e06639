package application

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "nodeName",
			value:     "guide",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "nodeName",
			value:     "",
			wantErr:   true,
			wantMsg:   "nodeName: node name is required",
		},
		{
			name:      "whitespace only",
			fieldName: "filePath",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "filePath: file path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
				}
				if !errors.Is(err, ErrMissingParams) {
					t.Error("expected ValidationError to match ErrMissingParams")
				}
			}
		})
	}
}

func TestValidateSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		wantErr  error
	}{
		{name: "single segment", segments: []string{"guide"}},
		{name: "nested", segments: []string{"guide", "Advanced"}},
		{name: "missing", segments: nil, wantErr: ErrMissingParams},
		{name: "traversal", segments: []string{"guide", ".."}, wantErr: ErrInvalidName},
		{name: "embedded separator", segments: []string{"guide/x"}, wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSegments("paths", tt.segments)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "validation", err: &ValidationError{Field: "x", Message: "bad"}, want: true},
		{name: "wrapped not found", err: fmt.Errorf("failed to save: %w", ErrNotFound), want: true},
		{name: "path traversal", err: ValidateDocumentPath("/docs/../x.md"), want: true},
		{name: "collision", err: fmt.Errorf("add: %w", ErrAlreadyExists), want: true},
		{name: "disk failure", err: errors.New("disk full"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserError(tt.err); got != tt.want {
				t.Errorf("IsUserError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "guide", want: []string{"guide"}},
		{in: "/guide/Advanced/", want: []string{"guide", "Advanced"}},
		{in: "", want: nil},
		{in: "/", want: nil},
	}

	for _, tt := range tests {
		if got := SplitSegments(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitSegments(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
