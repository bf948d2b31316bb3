package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "Ysolde",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "advancedProfession",
			value:     "   ",
			wantErr:   true,
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
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateRequired_Message(t *testing.T) {
	err := ValidateRequired("advancedProfession", "")
	if err == nil || err.Error() != "advancedProfession: advanced profession is required" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "timestamp id", value: "1700000000000", want: 1700000000000},
		{name: "surrounding space", value: " 42 ", want: 42},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-5", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateIndex(t *testing.T) {
	if err := ValidateIndex("index", 0, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateIndex("index", 1, 1); err == nil {
		t.Error("expected error for index past the end")
	}
	if err := ValidateIndex("index", -1, 3); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestErrorKinds(t *testing.T) {
	if !errors.Is(&NotFoundError{ID: 3}, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	storageErr := &StorageError{Op: "load", Err: errors.New("disk gone")}
	if !errors.Is(storageErr, ErrStorageUnavailable) {
		t.Error("StorageError should match ErrStorageUnavailable")
	}
	if !errors.Is(&ExportError{Reason: "no directory"}, ErrExportUnavailable) {
		t.Error("ExportError should match ErrExportUnavailable")
	}
}
