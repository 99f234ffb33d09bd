// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type recommendRequest struct {
	Title string `validate:"required,max=200"`
	K     int    `validate:"min=0,max=100"`
}

type searchRequest struct {
	Keyword string   `validate:"max=20"`
	Genres  []string `validate:"max=3,unique,dive,genre"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantErr   bool
		wantField string
		wantTag   string
	}{
		{name: "valid recommend", input: &recommendRequest{Title: "Hades", K: 10}},
		{name: "missing title", input: &recommendRequest{K: 10}, wantErr: true, wantField: "Title", wantTag: "required"},
		{name: "k too large", input: &recommendRequest{Title: "Hades", K: 101}, wantErr: true, wantField: "K", wantTag: "max"},
		{name: "valid search", input: &searchRequest{Keyword: "mario", Genres: []string{"RPG", "Action"}}},
		{name: "empty search", input: &searchRequest{}},
		{name: "keyword too long", input: &searchRequest{Keyword: strings.Repeat("x", 21)}, wantErr: true, wantField: "Keyword", wantTag: "max"},
		{name: "too many genres", input: &searchRequest{Genres: []string{"A", "B", "C", "D"}}, wantErr: true, wantField: "Genres", wantTag: "max"},
		{name: "duplicate genres", input: &searchRequest{Genres: []string{"A", "A"}}, wantErr: true, wantField: "Genres", wantTag: "unique"},
		{name: "blank genre", input: &searchRequest{Genres: []string{""}}, wantErr: true, wantField: "Genres[0]", wantTag: "genre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

// ===================================================================================================
// Genre Validator Tests
// ===================================================================================================

type genreStruct struct {
	Genre string `validate:"genre"`
}

func TestGenreValidation(t *testing.T) {
	tests := []struct {
		label string
		valid bool
	}{
		{label: "RPG", valid: true},
		{label: "Action Adventure", valid: true},
		{label: "Jeu de rôle", valid: true},
		{label: "", valid: false},
		{label: " RPG", valid: false},
		{label: "RPG\n", valid: false},
		{label: "bad\x00label", valid: false},
		{label: strings.Repeat("g", maxGenreLength+1), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			err := ValidateStruct(&genreStruct{Genre: tt.label})
			if tt.valid && err != nil {
				t.Errorf("label %q rejected: %v", tt.label, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("label %q accepted", tt.label)
			}
		})
	}
}

// ===================================================================================================
// Struct-Level Validation Tests
// ===================================================================================================

type rangeStruct struct {
	Min int
	Max int
}

func TestRegisterStructValidation(t *testing.T) {
	RegisterStructValidation(func(sl validator.StructLevel) {
		r, ok := sl.Current().Interface().(rangeStruct)
		if !ok {
			return
		}
		if r.Min > r.Max {
			sl.ReportError(r.Min, "Min", "Min", "ltefield", "Max")
		}
	}, rangeStruct{})

	if err := ValidateStruct(&rangeStruct{Min: 1, Max: 2}); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}

	err := ValidateStruct(&rangeStruct{Min: 3, Max: 2})
	if err == nil {
		t.Fatal("inverted range accepted")
	}
	if got := err.Error(); got != "Min must be less than or equal to Max" {
		t.Errorf("Error() = %q", got)
	}
}

// ===================================================================================================
// APIError Conversion Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&recommendRequest{K: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "Title is required" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "Title" {
		t.Errorf("Details[field] = %v, want Title", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&recommendRequest{K: 500})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if !strings.Contains(apiErr.Message, "Title: Title is required") {
		t.Errorf("Message missing Title error: %q", apiErr.Message)
	}
	if !strings.Contains(apiErr.Message, "K: K must be at most 100") {
		t.Errorf("Message missing K error: %q", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}

// ===================================================================================================
// Error Message Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{name: "string max", input: &searchRequest{Keyword: strings.Repeat("x", 30)}, want: "Keyword must be at most 20 characters"},
		{name: "slice max", input: &searchRequest{Genres: []string{"A", "B", "C", "D"}}, want: "Genres must contain at most 3 items"},
		{name: "unique", input: &searchRequest{Genres: []string{"A", "A"}}, want: "Genres must not contain duplicates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
