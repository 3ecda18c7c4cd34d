package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"asha@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"a@b.in", true},
		{"a@b", false},
		{"a@b.c", false},
		{"", false},
		{"no-at-sign.com", false},
		{"spaces in@example.com", false},
		{"asha@", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"+91 98765 43210", true},
		{"(040) 2345-6789", true},
		{"987654321", false},
		{"", false},
		{"98765abc43210", false},
		{"+91-98765-43210", true},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhone(tt.phone))
		})
	}
}
