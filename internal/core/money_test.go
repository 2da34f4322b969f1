package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "whole amount",
			input: "100",
			want:  "100",
		},
		{
			name:  "two decimal places",
			input: "49.99",
			want:  "49.99",
		},
		{
			name:  "sub-cent precision preserved",
			input: "0.125",
			want:  "0.125",
		},
		{
			name:  "negative accepted at parse time",
			input: "-12.50",
			want:  "-12.5",
		},
		{
			name:  "surrounding whitespace",
			input: "  42.00 ",
			want:  "42",
		},
		{
			name:    "not a number",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseMoney(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseMoney(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := MustMoney("0.01").Validate(); err != nil {
		t.Errorf("positive amount should validate, got %v", err)
	}
	if err := MustMoney("0").Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount error = %v, want ErrInvalidAmount", err)
	}
	if err := MustMoney("-5").Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount error = %v, want ErrInvalidAmount", err)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := MustMoney("10.50")
	b := MustMoney("0.25")

	if got := a.Add(b); !got.Equal(MustMoney("10.75")) {
		t.Errorf("Add = %s, want 10.75", got)
	}
	if got := a.Sub(b); !got.Equal(MustMoney("10.25")) {
		t.Errorf("Sub = %s, want 10.25", got)
	}
	if got := b.Neg(); !got.Equal(MustMoney("-0.25")) {
		t.Errorf("Neg = %s, want -0.25", got)
	}
	if !a.GreaterThanOrEqual(b) || b.GreaterThanOrEqual(a) {
		t.Error("comparison is wrong")
	}
}

func TestMoneyDisplay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100", "$100.00"},
		{"49.9", "$49.90"},
		{"0.125", "$0.13"},
		{"-12.5", "-$12.50"},
		{"0", "$0.00"},
	}

	for _, tt := range tests {
		if got := MustMoney(tt.input).Display(); got != tt.want {
			t.Errorf("Display(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(MustMoney("49.99"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "49.99" {
		t.Errorf("marshal = %s, want bare number 49.99", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("120.5"), &m); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if !m.Equal(MustMoney("120.5")) {
		t.Errorf("unmarshal number = %s, want 120.5", m)
	}

	if err := json.Unmarshal([]byte(`"33.10"`), &m); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if !m.Equal(MustMoney("33.10")) {
		t.Errorf("unmarshal string = %s, want 33.10", m)
	}
}
