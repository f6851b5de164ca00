package engine

import (
	"reflect"
	"testing"
)

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "full url",
			text: "click http://evil.xyz/login now",
			want: []string{"http://evil.xyz/login"},
		},
		{
			name: "www host without scheme",
			text: "visit www.example.com for details",
			want: []string{"www.example.com"},
		},
		{
			name: "bare domain on known tld",
			text: "offer at freegifts.xyz today",
			want: []string{"freegifts.xyz"},
		},
		{
			name: "shortener path",
			text: "see bit.ly/promo2024",
			want: []string{"bit.ly/promo2024"},
		},
		{
			name: "multiple in order",
			text: "http://a.com then http://b.com",
			want: []string{"http://a.com", "http://b.com"},
		},
		{
			name: "plain text",
			text: "see you at the station",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractURLs(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractURLs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPhones(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "formatted with spaces",
			text: "call +91 98765 43210 today",
			want: []string{"+919876543210"},
		},
		{
			name: "hyphenated",
			text: "dial 98765-43210 now",
			want: []string{"9876543210"},
		},
		{
			name: "two numbers",
			text: "9876543210 or 9123456789",
			want: []string{"9876543210", "9123456789"},
		},
		{
			name: "short digit groups ignored",
			text: "room 402, floor 3",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPhones(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractPhones(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
