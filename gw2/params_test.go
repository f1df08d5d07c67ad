package gw2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToParam(t *testing.T) {
	assert.Equal(t, "id=42", numberToParam("id", 42))
	assert.Equal(t, "quantity=0", numberToParam("quantity", 0))
	assert.Equal(t, "id=-1", numberToParam("id", -1))
}

func TestNumbersToParam(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected string
	}{
		{
			name:     "several ids",
			values:   []int{1, 2, 42},
			expected: "ids=1,2,42",
		},
		{
			name:     "single id",
			values:   []int{7},
			expected: "ids=7",
		},
		{
			name:     "empty list",
			values:   nil,
			expected: "ids=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numbersToParam("ids", tt.values)
			assert.Equal(t, tt.expected, got)
			// The API rejects trailing separators
			assert.NotRegexp(t, ",$", got)
		})
	}
}

func TestStringToParam(t *testing.T) {
	assert.Equal(t, "id=Thief", stringToParam("id", "Thief"))
	// Reserved characters must not survive into the query string
	assert.Equal(t, "id=a%26b%3Dc", stringToParam("id", "a&b=c"))
}

func TestStringsToParam(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{
			name:     "guids",
			values:   []string{"65B4B678-607E-4D97-B458-076C3E96A810", "1CAFA333-0C2B-4782-BC4C-7DA30E9CE289"},
			expected: "ids=65B4B678-607E-4D97-B458-076C3E96A810,1CAFA333-0C2B-4782-BC4C-7DA30E9CE289",
		},
		{
			name:     "elements are escaped individually",
			values:   []string{"a b", "c&d"},
			expected: "ids=a+b,c%26d",
		},
		{
			name:     "empty list",
			values:   nil,
			expected: "ids=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stringsToParam("ids", tt.values))
		})
	}
}

func TestPathSegment(t *testing.T) {
	assert.Equal(t, "Gorrik", pathSegment("Gorrik"))
	assert.Equal(t, "First%20Last", pathSegment("First Last"))
	assert.Equal(t, "A%2FB", pathSegment("A/B"))
}
