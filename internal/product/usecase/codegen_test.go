package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeBase(t *testing.T) {
	tests := []struct {
		name string
		sku  string
		want string
	}{
		{"Mighty Mouse", "MX3", "MMM"},
		{"Mighty Mouse Pro", "MX3", "MMM"},
		{"", "", "XX0"},
		{"", "abc", "XXA"},
		{"Mouse", "MX3", "MOM"},
		{"A", "9K", "AX9"},
		{"  padded   name  ", "s1", "PNS"},
		{"lower case", "k", "LCK"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codeBase(tt.name, tt.sku), "name=%q sku=%q", tt.name, tt.sku)
	}
}

func TestCodeSuffix(t *testing.T) {
	assert.Equal(t, "001", codeSuffix(1))
	assert.Equal(t, "00A", codeSuffix(10))
	assert.Equal(t, "010", codeSuffix(36))
	assert.Equal(t, "ZZZ", codeSuffix(maxCodeSequence))
}
