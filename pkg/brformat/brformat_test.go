package brformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCPF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full number", "52998224725", "529.982.247-25"},
		{"already masked", "529.982.247-25", "529.982.247-25"},
		{"partial before first dot", "529", "529"},
		{"partial after first dot", "5299", "529.9"},
		{"partial after second dot", "5299822", "529.982.2"},
		{"partial after dash", "5299822472", "529.982.247-2"},
		{"overflow is truncated", "529982247259999", "529.982.247-25"},
		{"empty", "", ""},
		{"garbage stripped", "abc529def", "529"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CPF(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mobile 11 digits", "11912345678", "(11) 91234-5678"},
		{"landline 10 digits", "1112345678", "(11) 1234-5678"},
		{"already masked", "(11) 91234-5678", "(11) 91234-5678"},
		{"ddd only", "11", "11"},
		{"ddd plus one digit", "119", "(11) 9"},
		{"too short for hyphen", "11912", "(11) 912"},
		{"hyphen appears at five digits", "1191234", "(11) 9-1234"},
		{"overflow is truncated", "119123456789999", "(11) 91234-5678"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Phone(tt.input))
		})
	}
}

func TestPhone_Idempotent(t *testing.T) {
	once := Phone("11912345678")
	assert.Equal(t, once, Phone(once))
}

func TestCPF_Idempotent(t *testing.T) {
	once := CPF("52998224725")
	assert.Equal(t, once, CPF(once))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "R$ 148,75", Price(148.75))
	assert.Equal(t, "R$ 10,00", Price(10))
	assert.Equal(t, "R$ 0,50", Price(0.5))
	assert.Equal(t, "R$ 23,75", Price(23.75))
	assert.Equal(t, "R$ 1250,00", Price(1250))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "14/09/2026", Date(time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "01/01/2027", Date(time.Date(2027, time.January, 1, 23, 59, 0, 0, time.UTC)))
}
