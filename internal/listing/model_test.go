package listing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRental(t *testing.T) {
	assert.True(t, PropertyData{Operation: OperationRental}.IsRental())
	assert.True(t, PropertyData{Operation: "ALQUILER"}.IsRental())
	assert.False(t, PropertyData{Operation: OperationSale}.IsRental())
	assert.False(t, PropertyData{}.IsRental())
}

func TestContactLink(t *testing.T) {
	tests := []struct {
		name  string
		brand BrandConfig
		want  string
	}{
		{"website wins", BrandConfig{Website: "https://sur.com.ar", WhatsApp: "+54 9 11 5555-4444"}, "https://sur.com.ar"},
		{"whatsapp digits", BrandConfig{WhatsApp: "+54 9 11 5555-4444", InstagramHandle: "@sur"}, "https://wa.me/5491155554444"},
		{"instagram", BrandConfig{InstagramHandle: "@sur.props"}, "https://instagram.com/sur.props"},
		{"whatsapp without digits", BrandConfig{WhatsApp: "n/a", InstagramHandle: "sur"}, "https://instagram.com/sur"},
		{"nothing", BrandConfig{AgencyName: "Sur"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.brand.ContactLink())
		})
	}
}

func TestPropertyDataNullableNumbers(t *testing.T) {
	var p PropertyData
	require.NoError(t, json.Unmarshal([]byte(`{"operation":"venta","price":null,"bedrooms":3}`), &p))
	assert.Nil(t, p.Price)
	require.NotNil(t, p.Bedrooms)
	assert.Equal(t, 3, *p.Bedrooms)
}
