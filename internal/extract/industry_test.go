package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wingkam/jobradar/internal/patterns"
)

func TestIndustry_FirstCategoryWins(t *testing.T) {
	reg := patterns.HongKong()

	// Matches both Banking & Finance and Technology vocabulary; the earlier
	// category in the fixed list decides.
	text := "Join a leading fintech startup building SaaS for banks"
	assert.Equal(t, "Banking & Finance", Industry(reg, text))
}

func TestIndustry_Categories(t *testing.T) {
	reg := patterns.HongKong()

	tests := []struct {
		text string
		want string
	}{
		{"A global investment bank in Central", "Banking & Finance"},
		{"Leading insurance group seeks actuary", "Insurance"},
		{"Fast growing SaaS startup", "Technology"},
		{"Major retail and e-commerce platform", "Retail & E-commerce"},
		{"Freight forwarding and supply chain services", "Logistics & Trading"},
		{"Real estate developer", "Property & Construction"},
		{"University research centre", "Education"},
		{"Private hospital group", "Healthcare"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Industry(reg, tt.text), tt.text)
	}
}

func TestIndustry_OtherWhenNoMatch(t *testing.T) {
	reg := patterns.HongKong()

	assert.Equal(t, "Other", Industry(reg, "A company doing interesting things"))
	assert.Equal(t, "Other", Industry(reg, ""))
}

func TestIndustry_GenericRegistryAlwaysOther(t *testing.T) {
	assert.Equal(t, "Other", Industry(patterns.Generic(), "investment bank"))
}
