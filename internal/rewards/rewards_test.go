package rewards

import (
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kaepilz/ghar-joy/internal/models"
)

func TestSelectStaysInTable(t *testing.T) {
	s := NewSelector(mathrand.New(mathrand.NewSource(42)))
	for i := 0; i < 100; i++ {
		assert.Contains(t, Wheel, s.Select(Wheel))
	}
}

func TestSelectDeterministicWithSeed(t *testing.T) {
	a := NewSelector(mathrand.New(mathrand.NewSource(7)))
	b := NewSelector(mathrand.New(mathrand.NewSource(7)))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Select(Wheel), b.Select(Wheel))
	}
}

func TestWheelTypesValid(t *testing.T) {
	valid := map[string]bool{
		models.SpinDiscount:  true,
		models.SpinShipping:  true,
		models.SpinToken:     true,
		models.SpinExtraSpin: true,
		models.SpinGift:      true,
	}
	for _, opt := range Wheel {
		assert.True(t, valid[opt.Type], "segment %q", opt.Label)
	}
}

func TestClassifyPrize(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"🪙 50 Tokens", models.SpinToken},
		{"🎉 Double Spin", models.SpinExtraSpin},
		{"🎁 Free Gift!", models.SpinGift},
		{"🎁 Mystery Box", models.SpinGift},
		{"🧦 Free Socks!", models.SpinGift},
		{"🚚 Free Shipping", models.SpinShipping},
		{"💸 99% OFF", models.SpinDiscount},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyPrize(tc.label), "label=%q", tc.label)
	}
}
