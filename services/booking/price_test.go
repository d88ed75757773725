package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrice_DerivedDiscount(t *testing.T) {
	opt, ok := ResolvePrice(RawPricing{
		FinalCustomerPrice:     150000,
		PriceAfterPriceSetting: 200000,
		HotelDiscountAmount:    50000,
	})

	require.True(t, ok)
	assert.Equal(t, int64(150000), opt.BasePrice)
	require.NotNil(t, opt.BasePriceRaw)
	assert.Equal(t, int64(200000), *opt.BasePriceRaw)
	assert.Equal(t, 25, opt.DiscountPercent)
	require.NotNil(t, opt.Discount)
	assert.Equal(t, DiscountFixed, opt.Discount.Kind)
	assert.Equal(t, float64(50000), opt.Discount.Value)
}

func TestResolvePrice_DerivedDiscountWithoutHotelAmount(t *testing.T) {
	opt, ok := ResolvePrice(RawPricing{
		FinalCustomerPrice:     90000,
		PriceAfterPriceSetting: 100000,
	})

	require.True(t, ok)
	assert.Equal(t, 10, opt.DiscountPercent)
	require.NotNil(t, opt.Discount)
	assert.Equal(t, DiscountFixed, opt.Discount.Kind)
	assert.Equal(t, float64(10000), opt.Discount.Value)
}

func TestResolvePrice_NoPositivePrice(t *testing.T) {
	_, ok := ResolvePrice(RawPricing{FinalCustomerPrice: 0, HalfDayPrice: 60000})
	assert.False(t, ok)

	_, ok = ResolvePrice(RawPricing{FinalCustomerPrice: -10})
	assert.False(t, ok)
}

func TestResolvePrice_PercentSettingOverrides(t *testing.T) {
	opt, ok := ResolvePrice(RawPricing{
		FinalCustomerPrice:     150000,
		PriceAfterPriceSetting: 200000,
		HotelDiscountAmount:    50000,
		PriceSettingType:       "PERCENT",
		PriceSettingValue:      30,
	})

	require.True(t, ok)
	assert.Equal(t, 30, opt.DiscountPercent)
	require.NotNil(t, opt.Discount)
	assert.Equal(t, DiscountPercent, opt.Discount.Kind)
}

func TestResolvePrice_FixedSettingKeepsDerivedPercent(t *testing.T) {
	opt, ok := ResolvePrice(RawPricing{
		FinalCustomerPrice:     150000,
		PriceAfterPriceSetting: 200000,
		HotelDiscountAmount:    50000,
		PriceSettingType:       "FIXED",
		PriceSettingValue:      70000,
	})

	require.True(t, ok)
	assert.Equal(t, 25, opt.DiscountPercent)
	assert.Equal(t, DiscountFixed, opt.Discount.Kind)
}

func TestResolvePrice_PercentSettingWithoutDerivedDiscount(t *testing.T) {
	opt, ok := ResolvePrice(RawPricing{
		FinalCustomerPrice: 100000,
		PriceSettingType:   "PERCENT",
		PriceSettingValue:  10,
	})

	require.True(t, ok)
	assert.Nil(t, opt.BasePriceRaw)
	assert.Nil(t, opt.Discount)
	assert.Equal(t, 0, opt.DiscountPercent)
}

func TestResolvePrice_SmallDiscountClampsToOne(t *testing.T) {
	opt, ok := ResolvePrice(RawPricing{
		FinalCustomerPrice:     999000,
		PriceAfterPriceSetting: 1000000,
	})

	require.True(t, ok)
	assert.Equal(t, 1, opt.DiscountPercent)
	require.NotNil(t, opt.Discount)
	assert.Equal(t, float64(1000), opt.Discount.Value)
}

func TestResolvePrice_RawNotAboveBase(t *testing.T) {
	opt, ok := ResolvePrice(RawPricing{
		FinalCustomerPrice:     200000,
		PriceAfterPriceSetting: 180000,
		HotelDiscountAmount:    20000,
	})

	require.True(t, ok)
	assert.Equal(t, 0, opt.DiscountPercent)
	assert.Nil(t, opt.Discount)
}

func TestResolvePrice_TierOptionality(t *testing.T) {
	opt, ok := ResolvePrice(RawPricing{
		FinalCustomerPrice: 100000,
		HalfDayPrice:       60000,
		SinglePersonPrice:  0,
	})
	require.True(t, ok)

	price, ok := opt.PriceFor(TierHalfDay)
	assert.True(t, ok)
	assert.Equal(t, int64(60000), price)

	_, ok = opt.PriceFor(TierSinglePerson)
	assert.False(t, ok)

	price, ok = opt.PriceFor(TierBase)
	assert.True(t, ok)
	assert.Equal(t, int64(100000), price)
}

func TestDiscountPercentOf(t *testing.T) {
	tests := []struct {
		raw, price int64
		want       int
	}{
		{200000, 150000, 25},
		{300000, 200000, 33},
		{300000, 100000, 67},
		{100000, 100000, 0},
		{0, 100000, 0},
		{100000, 99999, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountPercentOf(tt.raw, tt.price), "raw=%d price=%d", tt.raw, tt.price)
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers {
		got, err := ParseTier(string(tier))
		require.NoError(t, err)
		assert.Equal(t, tier, got)
	}
	_, err := ParseTier("weekly")
	assert.Error(t, err)
}
