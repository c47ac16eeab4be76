package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKLineMappers(t *testing.T) {
	k := KLine{
		Open:   decimal.RequireFromString("10"),
		High:   decimal.RequireFromString("13"),
		Low:    decimal.RequireFromString("9"),
		Close:  decimal.RequireFromString("11"),
		Volume: decimal.RequireFromString("2.5"),
	}

	assert.Equal(t, 10.0, KLineOpenPriceMapper(k))
	assert.Equal(t, 13.0, KLineHighPriceMapper(k))
	assert.Equal(t, 9.0, KLineLowPriceMapper(k))
	assert.Equal(t, 11.0, KLineClosePriceMapper(k))
	assert.Equal(t, 11.0, KLineMidPriceMapper(k))
	assert.InDelta(t, 11.0, KLineTypicalPriceMapper(k), 1e-9)
	assert.Equal(t, 2.5, KLineVolumeMapper(k))
	assert.Equal(t, PriceVolume{Price: 11, Volume: 2.5}, KLinePriceVolumeMapper(k))
	assert.Equal(t, 27.5, k.PriceVolume().InQuote())
}

func TestParsePriceField(t *testing.T) {
	f, err := ParsePriceField("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriceFieldHigh, f)
	assert.Equal(t, 5.0, f.Mapper()(KLine{High: decimal.NewFromInt(5)}))

	f, err = ParsePriceField("")
	require.NoError(t, err)
	assert.Equal(t, PriceFieldClose, f)

	_, err = ParsePriceField("bid")
	assert.ErrorIs(t, err, ErrInvalidPriceField)
}
