package csvsource

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/c9s/indicator/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time unix milli format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid decimal format")
)

// CSVKLineDecoder is an extension point for CSVKLineReader to support custom file formats.
type CSVKLineDecoder func(record []string, interval time.Duration) (types.KLine, error)

// NewBinanceCSVKLineReader creates a new CSVKLineReader for Binance CSV files.
func NewBinanceCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	return NewCSVKLineReaderWithDecoder(csv, BinanceCSVKLineDecoder)
}

// BinanceCSVKLineDecoder decodes a `time,open,high,low,close[,volume]` record, the time being
// in unix milliseconds. A missing volume column decodes as zero volume.
func BinanceCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 5 {
		return empty, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	k.StartTime = time.UnixMilli(msec).UTC()
	k.EndTime = k.StartTime.Add(interval)
	if err := decodeOHLCV(&k, record[1:]); err != nil {
		return empty, err
	}

	return k, nil
}

// NewMetaTraderCSVKLineReader creates a new CSVKLineReader for MetaTrader CSV files.
func NewMetaTraderCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	csv.Comma = ';'
	return NewCSVKLineReaderWithDecoder(csv, MetaTraderCSVKLineDecoder)
}

// MetaTraderCSVKLineDecoder decodes a `date;time;open;high;low;close[;volume]` record.
func MetaTraderCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 6 {
		return empty, ErrNotEnoughColumns
	}

	t, err := time.Parse(MetaTraderTimeFormat, fmt.Sprintf("%s %s", record[0], record[1]))
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	k.StartTime = t
	k.EndTime = t.Add(interval)
	if err := decodeOHLCV(&k, record[2:]); err != nil {
		return empty, err
	}

	return k, nil
}

func decodeOHLCV(k *types.KLine, cols []string) error {
	prices := []*decimal.Decimal{&k.Open, &k.High, &k.Low, &k.Close}
	for i, p := range prices {
		v, err := decimal.NewFromString(cols[i])
		if err != nil {
			return ErrInvalidPriceFormat
		}

		*p = v
	}

	if len(cols) < 5 {
		k.Volume = decimal.Zero
		return nil
	}

	v, err := decimal.NewFromString(cols[4])
	if err != nil {
		return ErrInvalidVolumeFormat
	}

	k.Volume = v
	return nil
}
