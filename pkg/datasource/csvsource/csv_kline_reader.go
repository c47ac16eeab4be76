package csvsource

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/c9s/indicator/pkg/indicator"
	"github.com/c9s/indicator/pkg/types"
)

var log = logrus.WithField("component", "csvsource")

var _ KLineReader = (*CSVKLineReader)(nil)
var _ indicator.Source[types.KLine] = (*CSVKLineReader)(nil)
var _ indicator.AsyncSource[types.KLine] = (*CSVKLineReader)(nil)

// KLineReader is an interface for reading candlesticks.
type KLineReader interface {
	Read(interval time.Duration) (types.KLine, error)
	ReadAll(interval time.Duration) ([]types.KLine, error)
}

// CSVKLineReader is a KLineReader that reads from a CSV file.
//
// It is also an indicator source: Next and Recv decode records using the interval set
// with SetInterval (one minute by default).
type CSVKLineReader struct {
	csv     *csv.Reader
	decoder CSVKLineDecoder

	symbol   string
	interval types.Interval
	line     int
	err      error
}

// MakeCSVKLineReader is a factory method type that creates a new CSVKLineReader.
type MakeCSVKLineReader func(csv *csv.Reader) *CSVKLineReader

// NewCSVKLineReader creates a new CSVKLineReader with the default Binance decoder.
func NewCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	return NewCSVKLineReaderWithDecoder(csv, BinanceCSVKLineDecoder)
}

// NewCSVKLineReaderWithDecoder creates a new CSVKLineReader with the given decoder.
func NewCSVKLineReaderWithDecoder(csv *csv.Reader, decoder CSVKLineDecoder) *CSVKLineReader {
	csv.FieldsPerRecord = -1
	csv.TrimLeadingSpace = true
	return &CSVKLineReader{
		csv:      csv,
		decoder:  decoder,
		interval: types.Interval1m,
	}
}

// SetSymbol sets the symbol assigned to every decoded kline.
func (r *CSVKLineReader) SetSymbol(symbol string) *CSVKLineReader {
	r.symbol = symbol
	return r
}

func (r *CSVKLineReader) SetInterval(interval types.Interval) *CSVKLineReader {
	r.interval = interval
	return r
}

// Read reads the next KLine from the underlying CSV data. A header line at the top of the
// file is skipped.
func (r *CSVKLineReader) Read(interval time.Duration) (types.KLine, error) {
	for {
		rec, err := r.csv.Read()
		if err != nil {
			return types.KLine{}, err
		}

		r.line++
		k, err := r.decoder(rec, interval)
		if err != nil {
			if r.line == 1 && isHeader(rec) {
				log.Debugf("skipping csv header %v", rec)
				continue
			}

			return k, errors.Wrapf(err, "line %d", r.line)
		}

		k.Symbol = r.symbol
		k.Interval = r.interval
		return k, nil
	}
}

// ReadAll reads all the KLines from the underlying CSV data.
func (r *CSVKLineReader) ReadAll(interval time.Duration) ([]types.KLine, error) {
	var ks []types.KLine
	for {
		k, err := r.Read(interval)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
	}

	return ks, nil
}

// Next implements indicator.Source. It returns false at the end of the file or on the first
// decoding error, which is then reported by Err.
func (r *CSVKLineReader) Next() (types.KLine, bool) {
	if r.err != nil {
		return types.KLine{}, false
	}

	k, err := r.Read(r.interval.Duration())
	if err != nil {
		if err != io.EOF {
			r.err = err
		}

		return k, false
	}

	return k, true
}

// Err returns the decoding error that stopped Next, if any.
func (r *CSVKLineReader) Err() error {
	return r.err
}

// Recv implements indicator.AsyncSource, returning io.EOF at the end of the file.
func (r *CSVKLineReader) Recv(ctx context.Context) (types.KLine, error) {
	if err := ctx.Err(); err != nil {
		return types.KLine{}, err
	}

	return r.Read(r.interval.Duration())
}

// isHeader reports whether no column of the record holds a number.
func isHeader(rec []string) bool {
	for _, col := range rec {
		if _, err := decimal.NewFromString(col); err == nil {
			return false
		}
	}

	return true
}

// OpenKLineFile opens a single CSV file for streaming. The caller closes the returned file.
func OpenKLineFile(path string, maker MakeCSVKLineReader) (*CSVKLineReader, *os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return maker(csv.NewReader(file)), file, nil
}
