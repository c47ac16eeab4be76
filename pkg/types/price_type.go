package types

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PriceField selects which value of a kline feeds a scalar indicator.
type PriceField string

const (
	PriceFieldOpen    PriceField = "open"
	PriceFieldHigh    PriceField = "high"
	PriceFieldLow     PriceField = "low"
	PriceFieldClose   PriceField = "close"
	PriceFieldMid     PriceField = "mid"
	PriceFieldTypical PriceField = "typical"
	PriceFieldVolume  PriceField = "volume"
)

var ErrInvalidPriceField = errors.New("invalid price field")

func ParsePriceField(s string) (PriceField, error) {
	f := PriceField(strings.ToLower(s))
	switch f {
	case PriceFieldOpen, PriceFieldHigh, PriceFieldLow, PriceFieldClose,
		PriceFieldMid, PriceFieldTypical, PriceFieldVolume:
		return f, nil
	case "":
		return PriceFieldClose, nil
	}

	return f, errors.Wrapf(ErrInvalidPriceField, "%q", s)
}

func (f *PriceField) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	p, err := ParsePriceField(s)
	if err != nil {
		return err
	}

	*f = p
	return nil
}

// Mapper returns the function that extracts the field from a kline.
func (f PriceField) Mapper() KLineValueMapper {
	switch f {
	case PriceFieldOpen:
		return KLineOpenPriceMapper
	case PriceFieldHigh:
		return KLineHighPriceMapper
	case PriceFieldLow:
		return KLineLowPriceMapper
	case PriceFieldMid:
		return KLineMidPriceMapper
	case PriceFieldTypical:
		return KLineTypicalPriceMapper
	case PriceFieldVolume:
		return KLineVolumeMapper
	}

	return KLineClosePriceMapper
}
