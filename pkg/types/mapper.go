package types

type KLineValueMapper func(k KLine) float64

func KLineOpenPriceMapper(k KLine) float64 {
	return k.Open.InexactFloat64()
}

func KLineHighPriceMapper(k KLine) float64 {
	return k.High.InexactFloat64()
}

func KLineLowPriceMapper(k KLine) float64 {
	return k.Low.InexactFloat64()
}

func KLineClosePriceMapper(k KLine) float64 {
	return k.Close.InexactFloat64()
}

func KLineMidPriceMapper(k KLine) float64 {
	return k.Mid().InexactFloat64()
}

func KLineTypicalPriceMapper(k KLine) float64 {
	return k.Typical().InexactFloat64()
}

func KLineVolumeMapper(k KLine) float64 {
	return k.Volume.InexactFloat64()
}

func KLinePriceVolumeMapper(k KLine) PriceVolume {
	return k.PriceVolume()
}
