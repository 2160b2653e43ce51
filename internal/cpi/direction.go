package cpi

// Direction 语义层面的交易方向，与各协议线上编码之间的映射由各协议自行维护
type Direction uint8

const (
	QuoteToBase Direction = iota // 例如 USDC -> SOL（买入 base）
	BaseToQuote                  // 例如 SOL -> USDC（卖出 base）
)

// Valid 只有 QuoteToBase 与 BaseToQuote 两个取值
func (d Direction) Valid() bool {
	return d == QuoteToBase || d == BaseToQuote
}

func (d Direction) String() string {
	if d == BaseToQuote {
		return "base_to_quote"
	}
	return "quote_to_base"
}

func (d Direction) Opposite() Direction {
	if d == BaseToQuote {
		return QuoteToBase
	}
	return BaseToQuote
}

// FromAggregator 聚合器约定：is_base_to_quote=true 表示卖出 base
func FromAggregator(isBaseToQuote bool) Direction {
	if isBaseToQuote {
		return BaseToQuote
	}
	return QuoteToBase
}

// ToAggregator FromAggregator 的逆映射
func (d Direction) ToAggregator() bool {
	return d == BaseToQuote
}
