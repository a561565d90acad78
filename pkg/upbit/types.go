package upbit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Change directions reported by tickers.
const (
	ChangeRise = "RISE"
	ChangeEven = "EVEN"
	ChangeFall = "FALL"
)

// Trade sides.
const (
	Ask = "ASK"
	Bid = "BID"
)

// Ticker is a snapshot of one market.
type Ticker struct {
	Market             string          `json:"market"`
	TradeDate          string          `json:"trade_date"`
	TradeTime          string          `json:"trade_time"`
	TradeDateKST       string          `json:"trade_date_kst"`
	TradeTimeKST       string          `json:"trade_time_kst"`
	TradeTimestamp     int64           `json:"trade_timestamp"`
	OpeningPrice       decimal.Decimal `json:"opening_price"`
	HighPrice          decimal.Decimal `json:"high_price"`
	LowPrice           decimal.Decimal `json:"low_price"`
	TradePrice         decimal.Decimal `json:"trade_price"`
	PrevClosingPrice   decimal.Decimal `json:"prev_closing_price"`
	Change             string          `json:"change"`
	ChangePrice        decimal.Decimal `json:"change_price"`
	ChangeRate         decimal.Decimal `json:"change_rate"`
	SignedChangePrice  decimal.Decimal `json:"signed_change_price"`
	SignedChangeRate   decimal.Decimal `json:"signed_change_rate"`
	TradeVolume        decimal.Decimal `json:"trade_volume"`
	AccTradePrice      decimal.Decimal `json:"acc_trade_price"`
	AccTradePrice24h   decimal.Decimal `json:"acc_trade_price_24h"`
	AccTradeVolume     decimal.Decimal `json:"acc_trade_volume"`
	AccTradeVolume24h  decimal.Decimal `json:"acc_trade_volume_24h"`
	Highest52WeekPrice decimal.Decimal `json:"highest_52_week_price"`
	Highest52WeekDate  string          `json:"highest_52_week_date"`
	Lowest52WeekPrice  decimal.Decimal `json:"lowest_52_week_price"`
	Lowest52WeekDate   string          `json:"lowest_52_week_date"`
	Timestamp          int64           `json:"timestamp"`
}

// LastTradeAt returns the time of the last trade.
func (t Ticker) LastTradeAt() time.Time { return time.UnixMilli(t.TradeTimestamp) }

// Market is one entry of the market list. MarketWarning is only set when the
// list was requested with details.
type Market struct {
	Market        string `json:"market"`
	KoreanName    string `json:"korean_name"`
	EnglishName   string `json:"english_name"`
	MarketWarning string `json:"market_warning,omitempty"`
}

// Orderbook holds the top of book for one market.
type Orderbook struct {
	Market       string          `json:"market"`
	Timestamp    int64           `json:"timestamp"`
	TotalAskSize decimal.Decimal `json:"total_ask_size"`
	TotalBidSize decimal.Decimal `json:"total_bid_size"`
	Units        []OrderbookUnit `json:"orderbook_units"`
}

// OrderbookUnit is one price level on both sides.
type OrderbookUnit struct {
	AskPrice decimal.Decimal `json:"ask_price"`
	BidPrice decimal.Decimal `json:"bid_price"`
	AskSize  decimal.Decimal `json:"ask_size"`
	BidSize  decimal.Decimal `json:"bid_size"`
}

// Trade is one tick of the trade history.
type Trade struct {
	Market           string          `json:"market"`
	TradeDateUTC     string          `json:"trade_date_utc"`
	TradeTimeUTC     string          `json:"trade_time_utc"`
	Timestamp        int64           `json:"timestamp"`
	TradePrice       decimal.Decimal `json:"trade_price"`
	TradeVolume      decimal.Decimal `json:"trade_volume"`
	PrevClosingPrice decimal.Decimal `json:"prev_closing_price"`
	ChangePrice      decimal.Decimal `json:"change_price"`
	AskBid           string          `json:"ask_bid"`
	SequentialID     int64           `json:"sequential_id"`
}

// Candle is one OHLC bar. Unit is set for minute candles, the change fields
// for day candles and FirstDayOfPeriod for week and month candles.
type Candle struct {
	Market               string          `json:"market"`
	CandleDateTimeUTC    string          `json:"candle_date_time_utc"`
	CandleDateTimeKST    string          `json:"candle_date_time_kst"`
	OpeningPrice         decimal.Decimal `json:"opening_price"`
	HighPrice            decimal.Decimal `json:"high_price"`
	LowPrice             decimal.Decimal `json:"low_price"`
	TradePrice           decimal.Decimal `json:"trade_price"`
	Timestamp            int64           `json:"timestamp"`
	CandleAccTradePrice  decimal.Decimal `json:"candle_acc_trade_price"`
	CandleAccTradeVolume decimal.Decimal `json:"candle_acc_trade_volume"`
	Unit                 int             `json:"unit,omitempty"`
	PrevClosingPrice     decimal.Decimal `json:"prev_closing_price"`
	ChangePrice          decimal.Decimal `json:"change_price"`
	ChangeRate           decimal.Decimal `json:"change_rate"`
	FirstDayOfPeriod     string          `json:"first_day_of_period,omitempty"`
}
