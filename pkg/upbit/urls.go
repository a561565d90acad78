package upbit

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the public quotation API root.
const DefaultBaseURL = "https://api.upbit.com/v1"

// Timescale selects the candle period. The zero value means minute candles.
type Timescale string

const (
	Minutes Timescale = ""
	Days    Timescale = "days"
	Weeks   Timescale = "weeks"
	Months  Timescale = "months"
)

// Minute candle units accepted by the API. Other values are passed through.
const (
	OneMinute      = 1
	ThreeMinutes   = 3
	FiveMinutes    = 5
	TenMinutes     = 10
	FifteenMinutes = 15
	ThirtyMinutes  = 30
	SixtyMinutes   = 60
	FourHours      = 240
)

// TradesOptions holds the optional trade history parameters. Zero values are
// left out of the query.
type TradesOptions struct {
	// To is the end time of the window, "HHmmss" or "HH:mm:ss".
	To    string
	Count int
	// Cursor and DaysAgo are forwarded untouched.
	Cursor  string
	DaysAgo int
}

// CandlesOptions holds the optional candle parameters. Zero values are left
// out of the query; a zero Unit means one-minute candles.
type CandlesOptions struct {
	Timescale Timescale
	To        string
	Count     int
	Unit      int
}

var valueEscaper = strings.NewReplacer("&", "%26", "=", "%3D", "+", "%2B")

// escapeValue keeps ':' and '-' readable so time and market values go out as typed.
func escapeValue(v string) string {
	return valueEscaper.Replace(url.PathEscape(v))
}

// TickerURL joins all markets into one comma separated markets parameter.
func TickerURL(base string, markets ...string) string {
	escaped := make([]string, len(markets))
	for i, m := range markets {
		escaped[i] = escapeValue(m)
	}
	return base + "/ticker?markets=" + strings.Join(escaped, "%2C")
}

// MarketsURL renders the details flag as True/False.
func MarketsURL(base string, isDetails bool) string {
	flag := "False"
	if isDetails {
		flag = "True"
	}
	return base + "/market/all?isDetails=" + flag
}

// OrderbookURL repeats the markets parameter once per market.
func OrderbookURL(base string, markets ...string) string {
	params := make([]string, len(markets))
	for i, m := range markets {
		params[i] = "markets=" + escapeValue(m)
	}
	return base + "/orderbook?" + strings.Join(params, "&")
}

// TradesURL appends to, count, cursor and daysAgo in that order when set.
func TradesURL(base, market string, opts TradesOptions) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("/trades/ticks?market=")
	b.WriteString(escapeValue(market))

	appendParam(&b, "to", opts.To)
	appendIntParam(&b, "count", opts.Count)
	appendParam(&b, "cursor", opts.Cursor)
	appendIntParam(&b, "daysAgo", opts.DaysAgo)

	return b.String()
}

// CandlesURL picks the path from the timescale, then appends to and count when set.
func CandlesURL(base, market string, opts CandlesOptions) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("/candles/")
	b.WriteString(candlePath(opts))
	b.WriteString("?market=")
	b.WriteString(escapeValue(market))

	appendParam(&b, "to", opts.To)
	appendIntParam(&b, "count", opts.Count)

	return b.String()
}

func candlePath(opts CandlesOptions) string {
	if opts.Timescale == Minutes {
		unit := opts.Unit
		if unit == 0 {
			unit = OneMinute
		}
		return "minutes/" + strconv.Itoa(unit)
	}
	return escapeValue(string(opts.Timescale))
}

func appendParam(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteByte('&')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(escapeValue(value))
}

func appendIntParam(b *strings.Builder, key string, value int) {
	if value == 0 {
		return
	}
	appendParam(b, key, strconv.Itoa(value))
}
