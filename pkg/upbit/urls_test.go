package upbit

import "testing"

func TestEndpointURLs(t *testing.T) {
	const base = DefaultBaseURL

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "ticker joins markets with encoded comma",
			got:  TickerURL(base, "KRW-BTC", "BTC-ETH"),
			want: "https://api.upbit.com/v1/ticker?markets=KRW-BTC%2CBTC-ETH",
		},
		{
			name: "ticker single market",
			got:  TickerURL(base, "KRW-BTC"),
			want: "https://api.upbit.com/v1/ticker?markets=KRW-BTC",
		},
		{
			name: "markets with details",
			got:  MarketsURL(base, true),
			want: "https://api.upbit.com/v1/market/all?isDetails=True",
		},
		{
			name: "markets without details",
			got:  MarketsURL(base, false),
			want: "https://api.upbit.com/v1/market/all?isDetails=False",
		},
		{
			name: "orderbook repeats markets",
			got:  OrderbookURL(base, "KRW-BTC", "BTC-ETH"),
			want: "https://api.upbit.com/v1/orderbook?markets=KRW-BTC&markets=BTC-ETH",
		},
		{
			name: "trades without options",
			got:  TradesURL(base, "BTC-ETC", TradesOptions{}),
			want: "https://api.upbit.com/v1/trades/ticks?market=BTC-ETC",
		},
		{
			name: "trades with count only",
			got:  TradesURL(base, "KRW-ETC", TradesOptions{Count: 5}),
			want: "https://api.upbit.com/v1/trades/ticks?market=KRW-ETC&count=5",
		},
		{
			name: "trades with every option",
			got: TradesURL(base, "KRW-BTC", TradesOptions{
				To:      "12:59:59",
				Count:   5,
				Cursor:  "16870935635490000",
				DaysAgo: 3,
			}),
			want: "https://api.upbit.com/v1/trades/ticks?market=KRW-BTC&to=12:59:59&count=5&cursor=16870935635490000&daysAgo=3",
		},
		{
			name: "trades compact time",
			got:  TradesURL(base, "KRW-BTC", TradesOptions{To: "125959"}),
			want: "https://api.upbit.com/v1/trades/ticks?market=KRW-BTC&to=125959",
		},
		{
			name: "trades cursor cannot inject parameters",
			got:  TradesURL(base, "KRW-BTC", TradesOptions{Cursor: "x&count=9"}),
			want: "https://api.upbit.com/v1/trades/ticks?market=KRW-BTC&cursor=x%26count%3D9",
		},
		{
			name: "candles default to one minute",
			got:  CandlesURL(base, "KRW-BTC", CandlesOptions{}),
			want: "https://api.upbit.com/v1/candles/minutes/1?market=KRW-BTC",
		},
		{
			name: "candles minute unit",
			got:  CandlesURL(base, "KRW-BTC", CandlesOptions{Unit: FiveMinutes}),
			want: "https://api.upbit.com/v1/candles/minutes/5?market=KRW-BTC",
		},
		{
			name: "candles timescale ignores unit",
			got:  CandlesURL(base, "KRW-BTC", CandlesOptions{Timescale: Days, Unit: 5}),
			want: "https://api.upbit.com/v1/candles/days?market=KRW-BTC",
		},
		{
			name: "candles with to and count",
			got: CandlesURL(base, "KRW-BTC", CandlesOptions{
				Timescale: Months,
				To:        "2023-06-18T18:26:00Z",
				Count:     200,
			}),
			want: "https://api.upbit.com/v1/candles/months?market=KRW-BTC&to=2023-06-18T18:26:00Z&count=200",
		},
		{
			name: "candles spaced time is percent encoded",
			got:  CandlesURL(base, "KRW-BTC", CandlesOptions{To: "2023-06-18 18:26:00"}),
			want: "https://api.upbit.com/v1/candles/minutes/1?market=KRW-BTC&to=2023-06-18%2018:26:00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("url mismatch\n got: %s\nwant: %s", tc.got, tc.want)
			}
		})
	}
}

func TestNegativeValuesPassThrough(t *testing.T) {
	got := TradesURL("http://x", "KRW-BTC", TradesOptions{Count: -1, DaysAgo: 30})
	want := "http://x/trades/ticks?market=KRW-BTC&count=-1&daysAgo=30"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
