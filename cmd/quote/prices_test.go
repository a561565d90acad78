package main

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type stubPrices struct {
	prices []decimal.Decimal
	err    error
	got    []string
}

func (s *stubPrices) CurrentPrices(_ context.Context, markets ...string) ([]decimal.Decimal, error) {
	s.got = markets
	return s.prices, s.err
}

func TestPricesByMarketPairsInOrder(t *testing.T) {
	src := &stubPrices{prices: []decimal.Decimal{decimal.RequireFromString("50000000"), decimal.RequireFromString("3000000.5")}}

	out, err := pricesByMarket(context.Background(), src, []string{"KRW-BTC", "KRW-ETH"})
	if err != nil {
		t.Fatalf("pricesByMarket: %v", err)
	}
	if len(out) != 2 || out[0].Market != "KRW-BTC" || out[1].Market != "KRW-ETH" {
		t.Fatalf("unexpected pairing %+v", out)
	}
	if !out[1].Price.Equal(decimal.RequireFromString("3000000.5")) {
		t.Fatalf("price = %s", out[1].Price)
	}
	if len(src.got) != 2 {
		t.Fatalf("markets not forwarded: %v", src.got)
	}
}

func TestPricesByMarketPropagatesError(t *testing.T) {
	src := &stubPrices{err: errors.New("upstream")}
	if _, err := pricesByMarket(context.Background(), src, []string{"KRW-BTC"}); err == nil {
		t.Fatalf("expected error")
	}
}
