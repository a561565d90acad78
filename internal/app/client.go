package app

import (
	"fmt"

	"github.com/samvad-hq/upbit-quotation/internal/config"
	"github.com/samvad-hq/upbit-quotation/pkg/httpclient"
	"github.com/samvad-hq/upbit-quotation/pkg/upbit"
)

// NewQuotationClient builds the Upbit client described by the config.
func NewQuotationClient(cfg *config.Config) (*upbit.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	transport := httpclient.NewRestyClient(httpclient.Options{
		Timeout:   cfg.HTTPTimeout,
		UserAgent: cfg.UserAgent,
	})
	return upbit.NewClient(upbit.Config{BaseURL: cfg.UpbitBaseURL}, transport), nil
}
