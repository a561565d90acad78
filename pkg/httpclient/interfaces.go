package httpclient

import "context"

// Response is the part of an HTTP response callers inspect.
type Response interface {
	Body() []byte
	StatusCode() int
	Status() string
}

// Client abstracts GET calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
