package ors

import (
	"errors"
	"strings"

	"pouch-tracking-service/internal/platform/httpx"
)

// Client talks to OpenRouteService. It implements ports.Geocoder and
// ports.DirectionsProvider and is safe for concurrent use.
type Client struct {
	http    *httpx.Client
	baseURL string
	country string
}

// New returns an ORS client. The API key is sent as the Authorization
// header on every request.
func New(apiKey, baseURL string, opts ...httpx.Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.openrouteservice.org"
	}

	opts = append([]httpx.Option{httpx.WithHeader("Authorization", apiKey)}, opts...)

	return &Client{
		http:    httpx.New(opts...),
		baseURL: strings.TrimRight(baseURL, "/"),
		country: "BR",
	}, nil
}
