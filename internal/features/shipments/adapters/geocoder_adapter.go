package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sge-logistics/internal/core/httpclient"
	"sge-logistics/internal/core/logger"
	"sge-logistics/internal/features/shipments/domain"

	"go.uber.org/zap"
)

// NominatimGeocoder implements ports.Geocoder against a nominatim-style
// search endpoint. It is strictly best-effort: every failure mode collapses
// to "no result" so geocoding can never break shipment creation.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewNominatimGeocoder creates a new NominatimGeocoder.
func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  httpclient.NewClient(5 * time.Second),
	}
}

// nominatimResult represents one entry of the search response.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves an address to coordinates. Returns (nil, nil) when the
// address is empty, the lookup fails, or no result comes back.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (*domain.Coordinates, error) {
	if address == "" || g.baseURL == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, nil
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "sge-logistics/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Get().Debug("Geocoding request failed", zap.String("address", address), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Get().Debug("Geocoding returned non-OK status",
			zap.String("address", address),
			zap.Int("status", resp.StatusCode),
		)
		return nil, nil
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		logger.Get().Debug("Geocoding response decode failed", zap.Error(err))
		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return nil, nil
	}

	return &domain.Coordinates{Lat: lat, Lng: lng}, nil
}
