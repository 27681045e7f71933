package fortnite

import (
	"context"

	"github.com/MKhiriev/go-fortnite-client/internal/adapter"
	"github.com/MKhiriev/go-fortnite-client/internal/urls"
	"github.com/MKhiriev/go-fortnite-client/models"
)

// CheckStatus reports the service availability without creating a session.
func CheckStatus(ctx context.Context, opts Options) (*models.Status, error) {
	return publicAPI(opts).Status(ctx)
}

// GetGameNews returns the news for countryCode without creating a session.
func GetGameNews(ctx context.Context, countryCode string, opts Options) (*models.News, error) {
	region, err := normalizeCountry(countryCode)
	if err != nil {
		return nil, err
	}

	return publicAPI(opts).GameNews(ctx, region)
}

func publicAPI(opts Options) adapter.APIAdapter {
	log := opts.logger()
	return adapter.NewHTTPAPIAdapter(
		adapter.NewHTTPClient(opts.adapterConfig(), log),
		urls.NewResolver(opts.Hosts),
		log,
	)
}
