package fortnite

import (
	"fmt"

	"golang.org/x/text/language"
)

// normalizeLocale returns the canonical form of a BCP 47 tag.
func normalizeLocale(locale string) (string, error) {
	if locale == "" {
		return DefaultLocale, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: locale %q: %v", ErrInvalidArgument, locale, err)
	}
	return tag.String(), nil
}

// normalizeCountry returns the canonical form of an ISO 3166-1 region code.
func normalizeCountry(code string) (string, error) {
	if code == "" {
		return DefaultCountry, nil
	}

	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return "", fmt.Errorf("%w: country %q", ErrInvalidArgument, code)
	}
	return region.String(), nil
}
