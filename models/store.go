package models

// Store is the storefront catalog.
type Store struct {
	RefreshIntervalHrs int          `json:"refreshIntervalHrs"`
	DailyPurchaseHrs   int          `json:"dailyPurchaseHrs"`
	Expiration         string       `json:"expiration"`
	Storefronts        []Storefront `json:"storefronts" validate:"dive"`
}

// Storefront is a named section of the catalog (e.g. "BRDailyStorefront").
type Storefront struct {
	Name           string         `json:"name" validate:"required"`
	CatalogEntries []CatalogEntry `json:"catalogEntries" validate:"dive"`
}

// Storefront returns the storefront called name.
func (s *Store) Storefront(name string) (Storefront, bool) {
	for _, front := range s.Storefronts {
		if front.Name == name {
			return front, true
		}
	}
	return Storefront{}, false
}

// CatalogEntry is a single offer.
type CatalogEntry struct {
	OfferID   string  `json:"offerId"`
	DevName   string  `json:"devName"`
	OfferType string  `json:"offerType"`
	Prices    []Price `json:"prices" validate:"dive"`
}

// CurrencyType is the currency an offer is priced in.
type CurrencyType string

const (
	CurrencyTypeGameItem    CurrencyType = "GameItem"
	CurrencyTypeMtxCurrency CurrencyType = "MtxCurrency"
	CurrencyTypeRealMoney   CurrencyType = "RealMoney"
)

// Price is the price of an offer in one currency.
type Price struct {
	CurrencyType    CurrencyType `json:"currencyType" validate:"required"`
	CurrencySubType string       `json:"currencySubType"`
	RegularPrice    int64        `json:"regularPrice"`
	FinalPrice      int64        `json:"finalPrice"`
	SaleExpiration  string       `json:"saleExpiration"`
	BasePrice       int64        `json:"basePrice"`
	SaleType        string       `json:"saleType,omitempty"`
}

// OnSale reports whether the final price is below the regular price.
func (p Price) OnSale() bool {
	return p.FinalPrice < p.RegularPrice
}
