package hotel

import (
	"strings"
	"time"

	"smartstay-gateway/internal/pkg/errs"
)

type ReferenceKind string

const (
	RefCurrencies ReferenceKind = "currencies"
	RefCountries  ReferenceKind = "countries"
	RefCities     ReferenceKind = "cities"
	RefFacilities ReferenceKind = "facilities"
	RefIATA       ReferenceKind = "iata"
	RefHotelTypes ReferenceKind = "hotelTypes"
	RefChains     ReferenceKind = "chains"
	RefPlaces     ReferenceKind = "places"
)

type referenceSpec struct {
	path     string
	required string
}

var referenceSpecs = map[ReferenceKind]referenceSpec{
	RefCurrencies: {path: "/data/currencies"},
	RefCountries:  {path: "/data/countries"},
	RefCities:     {path: "/data/cities", required: "countryCode"},
	RefFacilities: {path: "/data/facilities"},
	RefIATA:       {path: "/data/iataCodes", required: "iataCode"},
	RefHotelTypes: {path: "/data/hotelTypes"},
	RefChains:     {path: "/data/chains"},
	RefPlaces:     {path: "/data/places", required: "textQuery"},
}

// VendorPath returns the vendor path for kind.
func (k ReferenceKind) VendorPath() (string, error) {
	spec, ok := referenceSpecs[k]
	if !ok {
		return "", errs.Validationf("unknown reference data %q", k)
	}
	return spec.path, nil
}

// RequiredParam names the query parameter kind cannot do without, if any.
func (k ReferenceKind) RequiredParam() string {
	return referenceSpecs[k].required
}

// CheckParams fails when the required parameter for kind is missing.
func (k ReferenceKind) CheckParams(get func(string) string) error {
	if _, err := k.VendorPath(); err != nil {
		return err
	}
	if p := k.RequiredParam(); p != "" && strings.TrimSpace(get(p)) == "" {
		return errs.Validationf("%s is required", p)
	}
	return nil
}

type AnalyticsKind string

const (
	AnalyticsWeekly   AnalyticsKind = "weekly"
	AnalyticsMarket   AnalyticsKind = "market"
	AnalyticsDetailed AnalyticsKind = "detailed"
)

var analyticsPaths = map[AnalyticsKind]string{
	AnalyticsWeekly:   "/analytics/weekly",
	AnalyticsMarket:   "/analytics/markets",
	AnalyticsDetailed: "/analytics/report",
}

func (k AnalyticsKind) VendorPath() (string, error) {
	p, ok := analyticsPaths[k]
	if !ok {
		return "", errs.Validationf("unknown analytics report %q", k)
	}
	return p, nil
}

// AnalyticsRange is an inclusive date window for analytics reports.
type AnalyticsRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r AnalyticsRange) Validate() error {
	from, err := time.Parse(DateLayout, r.From)
	if err != nil {
		return errs.Validationf("from must be YYYY-MM-DD")
	}
	to, err := time.Parse(DateLayout, r.To)
	if err != nil {
		return errs.Validationf("to must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return errs.Validationf("to must not be before from")
	}
	return nil
}
