package services

import (
	"testing"

	"github.com/bayoffindiaofficial/bengal-biz-finder/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mirrors the bundled demo directory.
func sampleBusinesses() []entity.Business {
	return []entity.Business{
		{Name: "Kolkata Tech Solutions", Type: "Electronics", Services: "Computer repair, Software installation, Networking", District: "Kolkata", Area: "Park Street"},
		{Name: "Sunshine Restaurant", Type: "Restaurant", Services: "Bengali cuisine, Chinese food, North Indian food", District: "North 24 Parganas", Area: "Salt Lake"},
		{Name: "Siliguri Medical Center", Type: "Hospital", Services: "General medicine, Surgery, Pediatrics, Gynecology", District: "Darjeeling", Area: "Siliguri"},
		{Name: "Durgapur Home Services", Type: "Electrician", Services: "Electrical repairs, Wiring, Installation", District: "Paschim Bardhaman", Area: "City Center"},
		{Name: "Malda Garments", Type: "Clothing Store", Services: "Traditional Bengali wear, Western clothing, Kids wear", District: "Malda", Area: "English Bazar"},
		{Name: "Howrah Legal Services", Type: "Lawyer", Services: "Property law, Family law, Civil cases", District: "Howrah", Area: "Howrah Maidan"},
	}
}

func names(list []entity.Business) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.Name)
	}
	return out
}

func TestFilterNoCriteriaReturnsInputUnchanged(t *testing.T) {
	in := sampleBusinesses()
	out := FilterBusinesses(in, "", FilterOptions{})
	assert.Equal(t, names(in), names(out))
}

func TestFilterQueryMatchesNameCaseInsensitive(t *testing.T) {
	out := FilterBusinesses(sampleBusinesses(), "tech", FilterOptions{})
	require.Len(t, out, 1)
	assert.Equal(t, "Kolkata Tech Solutions", out[0].Name)
}

func TestFilterQueryMatchesTypeCaseInsensitive(t *testing.T) {
	// "rest" must match the type "Restaurant"
	out := FilterBusinesses(sampleBusinesses(), "rest", FilterOptions{})
	require.NotEmpty(t, out)
	assert.Contains(t, names(out), "Sunshine Restaurant")
}

func TestFilterQueryMatchesServicesText(t *testing.T) {
	out := FilterBusinesses(sampleBusinesses(), "wiring", FilterOptions{})
	require.Len(t, out, 1)
	assert.Equal(t, "Durgapur Home Services", out[0].Name)
}

func TestFilterDistrictExactMatch(t *testing.T) {
	out := FilterBusinesses(sampleBusinesses(), "", FilterOptions{District: "Kolkata"})
	require.Len(t, out, 1)
	assert.Equal(t, "Kolkata Tech Solutions", out[0].Name)
}

func TestFilterTypeExactNoPartialLeak(t *testing.T) {
	out := FilterBusinesses(sampleBusinesses(), "", FilterOptions{Type: "Electrician"})
	require.Len(t, out, 1)
	assert.Equal(t, "Durgapur Home Services", out[0].Name)

	for _, b := range out {
		assert.Equal(t, "Electrician", b.Type)
	}

	// a prefix of an enumerated type must not match anything
	assert.Empty(t, FilterBusinesses(sampleBusinesses(), "", FilterOptions{Type: "Electr"}))
}

func TestFilterAreaSubstringCaseInsensitive(t *testing.T) {
	out := FilterBusinesses(sampleBusinesses(), "", FilterOptions{Area: "salt"})
	require.Len(t, out, 1)
	assert.Equal(t, "Sunshine Restaurant", out[0].Name)
}

func TestFilterPredicatesCombineWithAnd(t *testing.T) {
	// query and district both match the same record
	out := FilterBusinesses(sampleBusinesses(), "food", FilterOptions{District: "North 24 Parganas"})
	require.Len(t, out, 1)
	assert.Equal(t, "Sunshine Restaurant", out[0].Name)
}

func TestFilterMutuallyExclusiveFiltersYieldEmpty(t *testing.T) {
	// only Sunshine Restaurant has this type, and it is not in Kolkata
	out := FilterBusinesses(sampleBusinesses(), "", FilterOptions{District: "Kolkata", Type: "Restaurant"})
	assert.Empty(t, out)
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	// "services" appears in two names; they must come back in input order
	out := FilterBusinesses(sampleBusinesses(), "services", FilterOptions{})
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Durgapur Home Services", "Howrah Legal Services"}, names(out))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := sampleBusinesses()
	before := names(in)
	_ = FilterBusinesses(in, "tech", FilterOptions{District: "Malda"})
	assert.Equal(t, before, names(in))
}
