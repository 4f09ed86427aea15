package tariff_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/one-connexion/backend-pricing/internal/tariff"
)

func TestDefaultGridIntegrity(t *testing.T) {
	src, err := tariff.NewStaticSource(tariff.DefaultGrid())
	require.NoError(t, err, "embedded grid must have no duplicate lookup keys")
	require.Greater(t, src.Len(), 200)

	rows, err := src.All(context.Background())
	require.NoError(t, err)
	for _, row := range rows {
		require.NotEmpty(t, row.PostalCode, "row %q", row.CityName)
		for _, f := range tariff.Formulas() {
			n, err := row.VoucherCount(f)
			require.NoError(t, err, "row %q formula %s", row.CityName, f)
			assert.Positive(t, n, "row %q formula %s", row.CityName, f)
		}
	}
}

func TestDefaultGridLightVehicleRatios(t *testing.T) {
	src, err := tariff.NewStaticSource(tariff.DefaultGrid())
	require.NoError(t, err)

	rows, err := src.All(context.Background())
	require.NoError(t, err)
	for _, row := range rows {
		std := row.Vouchers[tariff.FormulaStandard]
		assert.Equal(t, std*2, row.Vouchers[tariff.FormulaLightVehicleStandard], "row %q", row.CityName)
		assert.Equal(t, std*3, row.Vouchers[tariff.FormulaLightVehicleExpress], "row %q", row.CityName)
	}
}

func TestStaticLookup(t *testing.T) {
	src, err := tariff.NewStaticSource(tariff.DefaultGrid())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		wantCity string
		standard int
	}{
		{name: "exact display name", query: "Melun", wantCity: "Melun", standard: 25},
		{name: "lowercase", query: "melun", wantCity: "Melun", standard: 25},
		{name: "diacritics stripped by caller", query: "velizy villacoublay", wantCity: "Vélizy Villacoublay", standard: 8},
		{name: "diacritics kept by caller", query: "Vélizy Villacoublay", wantCity: "Vélizy Villacoublay", standard: 8},
		{name: "article kept", query: "Le Raincy", wantCity: "Le Raincy", standard: 12},
		{name: "hyphens for spaces", query: "CHOISY-LE-ROI", wantCity: "Choisy le Roi", standard: 8},
		{name: "apostrophe form", query: "L'Haÿ les Roses", wantCity: "L'Haÿ les Roses", standard: 6},
		{name: "capital arrondissement", query: "Paris 15", wantCity: "Paris 15", standard: 2},
		{name: "capital plain", query: "paris", wantCity: "Paris", standard: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, err := src.Lookup(ctx, tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCity, row.CityName)
			assert.Equal(t, tc.standard, row.Vouchers[tariff.FormulaStandard])
		})
	}
}

func TestStaticLookupNotFound(t *testing.T) {
	src, err := tariff.NewStaticSource(tariff.DefaultGrid())
	require.NoError(t, err)

	for _, query := range []string{"Tombouctou", "Lyon", ""} {
		_, err := src.Lookup(context.Background(), query)
		assert.ErrorIs(t, err, tariff.ErrCityNotFound, "query %q", query)
	}
}

func TestStaticLookupDoesNotStripArticles(t *testing.T) {
	// "Le Raincy" and "Raincy" are different lookup keys: the rate table
	// stores the official article-carrying name and price resolution must
	// not guess.
	src, err := tariff.NewStaticSource(tariff.DefaultGrid())
	require.NoError(t, err)

	_, err = src.Lookup(context.Background(), "Raincy")
	assert.ErrorIs(t, err, tariff.ErrCityNotFound)
}

func TestDuplicateCityRejected(t *testing.T) {
	rows := []tariff.CityRate{
		{PostalCode: "93340", CityName: "Le Raincy", Vouchers: map[tariff.Formula]int{tariff.FormulaStandard: 12}},
		{PostalCode: "93340", CityName: "LE  RAINCY", Vouchers: map[tariff.Formula]int{tariff.FormulaStandard: 13}},
	}
	_, err := tariff.NewStaticSource(rows)
	assert.ErrorIs(t, err, tariff.ErrDuplicateCity)
}

func TestParseFormula(t *testing.T) {
	f, err := tariff.ParseFormula(" express ")
	require.NoError(t, err)
	assert.Equal(t, tariff.FormulaExpress, f)

	_, err = tariff.ParseFormula("OVERNIGHT")
	assert.ErrorIs(t, err, tariff.ErrUnknownFormula)
}

func TestStaticSourceAcceptsZeroCounts(t *testing.T) {
	src, err := tariff.NewStaticSource([]tariff.CityRate{
		{PostalCode: "78990", CityName: "Élancourt", Vouchers: map[tariff.Formula]int{
			tariff.FormulaStandard:             0,
			tariff.FormulaExpress:              3,
			tariff.FormulaUrgent:               5,
			tariff.FormulaLightVehicleStandard: 0,
			tariff.FormulaLightVehicleExpress:  0,
		}},
	})
	require.NoError(t, err, "zero voucher counts are valid rows")

	row, err := src.Lookup(context.Background(), "Elancourt")
	require.NoError(t, err)
	n, err := row.VoucherCount(tariff.FormulaStandard)
	require.NoError(t, err)
	assert.Zero(t, n)
}
