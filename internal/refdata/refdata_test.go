package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIntegrity(t *testing.T) {
	countries := map[string]bool{}
	for _, c := range Countries {
		assert.False(t, countries[c.Code], "duplicate country %s", c.Code)
		countries[c.Code] = true
	}

	t.Run("ports reference known countries", func(t *testing.T) {
		seen := map[string]bool{}
		for _, p := range Ports {
			assert.True(t, countries[p.Country], "port %s references country %s", p.UNLocode, p.Country)
			assert.False(t, seen[p.UNLocode], "duplicate port %s", p.UNLocode)
			seen[p.UNLocode] = true
			assert.NotEmpty(t, p.Modes, "port %s declares modes", p.UNLocode)
		}
	})

	t.Run("carriers reference known countries", func(t *testing.T) {
		for _, c := range Carriers {
			assert.True(t, countries[c.Country], "carrier %s references country %s", c.Code, c.Country)
			assert.True(t, c.Active, "seed carriers start active")
			assert.False(t, c.Sanctioned, "seed carriers start unsanctioned")
		}
	})

	t.Run("routes reference known ports and carriers", func(t *testing.T) {
		for _, leg := range Routes {
			_, ok := PortByLocode(leg.From)
			assert.True(t, ok, "leg origin %s", leg.From)
			_, ok = PortByLocode(leg.To)
			assert.True(t, ok, "leg destination %s", leg.To)
			require.NotEmpty(t, leg.Carriers, "leg %s-%s has eligible carriers", leg.From, leg.To)
			for _, code := range leg.Carriers {
				_, ok := CarrierByCode(code)
				assert.True(t, ok, "leg %s-%s carrier %s", leg.From, leg.To, code)
			}
			_, ok = CarbonFactors[leg.Mode]
			assert.True(t, ok, "leg %s-%s mode %s has a carbon factor", leg.From, leg.To, leg.Mode)
		}
	})
}

func TestMinWageByCountry(t *testing.T) {
	wages := MinWageByCountry()
	assert.Len(t, wages, len(Countries), "one entry per country")
	assert.Equal(t, 1395, wages["NL"])
	assert.Equal(t, 0, wages["SG"], "Singapore has no statutory minimum")
}

func TestMinMaxHoursByRegion(t *testing.T) {
	hours := MinMaxHoursByRegion()

	// EU max_hours are {40,48,38,35,48,48}; the region floor is France's 35.
	assert.Equal(t, 35, hours["EU"])
	assert.Equal(t, 44, hours["APAC"])
	assert.Equal(t, 48, hours["MENA"])
	assert.Len(t, hours, 3, "one entry per distinct region")
}

func TestLookups(t *testing.T) {
	c, ok := CarrierByCode("MAEU")
	require.True(t, ok)
	assert.Equal(t, "Maersk", c.Name)

	_, ok = CarrierByCode("XXXX")
	assert.False(t, ok)

	p, ok := PortByLocode("NLRTM")
	require.True(t, ok)
	assert.Equal(t, "Rotterdam", p.Name)

	_, ok = PortByLocode("ZZZZZ")
	assert.False(t, ok)
}
