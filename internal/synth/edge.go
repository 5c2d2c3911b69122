// Package synth turns static route legs into carrier-specific transport
// edges with synthesized cost, transit time and carbon attributes.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vedslabs/seedctl/internal/refdata"
)

// TransportEdge is a directed, carrier-specific link between two transport
// nodes. One edge is synthesized per (route leg x eligible carrier) pair.
type TransportEdge struct {
	Code            string
	FromNode        string // transport node code (UN/LOCODE)
	ToNode          string
	Carrier         string // carrier code
	Mode            refdata.Mode
	DistanceKM      float64
	BaseCostUSD     float64
	CostPerKgUSD    float64
	TransitHours    float64
	CarbonKgTonneKM float64
	Frequency       string // DAILY or WEEKLY
	Active          bool
}

// costProfile holds the per-km rate and the bounds of the uniform additive
// term for one mode.
type costProfile struct {
	perKM  float64
	addMin float64
	addMax float64
}

var costProfiles = map[refdata.Mode]costProfile{
	refdata.ModeMaritime: {perKM: 0.5, addMin: 1000, addMax: 3000},
	refdata.ModeRail:     {perKM: 0.8, addMin: 500, addMax: 1500},
	refdata.ModeRoad:     {perKM: 1.2, addMin: 200, addMax: 500},
	refdata.ModeAir:      {perKM: 3.0, addMin: 2000, addMax: 5000},
}

// Edge synthesizes one transport edge for a leg served by a carrier. The rng
// drives the cost additive term and the transit jitter; callers seed it once
// per run and tests inject a fixed seed.
func Edge(leg refdata.RouteLeg, carrier refdata.Carrier, rng *rand.Rand) TransportEdge {
	prof := costProfiles[leg.Mode]
	baseCost := round(leg.DistanceKM*prof.perKM+uniform(rng, prof.addMin, prof.addMax), 2)
	jitter := uniform(rng, -leg.Hours*0.1, leg.Hours*0.1)

	return TransportEdge{
		Code:            fmt.Sprintf("%s-%s-%s-%s", leg.From, leg.To, string(leg.Mode)[:1], carrier.Code),
		FromNode:        leg.From,
		ToNode:          leg.To,
		Carrier:         carrier.Code,
		Mode:            leg.Mode,
		DistanceKM:      leg.DistanceKM,
		BaseCostUSD:     baseCost,
		CostPerKgUSD:    round(baseCost/10000*0.01, 4),
		TransitHours:    leg.Hours + jitter,
		CarbonKgTonneKM: refdata.CarbonFactors[leg.Mode],
		Frequency:       frequency(leg.Mode),
		Active:          true,
	}
}

// Edges expands every leg into one edge per eligible carrier, in table order.
// A carrier code missing from the reference table is an error: silently
// skipping one would break the one-edge-per-(leg x carrier) cardinality.
func Edges(legs []refdata.RouteLeg, rng *rand.Rand) ([]TransportEdge, error) {
	var edges []TransportEdge
	for _, leg := range legs {
		for _, code := range leg.Carriers {
			carrier, ok := refdata.CarrierByCode(code)
			if !ok {
				return nil, fmt.Errorf("leg %s-%s references unknown carrier %q", leg.From, leg.To, code)
			}
			edges = append(edges, Edge(leg, carrier, rng))
		}
	}
	return edges, nil
}

// frequency is DAILY for road and air services, WEEKLY otherwise.
func frequency(mode refdata.Mode) string {
	if mode == refdata.ModeRoad || mode == refdata.ModeAir {
		return "DAILY"
	}
	return "WEEKLY"
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
