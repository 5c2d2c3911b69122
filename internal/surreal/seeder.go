package surreal

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vedslabs/seedctl/internal/refdata"
	"github.com/vedslabs/seedctl/internal/synth"
)

// Querier abstracts the SurrealDB client so the seeder can be tested against
// a stub without a live endpoint.
type Querier interface {
	Query(ctx context.Context, sql string) ([]QueryResult, error)
}

// Seeder issues one CREATE per reference record and per synthesized edge.
// Writes are unconditional: on a re-run, reference records that already
// exist come back as ERR statements and are left untouched, while edges
// (which carry no record id) are appended again. Clearing the store before
// a re-seed is the operator's job.
type Seeder struct {
	db  Querier
	rng *rand.Rand
	log *zap.Logger
}

// NewSeeder wraps a querier. A nil rng gets a time-seeded one; tests pass a
// fixed seed for reproducible edge costs.
func NewSeeder(db Querier, rng *rand.Rand, logger *zap.Logger) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Seeder{db: db, rng: rng, log: logger.Named("seeder")}
}

// SeedAll seeds every table in referential-integrity order: countries before
// ports and carriers, ports before nodes, nodes before edges. The first
// failed statement aborts the rest and the error propagates to the driver.
// Returns the number of records created.
func (s *Seeder) SeedAll(ctx context.Context) (int, error) {
	total := 0
	steps := []func(context.Context) (int, error){
		s.SeedCountries,
		s.SeedPorts,
		s.SeedCarriers,
		s.SeedCargoTypes,
		s.SeedNodes,
		s.SeedEdges,
	}
	for _, step := range steps {
		n, err := step(ctx)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// SeedCountries creates one country record per reference entry.
func (s *Seeder) SeedCountries(ctx context.Context) (int, error) {
	count := 0
	for _, c := range refdata.Countries {
		sql := fmt.Sprintf(`CREATE country:%s SET
    code = '%s',
    name = '%s',
    min_wage_cents_hourly = %d,
    max_weekly_hours = %d,
    region = '%s',
    currency = '%s';`,
			c.Code, c.Code, c.Name, c.MinWageCents, c.MaxHours, c.Region, c.Currency)
		if _, err := s.db.Query(ctx, sql); err != nil {
			return count, fmt.Errorf("create country %s: %w", c.Code, err)
		}
		count++
	}
	s.log.Info("Seeded countries", zap.Int("count", count))
	return count, nil
}

// SeedPorts creates port records. Each references its owning country record.
func (s *Seeder) SeedPorts(ctx context.Context) (int, error) {
	count := 0
	for _, p := range refdata.Ports {
		sql := fmt.Sprintf(`CREATE port:%s SET
    unlocode = '%s',
    name = '%s',
    country = country:%s,
    location = { type: 'Point', coordinates: [%s, %s] },
    timezone = 'UTC',
    port_type = '%s',
    modes = %s,
    avg_dwell_hours = %d;`,
			p.UNLocode, p.UNLocode, p.Name, p.Country,
			num(p.Lon), num(p.Lat), p.Type, modesJSON(p.Modes), p.DwellHours)
		if _, err := s.db.Query(ctx, sql); err != nil {
			return count, fmt.Errorf("create port %s: %w", p.UNLocode, err)
		}
		count++
	}
	s.log.Info("Seeded ports", zap.Int("count", count))
	return count, nil
}

// SeedCarriers creates carrier records.
func (s *Seeder) SeedCarriers(ctx context.Context) (int, error) {
	count := 0
	for _, c := range refdata.Carriers {
		sql := fmt.Sprintf(`CREATE carrier:%s SET
    code = '%s',
    name = '%s',
    carrier_type = '%s',
    country = country:%s,
    safety_rating = %d,
    unionized = %t,
    avg_wage_cents_hourly = %d,
    avg_weekly_hours = %d,
    sanctioned = %t,
    active = %t;`,
			c.Code, c.Code, c.Name, c.Type, c.Country,
			c.SafetyRating, c.Unionized, c.WageCents, c.WeeklyHours, c.Sanctioned, c.Active)
		if _, err := s.db.Query(ctx, sql); err != nil {
			return count, fmt.Errorf("create carrier %s: %w", c.Code, err)
		}
		count++
	}
	s.log.Info("Seeded carriers", zap.Int("count", count))
	return count, nil
}

// SeedCargoTypes creates cargo type records. Temperature bounds are only
// written for temperature-controlled cargo; hazmat_class is NONE when the
// cargo is not hazardous.
func (s *Seeder) SeedCargoTypes(ctx context.Context) (int, error) {
	count := 0
	for _, ct := range refdata.CargoTypes {
		hazmat := "NONE"
		if ct.HazmatClass != "" {
			hazmat = "'" + ct.HazmatClass + "'"
		}
		tempFields := ""
		if ct.TempControlled {
			tempFields = fmt.Sprintf(",\n    temp_min_c = %d,\n    temp_max_c = %d", ct.TempMinC, ct.TempMaxC)
		}
		sql := fmt.Sprintf(`CREATE cargo_type:%s SET
    code = '%s',
    name = '%s',
    hazmat_class = %s,
    temp_controlled = %t%s;`,
			ct.Code, ct.Code, ct.Name, hazmat, ct.TempControlled, tempFields)
		if _, err := s.db.Query(ctx, sql); err != nil {
			return count, fmt.Errorf("create cargo type %s: %w", ct.Code, err)
		}
		count++
	}
	s.log.Info("Seeded cargo types", zap.Int("count", count))
	return count, nil
}

// SeedNodes creates one transport node per port.
func (s *Seeder) SeedNodes(ctx context.Context) (int, error) {
	count := 0
	for _, p := range refdata.Ports {
		sql := fmt.Sprintf(`CREATE transport_node:%s SET
    code = '%s',
    port = port:%s,
    node_type = 'HUB',
    modes = %s,
    active = true;`,
			p.UNLocode, p.UNLocode, p.UNLocode, modesJSON(p.Modes))
		if _, err := s.db.Query(ctx, sql); err != nil {
			return count, fmt.Errorf("create transport node %s: %w", p.UNLocode, err)
		}
		count++
	}
	s.log.Info("Seeded transport nodes", zap.Int("count", count))
	return count, nil
}

// SeedEdges synthesizes one transport edge per (route leg x eligible
// carrier) pair and creates them. Edges carry no explicit record id, so
// re-seeding appends duplicates.
func (s *Seeder) SeedEdges(ctx context.Context) (int, error) {
	edges, err := synth.Edges(refdata.Routes, s.rng)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range edges {
		sql := fmt.Sprintf(`CREATE transport_edge SET
    code = '%s',
    from_node = transport_node:%s,
    to_node = transport_node:%s,
    carrier = carrier:%s,
    mode = '%s',
    distance_km = %s,
    base_cost_usd = %s,
    cost_per_kg_usd = %s,
    transit_hours = %.1f,
    carbon_kg_per_tonne_km = %s,
    frequency = '%s',
    active = true;`,
			e.Code, e.FromNode, e.ToNode, e.Carrier, e.Mode,
			num(e.DistanceKM), num(e.BaseCostUSD), strconv.FormatFloat(e.CostPerKgUSD, 'f', 4, 64),
			e.TransitHours, num(e.CarbonKgTonneKM), e.Frequency)
		if _, err := s.db.Query(ctx, sql); err != nil {
			return count, fmt.Errorf("create transport edge %s: %w", e.Code, err)
		}
		count++
	}
	s.log.Info("Seeded transport edges", zap.Int("count", count))
	return count, nil
}

// num renders a float without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// modesJSON renders a mode list as a JSON array literal for SurrealQL.
func modesJSON(modes []refdata.Mode) string {
	b, _ := json.Marshal(modes)
	return string(b)
}
