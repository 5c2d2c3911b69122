package surreal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vedslabs/seedctl/internal/refdata"
)

// stubQuerier records every statement and optionally fails on a matching one.
type stubQuerier struct {
	statements []string
	failOn     string
}

func (s *stubQuerier) Query(_ context.Context, sql string) ([]QueryResult, error) {
	if s.failOn != "" && strings.Contains(sql, s.failOn) {
		return nil, errors.New("boom")
	}
	s.statements = append(s.statements, sql)
	return []QueryResult{{Status: "OK"}}, nil
}

func (s *stubQuerier) count(table string) int {
	n := 0
	for _, sql := range s.statements {
		if strings.Contains(sql, "CREATE "+table) {
			n++
		}
	}
	return n
}

func newTestSeeder(db Querier) *Seeder {
	return NewSeeder(db, rand.New(rand.NewSource(1)), zap.NewNop())
}

func TestSeedAllCountsAndOrder(t *testing.T) {
	db := &stubQuerier{}
	n, err := newTestSeeder(db).SeedAll(context.Background())
	require.NoError(t, err)

	wantEdges := 0
	for _, leg := range refdata.Routes {
		wantEdges += len(leg.Carriers)
	}
	want := len(refdata.Countries) + len(refdata.Ports) + len(refdata.Carriers) +
		len(refdata.CargoTypes) + len(refdata.Ports) + wantEdges
	assert.Equal(t, want, n)

	assert.Equal(t, len(refdata.Countries), db.count("country:"))
	assert.Equal(t, len(refdata.Ports), db.count("port:"))
	assert.Equal(t, len(refdata.Carriers), db.count("carrier:"))
	assert.Equal(t, len(refdata.CargoTypes), db.count("cargo_type:"))
	assert.Equal(t, len(refdata.Ports), db.count("transport_node:"))
	assert.Equal(t, wantEdges, db.count("transport_edge"))

	// Referential-integrity order: countries before ports, ports before
	// nodes, nodes before edges.
	firstPort, firstNode, firstEdge := -1, -1, -1
	lastCountry := -1
	for i, sql := range db.statements {
		switch {
		case strings.Contains(sql, "CREATE country:"):
			lastCountry = i
		case strings.Contains(sql, "CREATE port:") && firstPort < 0:
			firstPort = i
		case strings.Contains(sql, "CREATE transport_node:") && firstNode < 0:
			firstNode = i
		case strings.Contains(sql, "CREATE transport_edge") && firstEdge < 0:
			firstEdge = i
		}
	}
	assert.Less(t, lastCountry, firstPort)
	assert.Less(t, firstPort, firstNode)
	assert.Less(t, firstNode, firstEdge)
}

// TestSeedAllRerunDuplicatesEdgesOnly drives two full SeedAll passes through
// the real HTTP client against a server that, like SurrealDB, answers 200
// with an ERR statement once a record id has already been created. The
// second pass must succeed: existing reference records no-op while the
// id-less edge CREATEs are accepted again.
func TestSeedAllRerunDuplicatesEdgesOnly(t *testing.T) {
	seen := map[string]bool{}
	edgeCreates := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		sql := string(b)
		if strings.HasPrefix(sql, "CREATE transport_edge SET") {
			edgeCreates++
			w.Write([]byte(`[{"time":"1ms","status":"OK","result":[{}]}]`))
			return
		}
		id := strings.TrimPrefix(strings.SplitN(sql, " SET", 2)[0], "CREATE ")
		if seen[id] {
			w.Write([]byte(fmt.Sprintf(`[{"time":"1ms","status":"ERR","result":"Database record %s already exists"}]`, id)))
			return
		}
		seen[id] = true
		w.Write([]byte(`[{"time":"1ms","status":"OK","result":[{}]}]`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), zap.NewNop())
	wantEdges := 0
	for _, leg := range refdata.Routes {
		wantEdges += len(leg.Carriers)
	}

	n1, err := NewSeeder(client, rand.New(rand.NewSource(1)), zap.NewNop()).SeedAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, wantEdges, edgeCreates)

	n2, err := NewSeeder(client, rand.New(rand.NewSource(2)), zap.NewNop()).SeedAll(context.Background())
	require.NoError(t, err, "re-seeding a populated store is not an error")
	assert.Equal(t, n1, n2)
	assert.Equal(t, 2*wantEdges, edgeCreates, "edges duplicate on re-run")
}

func TestSeedAllStopsOnFirstFailure(t *testing.T) {
	db := &stubQuerier{failOn: "CREATE carrier:"}
	_, err := newTestSeeder(db).SeedAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create carrier")

	// Nothing after the failing step ran.
	assert.Zero(t, db.count("transport_node:"))
	assert.Zero(t, db.count("transport_edge"))
}

func TestSeedCountriesPartialCountOnFailure(t *testing.T) {
	// A mid-table failure still reports how many records went in, so the
	// run summary reflects the real store contents.
	db := &stubQuerier{failOn: "country:" + refdata.Countries[2].Code}
	n, err := newTestSeeder(db).SeedCountries(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, n)
}

func TestSeedCountriesStatementShape(t *testing.T) {
	db := &stubQuerier{}
	_, err := newTestSeeder(db).SeedCountries(context.Background())
	require.NoError(t, err)

	first := db.statements[0]
	assert.Contains(t, first, "CREATE country:CN")
	assert.Contains(t, first, "name = 'China'")
	assert.Contains(t, first, "min_wage_cents_hourly = 350")
	assert.Contains(t, first, "max_weekly_hours = 44")
	assert.Contains(t, first, "region = 'APAC'")
	assert.Contains(t, first, "currency = 'USD'")
}

func TestSeedPortsStatementShape(t *testing.T) {
	db := &stubQuerier{}
	_, err := newTestSeeder(db).SeedPorts(context.Background())
	require.NoError(t, err)

	first := db.statements[0]
	assert.Contains(t, first, "CREATE port:CNSHA")
	assert.Contains(t, first, "country = country:CN")
	assert.Contains(t, first, "coordinates: [121.4737, 31.2304]", "GeoJSON order is lon, lat")
	assert.Contains(t, first, `modes = ["MARITIME","RAIL","ROAD"]`)
	assert.Contains(t, first, "avg_dwell_hours = 24")
}

func TestSeedCargoTypesStatementShape(t *testing.T) {
	db := &stubQuerier{}
	_, err := newTestSeeder(db).SeedCargoTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, db.statements, len(refdata.CargoTypes))

	var gen, ref, haz string
	for _, sql := range db.statements {
		switch {
		case strings.Contains(sql, "cargo_type:GEN"):
			gen = sql
		case strings.Contains(sql, "cargo_type:REF"):
			ref = sql
		case strings.Contains(sql, "cargo_type:HAZ1"):
			haz = sql
		}
	}

	assert.Contains(t, gen, "hazmat_class = NONE")
	assert.Contains(t, gen, "temp_controlled = false")
	assert.NotContains(t, gen, "temp_min_c")

	assert.Contains(t, ref, "temp_controlled = true")
	assert.Contains(t, ref, "temp_min_c = -25")
	assert.Contains(t, ref, "temp_max_c = 5")

	assert.Contains(t, haz, "hazmat_class = 'Class 1'")
}

func TestSeedEdgesStatementShape(t *testing.T) {
	db := &stubQuerier{}
	n, err := newTestSeeder(db).SeedEdges(context.Background())
	require.NoError(t, err)
	require.NotZero(t, n)

	first := db.statements[0]
	assert.Contains(t, first, "CREATE transport_edge")
	assert.Contains(t, first, "code = 'CNSHA-SGSIN-M-MAEU'")
	assert.Contains(t, first, "from_node = transport_node:CNSHA")
	assert.Contains(t, first, "to_node = transport_node:SGSIN")
	assert.Contains(t, first, "carrier = carrier:MAEU")
	assert.Contains(t, first, "mode = 'MARITIME'")
	assert.Contains(t, first, "distance_km = 3800")
	assert.Contains(t, first, "frequency = 'WEEKLY'")
	assert.Contains(t, first, "active = true")
}

func TestSeedEdgesNoRecordIDDuplicatesByDesign(t *testing.T) {
	// Edges carry no explicit record id: running the step twice issues the
	// same number of CREATEs again, which a real store accepts as new rows.
	db := &stubQuerier{}
	s := newTestSeeder(db)

	n1, err := s.SeedEdges(context.Background())
	require.NoError(t, err)
	n2, err := s.SeedEdges(context.Background())
	require.NoError(t, err)

	assert.Equal(t, n1, n2)
	assert.Equal(t, n1+n2, db.count("transport_edge"))
	for _, sql := range db.statements {
		assert.True(t, strings.HasPrefix(sql, "CREATE transport_edge SET"),
			fmt.Sprintf("edge statements never pin a record id: %s", sql))
	}
}
