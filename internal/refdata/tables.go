package refdata

// Countries covered by the corridor. Singapore has no statutory minimum wage,
// hence the zero.
var Countries = []Country{
	{Code: "CN", Name: "China", MinWageCents: 350, MaxHours: 44, Region: "APAC", Currency: "USD"},
	{Code: "SG", Name: "Singapore", MinWageCents: 0, MaxHours: 44, Region: "APAC", Currency: "USD"},
	{Code: "MY", Name: "Malaysia", MinWageCents: 280, MaxHours: 48, Region: "APAC", Currency: "USD"},
	{Code: "EG", Name: "Egypt", MinWageCents: 180, MaxHours: 48, Region: "MENA", Currency: "USD"},
	{Code: "NL", Name: "Netherlands", MinWageCents: 1395, MaxHours: 40, Region: "EU", Currency: "USD"},
	{Code: "DE", Name: "Germany", MinWageCents: 1260, MaxHours: 48, Region: "EU", Currency: "USD"},
	{Code: "BE", Name: "Belgium", MinWageCents: 1955, MaxHours: 38, Region: "EU", Currency: "USD"},
	{Code: "FR", Name: "France", MinWageCents: 1398, MaxHours: 35, Region: "EU", Currency: "USD"},
	{Code: "GB", Name: "United Kingdom", MinWageCents: 1340, MaxHours: 48, Region: "EU", Currency: "USD"},
	{Code: "PL", Name: "Poland", MinWageCents: 660, MaxHours: 48, Region: "EU", Currency: "USD"},
}

// Ports along the corridor, one transport node is derived per port.
var Ports = []Port{
	{UNLocode: "CNSHA", Name: "Shanghai", Country: "CN", Lat: 31.2304, Lon: 121.4737,
		Type: PortSeaport, Modes: []Mode{ModeMaritime, ModeRail, ModeRoad}, DwellHours: 24},
	{UNLocode: "CNNGB", Name: "Ningbo", Country: "CN", Lat: 29.8683, Lon: 121.5440,
		Type: PortSeaport, Modes: []Mode{ModeMaritime, ModeRail}, DwellHours: 18},
	{UNLocode: "SGSIN", Name: "Singapore", Country: "SG", Lat: 1.2644, Lon: 103.8200,
		Type: PortSeaport, Modes: []Mode{ModeMaritime, ModeRoad}, DwellHours: 12},
	{UNLocode: "EGSUZ", Name: "Port Said", Country: "EG", Lat: 31.2653, Lon: 32.3019,
		Type: PortSeaport, Modes: []Mode{ModeMaritime}, DwellHours: 6},
	{UNLocode: "NLRTM", Name: "Rotterdam", Country: "NL", Lat: 51.9225, Lon: 4.4792,
		Type: PortSeaport, Modes: []Mode{ModeMaritime, ModeRail, ModeRoad}, DwellHours: 18},
	{UNLocode: "DEHAM", Name: "Hamburg", Country: "DE", Lat: 53.5511, Lon: 9.9937,
		Type: PortSeaport, Modes: []Mode{ModeMaritime, ModeRail, ModeRoad}, DwellHours: 18},
	{UNLocode: "BEANR", Name: "Antwerp", Country: "BE", Lat: 51.2194, Lon: 4.4025,
		Type: PortSeaport, Modes: []Mode{ModeMaritime, ModeRail, ModeRoad}, DwellHours: 18},
	{UNLocode: "DEDUI", Name: "Duisburg", Country: "DE", Lat: 51.4344, Lon: 6.7623,
		Type: PortRailyard, Modes: []Mode{ModeRail, ModeRoad}, DwellHours: 8},
	{UNLocode: "PLWAW", Name: "Warsaw", Country: "PL", Lat: 52.2297, Lon: 21.0122,
		Type: PortRailyard, Modes: []Mode{ModeRail, ModeRoad}, DwellHours: 8},
	{UNLocode: "GBFXT", Name: "Felixstowe", Country: "GB", Lat: 51.9536, Lon: 1.3511,
		Type: PortSeaport, Modes: []Mode{ModeMaritime, ModeRail, ModeRoad}, DwellHours: 18},
	{UNLocode: "GBLHR", Name: "London Heathrow", Country: "GB", Lat: 51.4700, Lon: -0.4543,
		Type: PortAirport, Modes: []Mode{ModeAir, ModeRoad}, DwellHours: 4},
	{UNLocode: "GBLON", Name: "London (Distribution)", Country: "GB", Lat: 51.5074, Lon: -0.1278,
		Type: PortInlandPort, Modes: []Mode{ModeRoad, ModeRail}, DwellHours: 6},
}

// Carriers eligible to serve the route legs.
var Carriers = []Carrier{
	// Shipping lines
	{Code: "MAEU", Name: "Maersk", Type: CarrierShippingLine, Country: "NL",
		SafetyRating: 5, Unionized: true, WageCents: 2800, WeeklyHours: 42, Active: true},
	{Code: "CMDU", Name: "CMA CGM", Type: CarrierShippingLine, Country: "FR",
		SafetyRating: 4, Unionized: true, WageCents: 2600, WeeklyHours: 40, Active: true},
	{Code: "COSU", Name: "COSCO", Type: CarrierShippingLine, Country: "CN",
		SafetyRating: 4, Unionized: false, WageCents: 1200, WeeklyHours: 48, Active: true},
	{Code: "MSCU", Name: "MSC", Type: CarrierShippingLine, Country: "NL",
		SafetyRating: 4, Unionized: true, WageCents: 2700, WeeklyHours: 42, Active: true},

	// Rail operators
	{Code: "DBCG", Name: "DB Cargo", Type: CarrierRailOperator, Country: "DE",
		SafetyRating: 5, Unionized: true, WageCents: 2400, WeeklyHours: 38, Active: true},
	{Code: "SNCF", Name: "SNCF Fret", Type: CarrierRailOperator, Country: "FR",
		SafetyRating: 5, Unionized: true, WageCents: 2500, WeeklyHours: 35, Active: true},
	{Code: "PKPC", Name: "PKP Cargo", Type: CarrierRailOperator, Country: "PL",
		SafetyRating: 4, Unionized: true, WageCents: 1400, WeeklyHours: 42, Active: true},

	// Trucking
	{Code: "DFDS", Name: "DFDS Logistics", Type: CarrierTrucking, Country: "NL",
		SafetyRating: 4, Unionized: true, WageCents: 2200, WeeklyHours: 45, Active: true},
	{Code: "RHEL", Name: "Rhenus Logistics", Type: CarrierTrucking, Country: "DE",
		SafetyRating: 4, Unionized: true, WageCents: 2100, WeeklyHours: 45, Active: true},
	{Code: "EDLS", Name: "Eddie Stobart", Type: CarrierTrucking, Country: "GB",
		SafetyRating: 4, Unionized: false, WageCents: 1800, WeeklyHours: 48, Active: true},

	// Air cargo
	{Code: "LHCG", Name: "Lufthansa Cargo", Type: CarrierAirline, Country: "DE",
		SafetyRating: 5, Unionized: true, WageCents: 3500, WeeklyHours: 40, Active: true},
}

// CargoTypes seeded as reference data for downstream compliance checks.
var CargoTypes = []CargoType{
	{Code: "GEN", Name: "General Cargo"},
	{Code: "REF", Name: "Refrigerated", TempControlled: true, TempMinC: -25, TempMaxC: 5},
	{Code: "HAZ1", Name: "Explosives", HazmatClass: "Class 1"},
	{Code: "HAZ3", Name: "Flammable Liquids", HazmatClass: "Class 3"},
	{Code: "HVY", Name: "Heavy Machinery"},
}

// CarbonFactors is kg CO2 emitted per tonne-km by mode.
var CarbonFactors = map[Mode]float64{
	ModeMaritime: 0.015,
	ModeRail:     0.025,
	ModeRoad:     0.100,
	ModeAir:      0.800,
}

// Routes are the static legs of the corridor. PLWAW -> CNSHA is the New Silk
// Road rail service.
var Routes = []RouteLeg{
	// Maritime (Shanghai corridor)
	{From: "CNSHA", To: "SGSIN", Mode: ModeMaritime, DistanceKM: 3800, Hours: 120, Carriers: []string{"MAEU", "COSU", "CMDU"}},
	{From: "SGSIN", To: "EGSUZ", Mode: ModeMaritime, DistanceKM: 8500, Hours: 288, Carriers: []string{"MAEU", "COSU", "CMDU", "MSCU"}},
	{From: "EGSUZ", To: "NLRTM", Mode: ModeMaritime, DistanceKM: 5200, Hours: 168, Carriers: []string{"MAEU", "CMDU", "MSCU"}},
	{From: "EGSUZ", To: "DEHAM", Mode: ModeMaritime, DistanceKM: 5800, Hours: 192, Carriers: []string{"MAEU", "MSCU"}},
	{From: "CNSHA", To: "NLRTM", Mode: ModeMaritime, DistanceKM: 19500, Hours: 672, Carriers: []string{"MAEU", "CMDU", "COSU"}},

	// Rail (Europe)
	{From: "NLRTM", To: "DEDUI", Mode: ModeRail, DistanceKM: 220, Hours: 6, Carriers: []string{"DBCG"}},
	{From: "DEDUI", To: "PLWAW", Mode: ModeRail, DistanceKM: 900, Hours: 18, Carriers: []string{"DBCG", "PKPC"}},
	{From: "PLWAW", To: "CNSHA", Mode: ModeRail, DistanceKM: 9000, Hours: 336, Carriers: []string{"PKPC"}},
	{From: "DEHAM", To: "DEDUI", Mode: ModeRail, DistanceKM: 350, Hours: 8, Carriers: []string{"DBCG"}},
	{From: "NLRTM", To: "BEANR", Mode: ModeRail, DistanceKM: 100, Hours: 3, Carriers: []string{"DBCG", "SNCF"}},

	// Road (last mile)
	{From: "NLRTM", To: "GBLON", Mode: ModeRoad, DistanceKM: 450, Hours: 10, Carriers: []string{"DFDS", "RHEL"}},
	{From: "GBFXT", To: "GBLON", Mode: ModeRoad, DistanceKM: 130, Hours: 3, Carriers: []string{"EDLS", "DFDS"}},
	{From: "DEDUI", To: "GBFXT", Mode: ModeRoad, DistanceKM: 600, Hours: 14, Carriers: []string{"DFDS", "RHEL"}},
	{From: "BEANR", To: "GBFXT", Mode: ModeRoad, DistanceKM: 350, Hours: 8, Carriers: []string{"DFDS"}},

	// Air
	{From: "CNSHA", To: "GBLHR", Mode: ModeAir, DistanceKM: 9200, Hours: 14, Carriers: []string{"LHCG"}},
	{From: "GBLHR", To: "GBLON", Mode: ModeRoad, DistanceKM: 30, Hours: 1, Carriers: []string{"EDLS"}},
}

// CarrierByCode returns the carrier with the given code, or false when the
// code is not in the table.
func CarrierByCode(code string) (Carrier, bool) {
	for _, c := range Carriers {
		if c.Code == code {
			return c, true
		}
	}
	return Carrier{}, false
}

// PortByLocode returns the port with the given UN/LOCODE.
func PortByLocode(locode string) (Port, bool) {
	for _, p := range Ports {
		if p.UNLocode == locode {
			return p, true
		}
	}
	return Port{}, false
}
