// Package refdata holds the hand-authored reference tables describing the
// Shanghai -> Rotterdam -> London freight corridor: countries, ports,
// carriers, cargo types and the route legs that edge synthesis expands.
// All of it is immutable; nothing here touches a store.
package refdata

// Mode identifies a transport mode on a route leg or port.
type Mode string

const (
	ModeMaritime Mode = "MARITIME"
	ModeRail     Mode = "RAIL"
	ModeRoad     Mode = "ROAD"
	ModeAir      Mode = "AIR"
)

// PortType classifies a port record.
type PortType string

const (
	PortSeaport    PortType = "SEAPORT"
	PortRailyard   PortType = "RAILYARD"
	PortAirport    PortType = "AIRPORT"
	PortInlandPort PortType = "INLAND_PORT"
)

// CarrierType classifies a carrier record.
type CarrierType string

const (
	CarrierShippingLine CarrierType = "SHIPPING_LINE"
	CarrierRailOperator CarrierType = "RAIL_OPERATOR"
	CarrierTrucking     CarrierType = "TRUCKING"
	CarrierAirline      CarrierType = "AIRLINE"
)

// Country is a labour/regulatory reference record keyed by ISO-like code.
type Country struct {
	Code         string
	Name         string
	MinWageCents int // minimum wage, cents per hour
	MaxHours     int // maximum weekly working hours
	Region       string
	Currency     string
}

// Port is a physical location identified by UN/LOCODE.
type Port struct {
	UNLocode   string
	Name       string
	Country    string // Country.Code
	Lat        float64
	Lon        float64
	Type       PortType
	Modes      []Mode
	DwellHours int // average dwell time at the port
}

// Carrier operates services over one mode.
type Carrier struct {
	Code         string
	Name         string
	Type         CarrierType
	Country      string // Country.Code
	SafetyRating int    // 1..5
	Unionized    bool
	WageCents    int // average wage, cents per hour
	WeeklyHours  int
	Sanctioned   bool
	Active       bool
}

// CargoType describes a category of freight and its handling constraints.
type CargoType struct {
	Code           string
	Name           string
	HazmatClass    string // empty when not hazardous
	TempControlled bool
	TempMinC       int // only meaningful when TempControlled
	TempMaxC       int
}

// RouteLeg is a static origin/destination pair with the carriers eligible to
// serve it. Legs are synthesis input, never persisted directly.
type RouteLeg struct {
	From       string // origin node code (UN/LOCODE)
	To         string // destination node code
	Mode       Mode
	DistanceKM float64
	Hours      float64 // nominal transit hours before jitter
	Carriers   []string
}
