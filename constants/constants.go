// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Global Simulator Tunables
//
// Purpose:
//   - Defines the fixed limits and defaults shared by every parksim package.
//   - Includes the environment variable names recognized at bootstrap.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Log Hash Table ──────────────────────────────

const (
	// InitialTableSize is the bucket count a freshly created log table starts
	// with. It is prime, and every later capacity is prime as well because
	// growth always lands on nearestPrime(2*cap+1).
	InitialTableSize = 53

	// LoadFactorThreshold is the count/capacity ratio beyond which a table
	// doubles. The count is the monotonic number of inserted records, not the
	// number of occupied buckets, so long chains still trigger growth.
	LoadFactorThreshold = 0.75
)

// ───────────────────────────── Park Registry ───────────────────────────────

const (
	// MaxParks caps how many parks can exist at once. Creation past the cap
	// is refused; removal frees a slot.
	MaxParks = 20
)

// ───────────────────────────── Licence Plates ──────────────────────────────

const (
	// PlateLength is the byte length of a well-formed plate: three
	// two-character pairs joined by dashes, e.g. "AA-00-BB".
	PlateLength = 8
)

// ───────────────────────────── Time & Billing ──────────────────────────────

const (
	// QuarterMinutes is the billing granularity. Stays are charged per
	// started quarter hour.
	QuarterMinutes = 15

	// FirstHourQuarters is how many quarters bill at the first-hour rate
	// before the after-hour rate takes over.
	FirstHourQuarters = 4

	// MinutesInHour and MinutesInDay anchor the linear minute scale that
	// timestamps map onto. A stay of exactly MinutesInDay minutes costs one
	// full daily cap.
	MinutesInHour = 60
	MinutesInDay  = 24 * MinutesInHour

	// DaysInYear is the year length used by the linear minute scale.
	// The calendar has no leap years: February 29 never validates.
	DaysInYear = 365
)

// ─────────────────────────── Bootstrap Environment ─────────────────────────

const (
	// DefaultConfigPath is where the simulator looks for its JSON
	// configuration when PARKSIM_CONFIG is unset. A missing default file is
	// not an error; built-in defaults apply.
	DefaultConfigPath = "parksim.json"

	// EnvConfigPath overrides the configuration file location. When set, the
	// file must exist and parse.
	EnvConfigPath = "PARKSIM_CONFIG"

	// EnvRosterDB points at an optional SQLite roster database whose parks
	// are provisioned before the command stream is read.
	EnvRosterDB = "PARKSIM_ROSTER_DB"

	// EnvTableSize, EnvLoadFactor, EnvMaxParks and EnvGrowOnHeadInsert
	// override the matching configuration fields from the process
	// environment. Environment wins over file.
	EnvTableSize        = "PARKSIM_INITIAL_TABLE_SIZE"
	EnvLoadFactor       = "PARKSIM_LOAD_FACTOR"
	EnvMaxParks         = "PARKSIM_MAX_PARKS"
	EnvGrowOnHeadInsert = "PARKSIM_GROW_ON_HEAD_INSERT"
)
