package fred

import "fmt"

// OrderBy is a sortable field accepted by the order_by parameter.
type OrderBy string

const (
	OrderBySeriesID           OrderBy = "series_id"
	OrderByTitle              OrderBy = "title"
	OrderByUnits              OrderBy = "units"
	OrderByFrequency          OrderBy = "frequency"
	OrderBySeasonalAdjustment OrderBy = "seasonal_adjustment"
	OrderByRealtimeStart      OrderBy = "realtime_start"
	OrderByRealtimeEnd        OrderBy = "realtime_end"
	OrderByLastUpdated        OrderBy = "last_updated"
	OrderByObservationStart   OrderBy = "observation_start"
	OrderByObservationEnd     OrderBy = "observation_end"
	OrderByPopularity         OrderBy = "popularity"
	OrderByGroupPopularity    OrderBy = "group_popularity"
	OrderBySearchRank         OrderBy = "search_rank"

	// Tag, source and release listings sort on their own fields.
	OrderBySeriesCount  OrderBy = "series_count"
	OrderByCreated      OrderBy = "created"
	OrderByName         OrderBy = "name"
	OrderByGroupID      OrderBy = "group_id"
	OrderByReleaseID    OrderBy = "release_id"
	OrderBySourceID     OrderBy = "source_id"
	OrderByPressRelease OrderBy = "press_release"
	OrderByReleaseDate  OrderBy = "release_date"
	OrderByReleaseName  OrderBy = "release_name"
)

var validOrderBy = map[OrderBy]bool{
	OrderBySeriesID:           true,
	OrderByTitle:              true,
	OrderByUnits:              true,
	OrderByFrequency:          true,
	OrderBySeasonalAdjustment: true,
	OrderByRealtimeStart:      true,
	OrderByRealtimeEnd:        true,
	OrderByLastUpdated:        true,
	OrderByObservationStart:   true,
	OrderByObservationEnd:     true,
	OrderByPopularity:         true,
	OrderByGroupPopularity:    true,
	OrderBySearchRank:         true,
	OrderBySeriesCount:        true,
	OrderByCreated:            true,
	OrderByName:               true,
	OrderByGroupID:            true,
	OrderByReleaseID:          true,
	OrderBySourceID:           true,
	OrderByPressRelease:       true,
	OrderByReleaseDate:        true,
	OrderByReleaseName:        true,
}

// Valid reports whether o is unset or one of the known sort fields.
func (o OrderBy) Valid() bool {
	return o == "" || validOrderBy[o]
}

func (o OrderBy) String() string { return string(o) }

// SortOrder is the direction of a sorted listing.
type SortOrder string

const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// Valid reports whether s is unset or a known direction.
func (s SortOrder) Valid() bool {
	return s == "" || s == SortAscending || s == SortDescending
}

func (s SortOrder) String() string { return string(s) }

// FilterVariable is a series attribute usable with filter_variable.
type FilterVariable string

const (
	FilterFrequency          FilterVariable = "frequency"
	FilterUnits              FilterVariable = "units"
	FilterSeasonalAdjustment FilterVariable = "seasonal_adjustment"
)

// Valid reports whether f is unset or a known attribute.
func (f FilterVariable) Valid() bool {
	switch f {
	case "", FilterFrequency, FilterUnits, FilterSeasonalAdjustment:
		return true
	default:
		return false
	}
}

func (f FilterVariable) String() string { return string(f) }

// TagGroupID identifies a tag group.
type TagGroupID string

const (
	TagGroupFrequency          TagGroupID = "freq"
	TagGroupGeneral            TagGroupID = "gen"
	TagGroupGeography          TagGroupID = "geo"
	TagGroupGeographyType      TagGroupID = "geot"
	TagGroupRelease            TagGroupID = "rls"
	TagGroupSeasonalAdjustment TagGroupID = "seas"
	TagGroupSource             TagGroupID = "src"
)

// Valid reports whether g is unset or a known tag group.
func (g TagGroupID) Valid() bool {
	switch g {
	case "", TagGroupFrequency, TagGroupGeneral, TagGroupGeography, TagGroupGeographyType,
		TagGroupRelease, TagGroupSeasonalAdjustment, TagGroupSource:
		return true
	default:
		return false
	}
}

func (g TagGroupID) String() string { return string(g) }

// ResponseFormat selects both the file_type sent to the service and how the
// reply body is decoded.
type ResponseFormat int

const (
	// FormatObject requests JSON and decodes it into a generic value.
	FormatObject ResponseFormat = iota
	// FormatJSON requests JSON and returns the raw bytes.
	FormatJSON
	// FormatXML requests XML and returns the raw bytes.
	FormatXML
)

// FileType returns the wire value of the file_type parameter.
func (f ResponseFormat) FileType() string {
	if f == FormatXML {
		return "xml"
	}
	return "json"
}

// Valid reports whether f is one of the three known formats.
func (f ResponseFormat) Valid() bool {
	return f >= FormatObject && f <= FormatXML
}

func (f ResponseFormat) String() string {
	switch f {
	case FormatObject:
		return "object"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return fmt.Sprintf("ResponseFormat(%d)", int(f))
	}
}

// ParseResponseFormat maps "object", "json" or "xml" to a ResponseFormat.
func ParseResponseFormat(s string) (ResponseFormat, error) {
	switch s {
	case "", "object":
		return FormatObject, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("%w: unknown response format %q", ErrInvalidParameter, s)
	}
}

// enumValue is implemented by every closed string domain above.
type enumValue interface {
	Valid() bool
	String() string
}

// enumField pairs a parameter name with its value for validation.
type enumField struct {
	name  string
	value enumValue
}

// checkEnums rejects the first value, in argument order, that falls outside
// its closed set.
func checkEnums(fields ...enumField) error {
	for _, f := range fields {
		if !f.value.Valid() {
			return fmt.Errorf("%w: %s=%q", ErrInvalidParameter, f.name, f.value.String())
		}
	}
	return nil
}

// Units is a data transformation applied to observations.
type Units string

const (
	UnitsLevels                     Units = "lin"
	UnitsChange                     Units = "chg"
	UnitsChangeFromYearAgo          Units = "ch1"
	UnitsPercentChange              Units = "pch"
	UnitsPercentChangeFromYearAgo   Units = "pc1"
	UnitsCompoundedAnnualRate       Units = "pca"
	UnitsContinuouslyCompounded     Units = "cch"
	UnitsContinuouslyCompoundedRate Units = "cca"
	UnitsNaturalLog                 Units = "log"
)

// Valid reports whether u is unset or a known transformation.
func (u Units) Valid() bool {
	switch u {
	case "", UnitsLevels, UnitsChange, UnitsChangeFromYearAgo, UnitsPercentChange,
		UnitsPercentChangeFromYearAgo, UnitsCompoundedAnnualRate, UnitsContinuouslyCompounded,
		UnitsContinuouslyCompoundedRate, UnitsNaturalLog:
		return true
	default:
		return false
	}
}

func (u Units) String() string { return string(u) }

// Frequency is an observation aggregation frequency.
type Frequency string

const (
	FrequencyDaily             Frequency = "d"
	FrequencyWeekly            Frequency = "w"
	FrequencyBiweekly          Frequency = "bw"
	FrequencyMonthly           Frequency = "m"
	FrequencyQuarterly         Frequency = "q"
	FrequencySemiannual        Frequency = "sa"
	FrequencyAnnual            Frequency = "a"
	FrequencyWeeklyEndingFri   Frequency = "wef"
	FrequencyWeeklyEndingThu   Frequency = "weth"
	FrequencyWeeklyEndingWed   Frequency = "wew"
	FrequencyWeeklyEndingTue   Frequency = "wetu"
	FrequencyWeeklyEndingMon   Frequency = "wem"
	FrequencyWeeklyEndingSun   Frequency = "wesu"
	FrequencyWeeklyEndingSat   Frequency = "wesa"
	FrequencyBiweeklyEndingWed Frequency = "bwew"
	FrequencyBiweeklyEndingMon Frequency = "bwem"
)

var validFrequency = map[Frequency]bool{
	FrequencyDaily: true, FrequencyWeekly: true, FrequencyBiweekly: true,
	FrequencyMonthly: true, FrequencyQuarterly: true, FrequencySemiannual: true,
	FrequencyAnnual: true, FrequencyWeeklyEndingFri: true, FrequencyWeeklyEndingThu: true,
	FrequencyWeeklyEndingWed: true, FrequencyWeeklyEndingTue: true, FrequencyWeeklyEndingMon: true,
	FrequencyWeeklyEndingSun: true, FrequencyWeeklyEndingSat: true,
	FrequencyBiweeklyEndingWed: true, FrequencyBiweeklyEndingMon: true,
}

// Valid reports whether f is unset or a known frequency.
func (f Frequency) Valid() bool {
	return f == "" || validFrequency[f]
}

func (f Frequency) String() string { return string(f) }

// AggregationMethod controls how observations are aggregated to a lower frequency.
type AggregationMethod string

const (
	AggregateAverage     AggregationMethod = "avg"
	AggregateSum         AggregationMethod = "sum"
	AggregateEndOfPeriod AggregationMethod = "eop"
)

// Valid reports whether a is unset or a known method.
func (a AggregationMethod) Valid() bool {
	return a == "" || a == AggregateAverage || a == AggregateSum || a == AggregateEndOfPeriod
}

func (a AggregationMethod) String() string { return string(a) }

// OutputType selects how vintages are laid out in observation responses.
type OutputType string

const (
	OutputRealtimePeriod     OutputType = "1"
	OutputVintageDateAll     OutputType = "2"
	OutputVintageDateNew     OutputType = "3"
	OutputInitialReleaseOnly OutputType = "4"
)

// Valid reports whether o is unset or a known output type.
func (o OutputType) Valid() bool {
	switch o {
	case "", OutputRealtimePeriod, OutputVintageDateAll, OutputVintageDateNew, OutputInitialReleaseOnly:
		return true
	default:
		return false
	}
}

func (o OutputType) String() string { return string(o) }

// SearchType selects what series/search matches against.
type SearchType string

const (
	SearchFullText SearchType = "full_text"
	SearchSeriesID SearchType = "series_id"
)

// Valid reports whether s is unset or a known search type.
func (s SearchType) Valid() bool {
	return s == "" || s == SearchFullText || s == SearchSeriesID
}

func (s SearchType) String() string { return string(s) }

// UpdateFilter restricts series/updates by geography.
type UpdateFilter string

const (
	UpdatesAll      UpdateFilter = "all"
	UpdatesMacro    UpdateFilter = "macro"
	UpdatesRegional UpdateFilter = "regional"
)

// Valid reports whether u is unset or a known filter.
func (u UpdateFilter) Valid() bool {
	return u == "" || u == UpdatesAll || u == UpdatesMacro || u == UpdatesRegional
}

func (u UpdateFilter) String() string { return string(u) }
