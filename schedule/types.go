// Package schedule applies a decoded CIF record stream to an in-memory
// ScheduleDatabase. It owns every piece of domain semantics the record
// package deliberately stays blind to: trimming, enum resolution, the
// bundling state machine and the insert/revise/delete/cancel rules.
package schedule

import (
	"strings"
	"time"
)

// TIPLOC is a timing point location, keyed by its trimmed TIPLOC code.
type TIPLOC struct {
	Tiploc      string
	CRS         string // three_alpha_code; may be empty
	Description string
}

// JourneyLocation is one stop in a Schedule's journey, in bundle order.
// Which time fields are populated depends on whether it came from an LO,
// LI or LT record.
type JourneyLocation struct {
	Tiploc            string
	Arrival           *JourneyTime
	Departure         *JourneyTime
	Passing           *JourneyTime
	PublicArrival     *JourneyTime
	PublicDeparture   *JourneyTime
	Platform          string
	Line              string
	Activity          string
	Change            *ChangeEnRoute
}

// ChangeEnRoute carries the fields of a CR record that applies to a
// JourneyLocation. The reference implementation this engine is modelled
// on discards CR entirely; here it is retained as metadata on the
// location it changes rather than silently dropped.
type ChangeEnRoute struct {
	TrainCategory  TrainCategory
	TrainIdentity  string
	Headcode       string
	PowerType      PowerType
	TimingLoad     TimingLoad
	Speed          int
	SeatingClass   SeatingClass
	Sleepers       Sleepers
	Reservations   Reservations
	Catering       []Catering
}

// Schedule is one complete service instance: a single BS(+BX)+LO+LI*+CR*+LT
// bundle, or a cancellation singleton derived from a lone BS.
type Schedule struct {
	TrainUID                        string
	DateRunsFrom                    time.Time
	DateRunsTo                      time.Time
	DaysRun                         DaysRun
	BankHolidayRunning              BankHolidayRunning
	ATOCCode                        string
	SubjectToPerformanceMonitoring  bool
	TrainStatus                     TrainStatus
	TrainCategory                   TrainCategory
	Headcode                        string
	PortionID                       byte
	PowerType                       PowerType
	TimingLoad                      TimingLoad
	Speed                           int
	OperatingCharacteristics        []OperatingCharacteristic
	SeatingClass                    SeatingClass
	Sleepers                        Sleepers
	Reservations                    Reservations
	Catering                        []Catering
	STPIndicator                    STPIndicator
	Journey                         []JourneyLocation
}

// ScheduleDatabase is the mutable store built up by applying a CIF record
// stream. It is owned exclusively by its mutator; concurrent apply from
// multiple goroutines is not supported.
type ScheduleDatabase struct {
	extractDateTime time.Time
	tiplocs         map[string]TIPLOC
	schedules       map[string][]Schedule
}

// New returns an empty ScheduleDatabase.
func New() *ScheduleDatabase {
	return &ScheduleDatabase{
		tiplocs:   make(map[string]TIPLOC),
		schedules: make(map[string][]Schedule),
	}
}

// Tiplocs returns the current TIPLOC table, keyed by trimmed code. The
// returned map is owned by the database and must be treated read-only.
func (db *ScheduleDatabase) Tiplocs() map[string]TIPLOC { return db.tiplocs }

// Schedules returns the current schedule table, keyed by train_uid. The
// returned map is owned by the database and must be treated read-only.
func (db *ScheduleDatabase) Schedules() map[string][]Schedule { return db.schedules }

// ExtractDateTime returns the extract timestamp from the most recently
// applied Header record.
func (db *ScheduleDatabase) ExtractDateTime() time.Time { return db.extractDateTime }

// GetCRSFromTiploc resolves a possibly padded or suffix-bearing TIPLOC
// string to the set of candidate CRS codes. It prefers an exact match,
// and on miss repeatedly trims trailing characters until a prefix matches
// a stored TIPLOC with a non-empty CRS, or the candidate is exhausted.
func (db *ScheduleDatabase) GetCRSFromTiploc(code string) []string {
	candidate := strings.TrimRight(code, " ")
	for len(candidate) > 0 {
		if t, ok := db.tiplocs[candidate]; ok && t.CRS != "" {
			return []string{t.CRS}
		}
		candidate = candidate[:len(candidate)-1]
	}
	return nil
}

func trimTiploc(s string) string { return strings.TrimRight(s, " ") }
