package schedule

import "fmt"

// ApplyError is the error taxonomy returned by ScheduleDatabase.ApplyRecords.
// Every variant names the field that failed to resolve against its code
// table, carrying the raw value for diagnostics.
type ApplyError struct {
	Kind  string
	Value string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Value)
}

func newApplyError(kind, value string) *ApplyError {
	return &ApplyError{Kind: kind, Value: value}
}

var (
	errInvalidHeaderDateTime = "invalid header extract date/time"
	errInvalidScheduleDate   = "invalid schedule date"
	errInvalidDaysRun        = "invalid days run"
	errInvalidTrainStatus    = "invalid train status"
	errInvalidTrainCategory  = "invalid train category"
	errInvalidPowerType      = "invalid power type"
	errInvalidTimingLoad     = "invalid timing load"
	errInvalidOperatingChar  = "invalid operating characteristic"
	errInvalidSeatingClass   = "invalid seating class"
	errInvalidSleepers       = "invalid sleepers"
	errInvalidReservations   = "invalid reservations"
	errInvalidCateringCode   = "invalid catering code"
	errInvalidSTPIndicator   = "invalid STP indicator"
	errInvalidJourneyTime    = "invalid journey time"
)
