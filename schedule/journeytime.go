package schedule

// JourneyTime is a half-minute-precise wall clock time: CIF only carries
// whole minutes plus an optional "+30s" flag encoded as a trailing 'H'.
type JourneyTime struct {
	Hour   int
	Minute int
	Half   bool
}

// parseJourneyTime parses a 4-char "HHMM" or 5-char "HHMM"+{'H',' '} field.
// Whether the field is present at all (entirely blank) is the caller's
// concern, not this parser's.
func parseJourneyTime(s string) (JourneyTime, error) {
	if len(s) != 4 && len(s) != 5 {
		return JourneyTime{}, newApplyError(errInvalidJourneyTime, s)
	}
	hour, ok := parseDigits2(s[0:2])
	if !ok || hour > 23 {
		return JourneyTime{}, newApplyError(errInvalidJourneyTime, s)
	}
	minute, ok := parseDigits2(s[2:4])
	if !ok || minute > 59 {
		return JourneyTime{}, newApplyError(errInvalidJourneyTime, s)
	}
	half := false
	if len(s) == 5 {
		switch s[4] {
		case 'H':
			half = true
		case ' ':
			half = false
		default:
			return JourneyTime{}, newApplyError(errInvalidJourneyTime, s)
		}
	}
	return JourneyTime{Hour: hour, Minute: minute, Half: half}, nil
}

func parseDigits2(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
