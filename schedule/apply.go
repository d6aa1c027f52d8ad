package schedule

import (
	"strings"
	"time"

	"github.com/busoc/cif/record"
)

// ApplyOptions configures ScheduleDatabase.ApplyRecords. The zero value is
// usable: tracing is simply disabled.
type ApplyOptions struct {
	// Tracef, when non-nil, is called with a progress message every
	// TraceEvery records (default 10,000), mirroring the teacher CLI's
	// -v progress logging.
	Tracef func(format string, args ...interface{})
	// TraceEvery overrides the default trace interval. Zero means 10,000.
	TraceEvery int
}

// AppliedError pairs a failed record's index in the submitted slice with
// the error that rejected its bundle.
type AppliedError struct {
	Index int
	Err   error
}

type bundlerState int

const (
	stateIdle bundlerState = iota
	stateInScheduleBundle
)

// ApplyRecords mutates db by applying records in order. It never aborts
// on a single bad bundle: the failing bundle is skipped, its error is
// appended to the returned slice tagged with the index of its last
// record, and processing continues at the next bundle boundary.
func (db *ScheduleDatabase) ApplyRecords(records []record.Record, opts ApplyOptions) []AppliedError {
	every := opts.TraceEvery
	if every <= 0 {
		every = 10000
	}

	var errs []AppliedError
	var bundle []record.Record
	state := stateIdle

	for i, rec := range records {
		if opts.Tracef != nil && i > 0 && i%every == 0 {
			opts.Tracef("applied %d records", i)
		}

		switch state {
		case stateIdle:
			if rec.Kind == record.KindBasicSchedule && !isBSSingleton(rec.BasicSchedule) {
				bundle = []record.Record{rec}
				state = stateInScheduleBundle
				continue
			}
			if err := db.applySingleton(rec); err != nil {
				errs = append(errs, AppliedError{Index: i, Err: err})
			}
		case stateInScheduleBundle:
			switch rec.Kind {
			case record.KindBasicScheduleExtended, record.KindLocationOrigin,
				record.KindLocationIntermediate, record.KindChangeEnRoute:
				bundle = append(bundle, rec)
			case record.KindLocationTerminate:
				bundle = append(bundle, rec)
				if err := db.applyBundle(bundle); err != nil {
					errs = append(errs, AppliedError{Index: i, Err: err})
				}
				bundle = nil
				state = stateIdle
			default:
				// Any other record while mid-bundle is silently ignored:
				// the bundler does not flush early. The decoder has
				// already captured it in the decoded stream; only the
				// engine's semantics are unaffected.
			}
		}
	}
	return errs
}

func isBSSingleton(bs *record.BasicSchedule) bool {
	return bs.TransactionType == 'D' || bs.STPIndicator == 'C'
}

// applySingleton handles every record kind that stands on its own: HD,
// TI, TA, TD, AA, ZZ, and a BS that is a delete or cancellation.
func (db *ScheduleDatabase) applySingleton(rec record.Record) error {
	switch rec.Kind {
	case record.KindHeader:
		return db.applyHeader(rec.Header)
	case record.KindTIPLOCInsert:
		db.applyTIPLOCInsert(rec.TIPLOCInsert)
		return nil
	case record.KindTIPLOCAmend:
		db.applyTIPLOCAmend(rec.TIPLOCAmend)
		return nil
	case record.KindTIPLOCDelete:
		db.applyTIPLOCDelete(rec.TIPLOCDelete)
		return nil
	case record.KindBasicSchedule:
		return db.applyBasicScheduleSingleton(rec.BasicSchedule)
	default:
		// Association, Trailer, and any mid-bundle record kind seen
		// while Idle carry no engine-level mutation.
		return nil
	}
}

func (db *ScheduleDatabase) applyHeader(h *record.Header) error {
	extract, err := parseHeaderDateTime(h.DateOfExtract, h.TimeOfExtract)
	if err != nil {
		return err
	}
	db.extractDateTime = extract
	if parseUpdateIndicator(h.UpdateIndicator) == UpdateIndicatorFull {
		db.tiplocs = make(map[string]TIPLOC)
		// The reference implementation this engine descends from only
		// clears tiplocs on a full update; schedules are left untouched.
		// That is judged a latent bug for a timetable store meant to
		// mirror the feed exactly, so a full update clears both here.
		db.schedules = make(map[string][]Schedule)
	}
	return nil
}

func parseHeaderDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse("020106 1504", date+" "+clock)
	if err != nil {
		return time.Time{}, newApplyError(errInvalidHeaderDateTime, date+clock)
	}
	return t, nil
}

func (db *ScheduleDatabase) applyTIPLOCInsert(ti *record.TIPLOCInsert) {
	key := trimTiploc(ti.Tiploc)
	db.tiplocs[key] = TIPLOC{
		Tiploc:      key,
		CRS:         strings.TrimRight(ti.ThreeAlphaCode, " "),
		Description: strings.TrimRight(ti.TPSDescription, " "),
	}
}

func (db *ScheduleDatabase) applyTIPLOCAmend(ta *record.TIPLOCAmend) {
	oldKey := trimTiploc(ta.Tiploc)
	newKey := strings.TrimRight(ta.NewTiploc, " ")
	if newKey == "" {
		db.applyTIPLOCInsert(&ta.TIPLOCInsert)
		return
	}
	delete(db.tiplocs, oldKey)
	db.tiplocs[newKey] = TIPLOC{
		Tiploc:      newKey,
		CRS:         strings.TrimRight(ta.ThreeAlphaCode, " "),
		Description: strings.TrimRight(ta.TPSDescription, " "),
	}
}

func (db *ScheduleDatabase) applyTIPLOCDelete(td *record.TIPLOCDelete) {
	delete(db.tiplocs, trimTiploc(td.Tiploc))
}

func (db *ScheduleDatabase) applyBasicScheduleSingleton(bs *record.BasicSchedule) error {
	uid := trimTiploc(bs.TrainUID)
	if bs.TransactionType == 'D' {
		delete(db.schedules, uid)
		return nil
	}
	// Cancellation singleton: a Schedule built from the BS fields alone,
	// with no journey, appended only if the train_uid already exists.
	s, err := newScheduleFromBasicSchedule(bs)
	if err != nil {
		return err
	}
	if _, ok := db.schedules[uid]; ok {
		db.schedules[uid] = append(db.schedules[uid], s)
	}
	return nil
}
