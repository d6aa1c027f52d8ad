package record

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// CIFFile is the materialised result of a full decode pass: the ordered
// list of Records from a feed, HD through ZZ.
type CIFFile struct {
	Records []Record
}

// ParseCIF runs the decoder to completion and returns every Record it
// produced. It is a convenience wrapper around Decoder for callers that
// want the whole feed in memory at once (spec.md's §6.2 `parse_cif`
// operation).
func ParseCIF(r io.Reader) (*CIFFile, error) {
	dec := NewDecoder(r)
	var file CIFFile
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		file.Records = append(file.Records, rec)
		if rec.Kind == KindTrailer {
			break
		}
	}
	return &file, nil
}

// Decoder produces a lazy sequence of Records from a byte source one
// 81-byte chunk (80 columns + 1 line terminator) at a time. It is the
// type a caller should use to stream a multi-million-record feed without
// holding the whole decoded file in memory.
type Decoder struct {
	r    *bufio.Reader
	line int
	done bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReaderSize(r, 1<<16)}
}

// Next decodes and returns the next Record. It returns io.EOF once the
// trailer record has been returned. If the underlying reader is exhausted
// first, the error is a *ParseError wrapping an *ErrRead around the read
// error, so errors.Is(err, io.EOF) reports true for a clean end of input.
func (d *Decoder) Next() (Record, error) {
	if d.done {
		return Record{}, io.EOF
	}
	d.line++

	buf := make([]byte, rowWidth+1)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return Record{}, atLine(d.line, &ErrRead{Cause: err})
	}
	row := buf[:rowWidth]

	tag := string(row[0:2])
	spec, ok := specs[tag]
	if !ok {
		return Record{}, atLine(d.line, &ErrInvalidRecordType{Tag: tag})
	}

	rec, err := decodeRecord(spec, row)
	if err != nil {
		return Record{}, atLine(d.line, err)
	}
	if rec.Kind == KindTrailer {
		d.done = true
	}
	return rec, nil
}

// decodeRecord slices out every declared field for spec and builds the
// typed Record. This is the one place syntactic decoding happens; no
// field is given domain meaning here.
func decodeRecord(spec recordSpec, row []byte) (Record, error) {
	raw, err := cutFields(row, spec.fields)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Kind: spec.tag}
	switch spec.tag {
	case KindHeader:
		rec.Header = &Header{
			FileMainframeIdentity: raw.str("file_mainframe_identity"),
			DateOfExtract:         raw.str("date_of_extract"),
			TimeOfExtract:         raw.str("time_of_extract"),
			CurrentFileReference:  raw.str("current_file_reference"),
			LastFileReference:     raw.str("last_file_reference"),
			UpdateIndicator:       raw.char("update_indicator"),
			Version:               raw.char("version"),
			UserStartDate:         raw.str("user_start_date"),
			UserEndDate:           raw.str("user_end_date"),
		}
	case KindTIPLOCInsert:
		ti, err := newTIPLOCInsert(raw)
		if err != nil {
			return Record{}, err
		}
		rec.TIPLOCInsert = &ti
	case KindTIPLOCAmend:
		ti, err := newTIPLOCInsert(raw)
		if err != nil {
			return Record{}, err
		}
		rec.TIPLOCAmend = &TIPLOCAmend{TIPLOCInsert: ti, NewTiploc: raw.str("new_tiploc")}
	case KindTIPLOCDelete:
		rec.TIPLOCDelete = &TIPLOCDelete{Tiploc: raw.str("tiploc")}
	case KindAssociation:
		rec.Association = &Association{
			TransactionType:           raw.char("transaction_type"),
			MainTrainUID:              raw.str("main_train_uid"),
			AssociatedTrainUID:        raw.str("associated_train_uid"),
			AssociationStartDate:      raw.str("association_start_date"),
			AssociationEndDate:        raw.str("association_end_date"),
			AssociationDays:           raw.str("association_days"),
			AssociationCategory:       raw.str("association_category"),
			AssociationDateIndicator:  raw.char("association_date_indicator"),
			AssociationLocation:       raw.str("association_location"),
			BaseLocationSuffix:        raw.str("base_location_suffix"),
			AssociationLocationSuffix: raw.str("association_location_suffix"),
			DiagramType:               raw.char("diagram_type"),
			AssociationType:           raw.char("association_type"),
			STPIndicator:              raw.char("stp_indicator"),
		}
	case KindBasicSchedule:
		rec.BasicSchedule = &BasicSchedule{
			TransactionType:          raw.char("transaction_type"),
			TrainUID:                 raw.str("train_uid"),
			DateRunsFrom:             raw.str("date_runs_from"),
			DateRunsTo:               raw.str("date_runs_to"),
			DaysRun:                  raw.str("days_run"),
			BankHolidayRunning:       raw.char("bank_holiday_running"),
			TrainStatus:              raw.char("train_status"),
			TrainCategory:            raw.str("train_category"),
			TrainIdentity:            raw.str("train_identity"),
			Headcode:                 raw.str("headcode"),
			CourseIndicator:          raw.char("course_indicator"),
			TrainServiceCode:         raw.str("train_service_code"),
			PortionID:                raw.char("portion_id"),
			PowerType:                raw.str("power_type"),
			TimingLoad:               raw.str("timing_load"),
			Speed:                    raw.str("speed"),
			OperatingCharacteristics: raw.str("operating_characteristics"),
			SeatingClass:             raw.char("seating_class"),
			Sleepers:                 raw.char("sleepers"),
			Reservations:             raw.char("reservations"),
			ConnectionIndicator:      raw.char("connection_indicator"),
			CateringCode:             raw.str("catering_code"),
			ServiceBranding:          raw.str("service_branding"),
			STPIndicator:             raw.char("stp_indicator"),
		}
	case KindBasicScheduleExtended:
		rec.BasicScheduleExtended = &BasicScheduleExtended{
			TractionClass:           raw.str("traction_class"),
			UICCode:                 raw.str("uic_code"),
			ATOCCode:                raw.str("atoc_code"),
			ApplicableTimetableCode: raw.char("applicable_timetable_code"),
		}
	case KindLocationOrigin:
		rec.LocationOrigin = &LocationOrigin{
			Location:               raw.str("location"),
			ScheduledDepartureTime: raw.str("scheduled_departure_time"),
			PublicDepartureTime:    raw.str("public_departure_time"),
			Platform:               raw.str("platform"),
			Line:                   raw.str("line"),
			EngineeringAllowance:   raw.str("engineering_allowance"),
			PathingAllowance:       raw.str("pathing_allowance"),
			Activity:               raw.str("activity"),
			PerformanceAllowance:   raw.str("performance_allowance"),
		}
	case KindLocationIntermediate:
		rec.LocationIntermediate = &LocationIntermediate{
			Location:                 raw.str("location"),
			ScheduledArrivalTime:     raw.str("scheduled_arrival_time"),
			ScheduledDepartureTime:   raw.str("scheduled_departure_time"),
			ScheduledPass:            raw.str("scheduled_pass"),
			PublicArrivalTime:        raw.str("public_arrival_time"),
			PublicDepartureTime:      raw.str("public_departure_time"),
			Platform:                 raw.str("platform"),
			Line:                     raw.str("line"),
			Path:                     raw.str("path"),
			Activity:                 raw.str("activity"),
			EngineeringAllowance:     raw.str("engineering_allowance"),
			PathingAllowance:         raw.str("pathing_allowance"),
			PerformanceAllowance:     raw.str("performance_allowance"),
		}
	case KindChangeEnRoute:
		rec.ChangeEnRoute = &ChangeEnRoute{
			Location:         raw.str("location"),
			TrainCategory:    raw.str("train_category"),
			TrainIdentity:    raw.str("train_identity"),
			Headcode:         raw.str("headcode"),
			CourseIndicator:  raw.char("course_indicator"),
			ProfitCentreCode: raw.str("profit_centre_code"),
			BusinessSector:   raw.char("business_sector"),
			PowerType:        raw.str("power_type"),
			TimingLoad:       raw.str("timing_load"),
			Speed:            raw.str("speed"),
			OperatingChars:   raw.str("operating_chars"),
			TrainClass:       raw.char("train_class"),
			Sleepers:         raw.char("sleepers"),
			Reservations:     raw.char("reservations"),
			ConnectIndicator: raw.char("connect_indicator"),
			CateringCode:     raw.str("catering_code"),
			ServiceBranding:  raw.str("service_branding"),
			TractionClass:    raw.str("traction_class"),
			UICCode:          raw.str("uic_code"),
			RetailTrainID:    raw.str("retail_train_id"),
		}
	case KindLocationTerminate:
		rec.LocationTerminate = &LocationTerminate{
			Location:             raw.str("location"),
			ScheduledArrivalTime: raw.str("scheduled_arrival_time"),
			PublicArrivalTime:    raw.str("public_arrival_time"),
			Platform:             raw.str("platform"),
			Path:                 raw.str("path"),
			Activity:             raw.str("activity"),
		}
	case KindTrailer:
		// no fields
	}
	return rec, nil
}

func newTIPLOCInsert(raw rawFields) (TIPLOCInsert, error) {
	caps, err := raw.uint("capitals_identification")
	if err != nil {
		return TIPLOCInsert{}, err
	}
	nlc, err := raw.uint("nlc")
	if err != nil {
		return TIPLOCInsert{}, err
	}
	stanox, err := raw.uint("stanox")
	if err != nil {
		return TIPLOCInsert{}, err
	}
	return TIPLOCInsert{
		Tiploc:                  raw.str("tiploc"),
		CapitalsIdentification:  caps,
		NLC:                     nlc,
		NLCCheckChar:            raw.char("nlc_check_char"),
		TPSDescription:          raw.str("tps_description"),
		Stanox:                  stanox,
		POMCPCode:               raw.str("po_mcp_code"),
		ThreeAlphaCode:          raw.str("three_alpha_code"),
		NLCDescription:          raw.str("nlc_description"),
	}, nil
}

// rawFields holds the raw column slices cut out of one row, keyed by
// field name.
type rawFields struct {
	values map[string]string
}

func cutFields(row []byte, fields []fieldSpec) (rawFields, error) {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.end() > len(row) {
			return rawFields{}, &ErrGarbledRecord{Reason: "row shorter than declared field layout"}
		}
		values[f.name] = string(row[f.start:f.end()])
	}
	return rawFields{values: values}, nil
}

func (r rawFields) str(name string) string { return r.values[name] }

func (r rawFields) char(name string) byte {
	s := r.values[name]
	if len(s) == 0 {
		return ' '
	}
	return s[0]
}

func (r *rawFields) uint(name string) (uint64, error) {
	s := strings.TrimSpace(r.values[name])
	if s == "" {
		return 0, &ErrGarbledRecord{Reason: "field " + name + " is empty"}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ErrGarbledRecord{Reason: "field " + name + " is not numeric: " + s}
	}
	return n, nil
}
