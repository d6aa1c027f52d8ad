package record

// fieldType describes how a raw column slice should be converted once it
// has been cut out of the 80-column row. The decoder never interprets the
// meaning of a field, only its wire shape.
type fieldType int

const (
	// fieldString keeps the slice as-is, trailing spaces and all. Trimming
	// happens once, in the schedule package, never here.
	fieldString fieldType = iota
	// fieldChar takes the single byte at that column.
	fieldChar
	// fieldUint parses the slice as base-10 unsigned.
	fieldUint
)

// fieldSpec names one column range of a row and how to convert it.
//
// This table is the single source of truth for column offsets and lengths,
// so slicing cannot drift from the declared shape. The typ column is not
// read by the decoder: decodeRecord picks each field's conversion by name.
type fieldSpec struct {
	name   string
	start  int
	length int
	typ    fieldType
}

func (f fieldSpec) end() int { return f.start + f.length }

// recordSpec is the full column layout for one record kind, keyed by its
// 2-character tag.
type recordSpec struct {
	tag    string
	fields []fieldSpec
}

// rowWidth is the number of data columns in a CIF row, excluding the line
// terminator.
const rowWidth = 80

var specs = map[string]recordSpec{
	KindHeader: {
		tag: KindHeader,
		fields: []fieldSpec{
			{"file_mainframe_identity", 2, 20, fieldString},
			{"date_of_extract", 22, 6, fieldString},
			{"time_of_extract", 28, 4, fieldString},
			{"current_file_reference", 32, 7, fieldString},
			{"last_file_reference", 39, 7, fieldString},
			{"update_indicator", 46, 1, fieldChar},
			{"version", 47, 1, fieldChar},
			{"user_start_date", 48, 6, fieldString},
			{"user_end_date", 54, 6, fieldString},
		},
	},
	KindTIPLOCInsert: {
		tag:    KindTIPLOCInsert,
		fields: tiplocInsertFields,
	},
	KindTIPLOCAmend: {
		tag: KindTIPLOCAmend,
		fields: append(append([]fieldSpec{}, tiplocInsertFields...),
			fieldSpec{"new_tiploc", 72, 7, fieldString},
		),
	},
	KindTIPLOCDelete: {
		tag: KindTIPLOCDelete,
		fields: []fieldSpec{
			{"tiploc", 2, 7, fieldString},
		},
	},
	KindAssociation: {
		tag: KindAssociation,
		fields: []fieldSpec{
			{"transaction_type", 2, 1, fieldChar},
			{"main_train_uid", 3, 6, fieldString},
			{"associated_train_uid", 9, 6, fieldString},
			{"association_start_date", 15, 6, fieldString},
			{"association_end_date", 21, 6, fieldString},
			{"association_days", 27, 7, fieldString},
			{"association_category", 34, 2, fieldString},
			{"association_date_indicator", 36, 1, fieldChar},
			{"association_location", 37, 7, fieldString},
			{"base_location_suffix", 44, 1, fieldString},
			{"association_location_suffix", 45, 1, fieldString},
			{"diagram_type", 46, 1, fieldChar},
			{"association_type", 47, 1, fieldChar},
			{"stp_indicator", 79, 1, fieldChar},
		},
	},
	KindBasicSchedule: {
		tag: KindBasicSchedule,
		fields: []fieldSpec{
			{"transaction_type", 2, 1, fieldChar},
			{"train_uid", 3, 6, fieldString},
			{"date_runs_from", 9, 6, fieldString},
			{"date_runs_to", 15, 6, fieldString},
			{"days_run", 21, 7, fieldString},
			{"bank_holiday_running", 28, 1, fieldChar},
			{"train_status", 29, 1, fieldChar},
			{"train_category", 30, 2, fieldString},
			{"train_identity", 32, 4, fieldString},
			{"headcode", 36, 4, fieldString},
			{"course_indicator", 40, 1, fieldChar},
			{"train_service_code", 41, 8, fieldString},
			{"portion_id", 49, 1, fieldChar},
			{"power_type", 50, 3, fieldString},
			{"timing_load", 53, 4, fieldString},
			{"speed", 57, 3, fieldString},
			{"operating_characteristics", 60, 6, fieldString},
			{"seating_class", 66, 1, fieldChar},
			{"sleepers", 67, 1, fieldChar},
			{"reservations", 68, 1, fieldChar},
			{"connection_indicator", 69, 1, fieldChar},
			{"catering_code", 70, 4, fieldString},
			{"service_branding", 74, 4, fieldString},
			{"stp_indicator", 79, 1, fieldChar},
		},
	},
	KindBasicScheduleExtended: {
		tag: KindBasicScheduleExtended,
		fields: []fieldSpec{
			{"traction_class", 2, 4, fieldString},
			{"uic_code", 6, 5, fieldString},
			{"atoc_code", 11, 2, fieldString},
			{"applicable_timetable_code", 13, 1, fieldChar},
		},
	},
	KindLocationOrigin: {
		tag: KindLocationOrigin,
		fields: []fieldSpec{
			{"location", 2, 8, fieldString},
			{"scheduled_departure_time", 10, 5, fieldString},
			{"public_departure_time", 15, 4, fieldString},
			{"platform", 19, 3, fieldString},
			{"line", 22, 3, fieldString},
			{"engineering_allowance", 25, 2, fieldString},
			{"pathing_allowance", 27, 2, fieldString},
			{"activity", 29, 12, fieldString},
			{"performance_allowance", 41, 2, fieldString},
		},
	},
	KindLocationIntermediate: {
		tag: KindLocationIntermediate,
		fields: []fieldSpec{
			{"location", 2, 8, fieldString},
			{"scheduled_arrival_time", 10, 5, fieldString},
			{"scheduled_departure_time", 15, 5, fieldString},
			{"scheduled_pass", 20, 5, fieldString},
			{"public_arrival_time", 25, 4, fieldString},
			{"public_departure_time", 29, 4, fieldString},
			{"platform", 33, 3, fieldString},
			{"line", 36, 3, fieldString},
			{"path", 39, 3, fieldString},
			{"activity", 42, 12, fieldString},
			{"engineering_allowance", 54, 2, fieldString},
			{"pathing_allowance", 56, 2, fieldString},
			{"performance_allowance", 58, 2, fieldString},
		},
	},
	KindChangeEnRoute: {
		tag: KindChangeEnRoute,
		fields: []fieldSpec{
			{"location", 2, 8, fieldString},
			{"train_category", 10, 2, fieldString},
			{"train_identity", 12, 4, fieldString},
			{"headcode", 16, 4, fieldString},
			{"course_indicator", 20, 1, fieldChar},
			{"profit_centre_code", 21, 8, fieldString},
			{"business_sector", 29, 1, fieldChar},
			{"power_type", 30, 3, fieldString},
			{"timing_load", 33, 4, fieldString},
			{"speed", 37, 3, fieldString},
			{"operating_chars", 40, 6, fieldString},
			{"train_class", 46, 1, fieldChar},
			{"sleepers", 47, 1, fieldChar},
			{"reservations", 48, 1, fieldChar},
			{"connect_indicator", 49, 1, fieldChar},
			{"catering_code", 50, 4, fieldString},
			{"service_branding", 54, 4, fieldString},
			{"traction_class", 58, 4, fieldString},
			{"uic_code", 62, 5, fieldString},
			{"retail_train_id", 67, 8, fieldString},
		},
	},
	KindLocationTerminate: {
		tag: KindLocationTerminate,
		fields: []fieldSpec{
			{"location", 2, 8, fieldString},
			{"scheduled_arrival_time", 10, 5, fieldString},
			{"public_arrival_time", 15, 4, fieldString},
			{"platform", 19, 3, fieldString},
			{"path", 22, 3, fieldString},
			{"activity", 25, 12, fieldString},
		},
	},
	KindTrailer: {
		tag:    KindTrailer,
		fields: nil,
	},
}

// tiplocInsertFields is shared between TI and TA, which differ only by
// TA's trailing new_tiploc column.
var tiplocInsertFields = []fieldSpec{
	{"tiploc", 2, 7, fieldString},
	{"capitals_identification", 9, 2, fieldUint},
	{"nlc", 11, 6, fieldUint},
	{"nlc_check_char", 17, 1, fieldChar},
	{"tps_description", 18, 26, fieldString},
	{"stanox", 44, 5, fieldUint},
	{"po_mcp_code", 49, 4, fieldString},
	{"three_alpha_code", 53, 3, fieldString},
	{"nlc_description", 56, 16, fieldString},
}
