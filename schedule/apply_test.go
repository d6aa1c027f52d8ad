package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/busoc/cif/record"
	"github.com/busoc/cif/schedule"
)

func headerRecord(t *testing.T, date, clock string, update byte) record.Record {
	t.Helper()
	return record.Record{
		Kind: record.KindHeader,
		Header: &record.Header{
			DateOfExtract:   date,
			TimeOfExtract:   clock,
			UpdateIndicator: update,
		},
	}
}

func trailerRecord() record.Record {
	return record.Record{Kind: record.KindTrailer}
}

func basicScheduleRecord(uid string, transactionType, stp byte) record.Record {
	return record.Record{
		Kind: record.KindBasicSchedule,
		BasicSchedule: &record.BasicSchedule{
			TransactionType: transactionType,
			TrainUID:        uid,
			DateRunsFrom:    "240601",
			DateRunsTo:      "240601",
			DaysRun:         "1000000",
			TrainStatus:     'P',
			TrainCategory:   "OO",
			TrainIdentity:   "1A04",
			PowerType:       "E",
			TimingLoad:      "",
			Speed:           "100",
			SeatingClass:    ' ',
			Sleepers:        ' ',
			Reservations:    ' ',
			STPIndicator:    stp,
		},
	}
}

func TestApplyMinimalFile(t *testing.T) {
	db := schedule.New()
	failed := db.ApplyRecords([]record.Record{
		headerRecord(t, "010124", "0600", 'U'),
		trailerRecord(),
	}, schedule.ApplyOptions{})

	require.Empty(t, failed)
	assert.Empty(t, db.Tiplocs())
	assert.Empty(t, db.Schedules())
	assert.Equal(t, 2024, db.ExtractDateTime().Year())
}

func TestApplyTiplocLifecycle(t *testing.T) {
	db := schedule.New()
	ti := record.Record{Kind: record.KindTIPLOCInsert, TIPLOCInsert: &record.TIPLOCInsert{
		Tiploc: "WATRLMN", ThreeAlphaCode: "WAT",
	}}
	ta := record.Record{Kind: record.KindTIPLOCAmend, TIPLOCAmend: &record.TIPLOCAmend{
		TIPLOCInsert: record.TIPLOCInsert{Tiploc: "WATRLMN", ThreeAlphaCode: "WAT"},
		NewTiploc:    "WATRLOO",
	}}
	td := record.Record{Kind: record.KindTIPLOCDelete, TIPLOCDelete: &record.TIPLOCDelete{Tiploc: "WATRLOO"}}

	failed := db.ApplyRecords([]record.Record{ti}, schedule.ApplyOptions{})
	require.Empty(t, failed)
	_, ok := db.Tiplocs()["WATRLMN"]
	require.True(t, ok)

	failed = db.ApplyRecords([]record.Record{ta}, schedule.ApplyOptions{})
	require.Empty(t, failed)
	_, ok = db.Tiplocs()["WATRLMN"]
	require.False(t, ok)
	_, ok = db.Tiplocs()["WATRLOO"]
	require.True(t, ok)

	failed = db.ApplyRecords([]record.Record{td}, schedule.ApplyOptions{})
	require.Empty(t, failed)
	assert.Empty(t, db.Tiplocs())
}

func TestApplyNewScheduleBundle(t *testing.T) {
	db := schedule.New()
	records := []record.Record{
		basicScheduleRecord("C11004", 'N', 'P'),
		{Kind: record.KindBasicScheduleExtended, BasicScheduleExtended: &record.BasicScheduleExtended{
			ATOCCode: "SW", ApplicableTimetableCode: 'Y',
		}},
		{Kind: record.KindLocationOrigin, LocationOrigin: &record.LocationOrigin{
			Location: "WATRLMN", ScheduledDepartureTime: "1000 ", PublicDepartureTime: "1000", Platform: "1", Line: "", Activity: "",
		}},
		{Kind: record.KindLocationIntermediate, LocationIntermediate: &record.LocationIntermediate{
			Location: "VAUXHLM", ScheduledArrivalTime: "1003 ", ScheduledDepartureTime: "1004 ", PublicArrivalTime: "1003", PublicDepartureTime: "1004", Platform: "2",
		}},
		{Kind: record.KindLocationTerminate, LocationTerminate: &record.LocationTerminate{
			Location: "CLPHMJ1", ScheduledArrivalTime: "1010H", PublicArrivalTime: "1010", Platform: "5",
		}},
	}

	failed := db.ApplyRecords(records, schedule.ApplyOptions{})
	require.Empty(t, failed)

	schedules := db.Schedules()["C11004"]
	require.Len(t, schedules, 1)

	s := schedules[0]
	require.Len(t, s.Journey, 3)
	assert.Equal(t, "SW", s.ATOCCode)
	assert.True(t, s.SubjectToPerformanceMonitoring)

	origin := s.Journey[0]
	require.NotNil(t, origin.Departure)
	assert.Equal(t, schedule.JourneyTime{Hour: 10, Minute: 0}, *origin.Departure)
	assert.Nil(t, origin.Arrival)

	term := s.Journey[2]
	require.NotNil(t, term.Arrival)
	assert.Equal(t, schedule.JourneyTime{Hour: 10, Minute: 10, Half: true}, *term.Arrival)
	assert.Nil(t, term.Departure)
}

func TestApplyCancellationSingleton(t *testing.T) {
	db := schedule.New()
	records := []record.Record{
		basicScheduleRecord("C11004", 'N', 'P'),
		{Kind: record.KindLocationOrigin, LocationOrigin: &record.LocationOrigin{
			Location: "WATRLMN", ScheduledDepartureTime: "1000 ",
		}},
		{Kind: record.KindLocationTerminate, LocationTerminate: &record.LocationTerminate{
			Location: "CLPHMJ1", ScheduledArrivalTime: "1010 ",
		}},
	}
	require.Empty(t, db.ApplyRecords(records, schedule.ApplyOptions{}))

	cancellation := basicScheduleRecord("C11004", 'N', 'C')
	require.Empty(t, db.ApplyRecords([]record.Record{cancellation}, schedule.ApplyOptions{}))

	schedules := db.Schedules()["C11004"]
	require.Len(t, schedules, 2)
	assert.Equal(t, schedule.STPCancellation, schedules[1].STPIndicator)
	assert.Empty(t, schedules[1].Journey)
}

func TestApplyDeleteSingleton(t *testing.T) {
	db := schedule.New()
	records := []record.Record{
		basicScheduleRecord("C11004", 'N', 'P'),
		{Kind: record.KindLocationOrigin, LocationOrigin: &record.LocationOrigin{Location: "WATRLMN", ScheduledDepartureTime: "1000 "}},
		{Kind: record.KindLocationTerminate, LocationTerminate: &record.LocationTerminate{Location: "CLPHMJ1", ScheduledArrivalTime: "1010 "}},
	}
	require.Empty(t, db.ApplyRecords(records, schedule.ApplyOptions{}))
	require.Len(t, db.Schedules()["C11004"], 1)

	del := basicScheduleRecord("C11004", 'D', 'P')
	require.Empty(t, db.ApplyRecords([]record.Record{del}, schedule.ApplyOptions{}))

	_, ok := db.Schedules()["C11004"]
	assert.False(t, ok)
}

func TestGetCRSFromTiplocFallback(t *testing.T) {
	db := schedule.New()
	failed := db.ApplyRecords([]record.Record{
		{Kind: record.KindTIPLOCInsert, TIPLOCInsert: &record.TIPLOCInsert{Tiploc: "WATRLMN", ThreeAlphaCode: "WAT"}},
		{Kind: record.KindTIPLOCInsert, TIPLOCInsert: &record.TIPLOCInsert{Tiploc: "CLPHMJ", ThreeAlphaCode: "CLJ"}},
	}, schedule.ApplyOptions{})
	require.Empty(t, failed)

	assert.Contains(t, db.GetCRSFromTiploc("CLPHMJ1"), "CLJ")
	assert.Contains(t, db.GetCRSFromTiploc("WATRLMN"), "WAT")
	assert.Empty(t, db.GetCRSFromTiploc("ZZZZZZZ"))
}

func TestDaysRunBitLayout(t *testing.T) {
	monday := basicScheduleRecord("C11004", 'N', 'P')
	monday.BasicSchedule.DaysRun = "1000000"
	sunday := basicScheduleRecord("C22005", 'N', 'P')
	sunday.BasicSchedule.DaysRun = "0000001"

	db := schedule.New()
	records := []record.Record{
		monday,
		{Kind: record.KindLocationOrigin, LocationOrigin: &record.LocationOrigin{Location: "A", ScheduledDepartureTime: "1000 "}},
		{Kind: record.KindLocationTerminate, LocationTerminate: &record.LocationTerminate{Location: "B", ScheduledArrivalTime: "1010 "}},
		sunday,
		{Kind: record.KindLocationOrigin, LocationOrigin: &record.LocationOrigin{Location: "A", ScheduledDepartureTime: "1000 "}},
		{Kind: record.KindLocationTerminate, LocationTerminate: &record.LocationTerminate{Location: "B", ScheduledArrivalTime: "1010 "}},
	}
	require.Empty(t, db.ApplyRecords(records, schedule.ApplyOptions{}))

	assert.True(t, db.Schedules()["C11004"][0].DaysRun.Has(schedule.DayMonday))
	assert.False(t, db.Schedules()["C11004"][0].DaysRun.Has(schedule.DaySunday))
	assert.True(t, db.Schedules()["C22005"][0].DaysRun.Has(schedule.DaySunday))
	assert.False(t, db.Schedules()["C22005"][0].DaysRun.Has(schedule.DayMonday))
}

func TestApplyInvalidTrainCategoryIsLocalError(t *testing.T) {
	db := schedule.New()
	bad := basicScheduleRecord("C99999", 'N', 'P')
	bad.BasicSchedule.TrainCategory = "??"

	records := []record.Record{
		bad,
		{Kind: record.KindLocationOrigin, LocationOrigin: &record.LocationOrigin{Location: "A", ScheduledDepartureTime: "1000 "}},
		{Kind: record.KindLocationTerminate, LocationTerminate: &record.LocationTerminate{Location: "B", ScheduledArrivalTime: "1010 "}},
		basicScheduleRecord("C11004", 'N', 'P'),
		{Kind: record.KindLocationOrigin, LocationOrigin: &record.LocationOrigin{Location: "A", ScheduledDepartureTime: "1000 "}},
		{Kind: record.KindLocationTerminate, LocationTerminate: &record.LocationTerminate{Location: "B", ScheduledArrivalTime: "1010 "}},
	}
	failed := db.ApplyRecords(records, schedule.ApplyOptions{})
	require.Len(t, failed, 1)
	assert.Equal(t, 2, failed[0].Index)

	_, ok := db.Schedules()["C99999"]
	assert.False(t, ok)
	assert.Len(t, db.Schedules()["C11004"], 1)
}
