package main

import (
	"fmt"
	"sort"

	"github.com/busoc/cif/schedule"
)

func ListTiplocs(db *schedule.ScheduleDatabase) error {
	tiplocs := db.Tiplocs()
	keys := make([]string, 0, len(tiplocs))
	for k := range tiplocs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%-8s | %-3s | %s", "TIPLOC", "CRS", "DESCRIPTION")
	fmt.Println()
	for _, k := range keys {
		t := tiplocs[k]
		fmt.Printf("%-8s | %-3s | %s", t.Tiploc, t.CRS, t.Description)
		fmt.Println()
	}
	fmt.Println()
	fmt.Printf("tiplocs total: %d", len(keys))
	fmt.Println()
	return nil
}

func ListSchedules(db *schedule.ScheduleDatabase) error {
	schedules := db.Schedules()
	keys := make([]string, 0, len(schedules))
	for k := range schedules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%-6s | %-3s | %-9s | %-9s | %3s | %s", "UID", "STP", "FROM", "TO", "LOC", "DAYS")
	fmt.Println()
	total := 0
	for _, k := range keys {
		for _, s := range schedules[k] {
			fmt.Printf("%-6s | %-3d | %-9s | %-9s | %3d | %s",
				s.TrainUID, s.STPIndicator,
				s.DateRunsFrom.Format("2006-01-02"), s.DateRunsTo.Format("2006-01-02"),
				len(s.Journey), s.DaysRun)
			fmt.Println()
			total++
		}
	}
	fmt.Println()
	fmt.Printf("train_uids total: %d, schedules total: %d", len(keys), total)
	fmt.Println()
	return nil
}
