package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/busoc/cif/record"
	"github.com/busoc/cif/schedule"
)

const (
	Version   = "0.1.0"
	BuildTime = "2026-07-31 00:00:00"
	Program   = "cifassist"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix(fmt.Sprintf("[%s-%s] ", Program, Version))

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, helpText)
		os.Exit(2)
	}
}

func main() {
	var (
		tlist   = flag.Bool("list-tiplocs", false, "print the TIPLOC table")
		slist   = flag.Bool("list-schedules", false, "print the schedule table")
		version = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Fprintf(os.Stderr, "%s-%s (%s)\n", Program, Version, BuildTime)
		return
	}

	c, err := loadFromConfig(flag.Arg(0))
	if err != nil {
		Exit(err)
	}

	db, err := ingest(c)
	if err != nil {
		Exit(err)
	}

	if *tlist {
		Exit(ListTiplocs(db))
		return
	}
	if *slist {
		Exit(ListSchedules(db))
		return
	}

	log.Printf("extract date/time: %s", db.ExtractDateTime().Format("2006-01-02T15:04:05"))
	log.Printf("tiplocs: %d", len(db.Tiplocs()))
	log.Printf("train uids: %d", len(db.Schedules()))
}

func ingest(c *config) (*schedule.ScheduleDatabase, error) {
	r, err := c.open()
	if err != nil {
		return nil, genericErr(fmt.Sprintf("open feed: %v", err))
	}
	if c.Path != "" && c.Path != "-" {
		defer r.(*os.File).Close()
	}

	file, err := record.ParseCIF(r)
	if err != nil {
		return nil, genericErr(fmt.Sprintf("decode feed: %v", err))
	}
	log.Printf("decoded %d records", len(file.Records))

	db := schedule.New()
	opts := schedule.ApplyOptions{}
	if c.Verbose {
		opts.Tracef = func(format string, args ...interface{}) { log.Printf(format, args...) }
	}
	failed := db.ApplyRecords(file.Records, opts)
	for _, f := range failed {
		log.Printf("record %d: %v", f.Index, f.Err)
	}
	if len(failed) > 0 {
		log.Printf("%d records failed to apply", len(failed))
	}
	return db, nil
}
