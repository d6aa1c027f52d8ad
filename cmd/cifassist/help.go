package main

const helpText = `cifassist - CIF timetable ingest tool

Usage: cifassist [options] <config.toml>

cifassist decodes a CIF (Common Interface File) timetable feed and applies
it to an in-memory schedule database, the same way a planning system
ingests a Network Rail full extract or update feed.

Configuration sections/options:

* default: configuring the input of cifassist
  - path    = file with the CIF feed to ingest ("-" or omitted reads stdin)
  - verbose = log a progress trace every 10,000 records applied

Options:

  -list-tiplocs    print the table of known TIPLOCs after ingest
  -list-schedules  print the table of known schedules after ingest
  -version         print cifassist version and exit
  -help            print this message and exit
`
