// Package trips reads bike-share trip histories from CSV.
//
// Columns are located by header name, so extra or reordered columns are
// fine. Only start_station_id, end_station_id, started_at and ended_at are
// required. Rows are not validated: an unknown station id is kept as is and
// an unparsable timestamp is left as the zero time.
package trips
