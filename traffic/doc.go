// Package traffic counts trips per station and narrows trips to a time of day.
//
// ComputeStationTraffic is a single pass over the trips grouping them by
// start station (departures) and end station (arrivals). It returns fresh
// StationTraffic values in station order and never touches its inputs, so
// the same station slice can be reused for every filter change.
//
// FilterTripsByTime keeps trips that start or end within WindowMinutes of a
// minute of the day. The comparison is on wall-clock minutes only: there is
// no wraparound at midnight, so 00:05 and 23:50 are 1425 minutes apart.
//
//	stations := index.All()
//	all := traffic.ComputeStationTraffic(stations, trips)
//	morning := traffic.ComputeStationTraffic(stations, traffic.FilterTripsByTime(trips, 8*60))
package traffic
