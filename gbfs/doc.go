/*
Package gbfs loads bike-share station lists and indexes them by short name.

The station document follows the GBFS station_information layout:

	{ "data": { "stations": [ {"short_name": "A32000", "lon": -71.09, "lat": 42.36, ...} ] } }

Coordinates and identifiers are accepted as JSON numbers or strings. No
other validation is performed: a coordinate that cannot be read is left at 0.

# Basic Usage

	index, err := gbfs.NewStationIndexFromBytes(body)
	if err != nil {
	    log.Fatal(err)
	}
	st, ok := index.Get("A32000")

Fetch from a URL or file path:

	index, err := gbfs.Fetch(ctx, internal.NewFetcher(time.Minute), "stations.json")

# Caching

The parsed index can be written to disk with SerializeIndexToFile and read
back with DeserializeIndexFromFile to skip the network on restarts.
*/
package gbfs
