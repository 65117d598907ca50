// Package fetch turns a request for one country (or country pair) and a time
// window into the rows of a result table.
//
// A Fetcher issues its upstream queries strictly one after another, merges
// the parsed series and applies the completeness and settledness rules of
// each table. A nil slice with a nil error is the absent result: the platform
// had nothing usable for the request. Everything else that goes wrong is a
// hard failure returned as an error and reported to the monitor.
package fetch
