// Package bigfiles implements the scan pipeline.
//
// It walks a directory tree using fastwalk for parallel traversal,
// filters regular files against a minimum size threshold, and collects
// the matches together with counts of everything scanned.
package bigfiles
