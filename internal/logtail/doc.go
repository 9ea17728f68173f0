// Package logtail reads the end of roster's glog files for the -logs flag.
//
// Read walks back from the end of the file in 64 KiB steps until it has N
// lines, so tailing a large log never reads the whole file. Parse and Filter understand glog's line header
//
//	Lmmdd hh:mm:ss.uuuuuu threadid file:line] msg
//
// and let callers keep only warnings and errors. Lines without a header
// (the file banner, wrapped messages) are passed through with the entry
// that precedes them.
package logtail
