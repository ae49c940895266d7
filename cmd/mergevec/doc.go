// Mergevec combines the .vec sample archives in a directory into a single
// aggregate archive, the same transform as the classic OpenCV mergevec
// tools. It can also print the header and payload digest of a single
// archive with --inspect.
//
// Exit codes:
//
//	0  merge completed (or inspection printed)
//	1  merge failed (no inputs, single input, inconsistent record size, I/O error)
//	2  bad arguments
package main
