// Package vecmerge concatenates .vec sample archives into a single
// aggregate archive.
//
// A .vec archive is a binary container of fixed-size image sample records
// used by classifier-training pipelines (see the vec package for the exact
// layout). Merging validates that every input declares the same per-record
// size, sums the declared record counts, then streams every input's payload
// into the output under a freshly computed header with zeroed statistics
// fields.
//
// # Basic Usage
//
//	summary, err := vecmerge.Merge("./samples", "aggregate.vec")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("merged %d samples of %d bytes each\n",
//	    summary.TotalCount, summary.RecordSize)
//
// Failure modes are exposed as sentinel errors in the errs package and can
// be matched with errors.Is:
//
//	_, err := vecmerge.Merge(dir, out)
//	if errors.Is(err, errs.ErrInconsistentRecordSize) {
//	    // one of the inputs was produced with different sample dimensions
//	}
//
// Merging is all-or-nothing: inputs are validated before any byte is
// written, and the output is written to a temporary file that is renamed
// into place on success, so a failed merge leaves nothing at the output
// path. WithKeepPartialOutput restores the direct-write behavior of the
// classic merge tools, where a mid-write failure leaves partial output on
// disk.
package vecmerge
