// Package vec defines the binary structures and constants of the .vec
// sample archive format used by classifier-training pipelines.
//
// An archive is a 12-byte fixed header followed by a raw payload of
// fixed-size image sample records:
//
//	Bytes  | Field      | Type  | Description
//	-------|------------|-------|-----------------------------------
//	0-3    | TotalCount | int32 | number of sample records
//	4-7    | RecordSize | int32 | bytes per sample (width * height)
//	8-9    | MinValue   | int16 | reserved statistics field
//	10-11  | MaxValue   | int16 | reserved statistics field
//	12-    | payload    | bytes | sample records, uninterpreted
//
// All multi-byte fields are little-endian. The payload is an opaque blob;
// record boundaries inside it are never validated.
//
// Decoding is structural only: header fields are carried as declared, so a
// header with a negative count or size still parses. Consumers decide what
// declared values they accept.
package vec
