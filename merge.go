package vecmerge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/arloliu/vecmerge/errs"
	"github.com/arloliu/vecmerge/internal/options"
	"github.com/arloliu/vecmerge/internal/pool"
	"github.com/arloliu/vecmerge/vec"
)

// InputInfo records one input archive's contribution to a merge.
type InputInfo struct {
	// Path is the input file path as discovered.
	Path string
	// TotalCount is the record count the input's header declares.
	TotalCount int32
	// PayloadBytes is the input's size on disk minus the header.
	PayloadBytes int64
}

// Summary describes a completed merge.
type Summary struct {
	// Output is the path of the merged archive.
	Output string
	// TotalCount is the sum of the declared record counts of all inputs.
	TotalCount int32
	// RecordSize is the common record size shared by all inputs.
	RecordSize int32
	// BytesWritten is the total number of bytes written, header included.
	BytesWritten int64
	// Inputs lists the merged files in the order their payloads were
	// concatenated.
	Inputs []InputInfo
}

// session tracks the transient state of a single merge invocation: the
// discovered file list, the reference record size established by the first
// file, and the running count sum.
type session struct {
	files      []string
	recordSize int32
	totalCount int32
	inputs     []InputInfo
}

// Merge combines every sample archive in dir into a single archive at out.
//
// Files directly inside dir whose name ends with the archive extension are
// merged; there is no recursion. Discovered files are sorted by name before
// processing so merges are reproducible across platforms; the archive format
// itself imposes no ordering.
//
// Validation happens before any byte is written: at least two inputs must be
// present and all of them must declare the record size of the first input.
// The output header carries the summed record count, the common record size,
// and zeroed statistics fields; payloads are copied verbatim, in order.
//
// Header fields are trusted as declared. A negative record count is summed
// uninspected; only a non-positive record size on the first input is
// rejected, since the consistency check would be meaningless without a
// usable reference value.
//
// Returns:
//   - *Summary: Totals and per-input accounting for the completed merge
//   - error: One of the errs sentinels, or a wrapped I/O error naming the
//     failing file
func Merge(dir string, out string, opts ...MergeOption) (*Summary, error) {
	cfg := newMergeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	sess, err := scan(dir, cfg.extension)
	if err != nil {
		return nil, err
	}

	return sess.write(out, cfg)
}

// scan discovers the input files and runs the validation and accounting
// pass. It returns a session ready for the write pass, or the first
// validation or I/O error encountered.
func scan(dir string, ext string) (*session, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat input directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", errs.ErrNotDirectory, dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil, fmt.Errorf("list input directory %s: %w", dir, err)
	}
	sort.Strings(files)

	switch len(files) {
	case 0:
		return nil, fmt.Errorf("%w: no %s files in %s", errs.ErrNoInputFiles, ext, dir)
	case 1:
		return nil, fmt.Errorf("%w: %s is the only %s file in %s", errs.ErrSingleInputFile, filepath.Base(files[0]), ext, dir)
	}

	sess := &session{
		files:  files,
		inputs: make([]InputInfo, 0, len(files)),
	}

	for i, path := range files {
		header, payloadBytes, err := readFileHeader(path)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			if header.RecordSize <= 0 {
				return nil, fmt.Errorf("%w: %s declares record size %d", errs.ErrInvalidRecordSize, path, header.RecordSize)
			}
			sess.recordSize = header.RecordSize
		} else if header.RecordSize != sess.recordSize {
			return nil, fmt.Errorf("%w: %s declares %d, previous files declare %d",
				errs.ErrInconsistentRecordSize, path, header.RecordSize, sess.recordSize)
		}

		sess.totalCount += header.TotalCount
		sess.inputs = append(sess.inputs, InputInfo{
			Path:         path,
			TotalCount:   header.TotalCount,
			PayloadBytes: payloadBytes,
		})
	}

	return sess, nil
}

// readFileHeader opens path just long enough to decode its header and
// measure its payload.
func readFileHeader(path string) (vec.Header, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return vec.Header{}, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	header, err := vec.ReadHeader(f)
	if err != nil {
		return vec.Header{}, 0, fmt.Errorf("read header of %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		return vec.Header{}, 0, fmt.Errorf("stat %s: %w", path, err)
	}

	return header, info.Size() - vec.HeaderSize, nil
}

// write runs the write pass for a validated session.
//
// Unless the config keeps partial output, the merge goes to a temporary file
// next to out that is renamed into place on success and removed on failure.
func (s *session) write(out string, cfg *mergeConfig) (*Summary, error) {
	target := out
	if !cfg.keepPartialOutput {
		target = out + ".tmp"
	}

	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", target, err)
	}

	written, err := s.writeTo(f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output %s: %w", target, closeErr)
	}
	if err != nil {
		if !cfg.keepPartialOutput {
			os.Remove(target)
		}

		return nil, err
	}

	if !cfg.keepPartialOutput {
		if err := os.Rename(target, out); err != nil {
			os.Remove(target)
			return nil, fmt.Errorf("rename output to %s: %w", out, err)
		}
	}

	return &Summary{
		Output:       out,
		TotalCount:   s.totalCount,
		RecordSize:   s.recordSize,
		BytesWritten: written,
		Inputs:       s.inputs,
	}, nil
}

// writeTo writes the merged header and the concatenated payloads to w,
// visiting the inputs in the same order the scan pass used.
func (s *session) writeTo(w io.Writer) (int64, error) {
	header := vec.Header{
		TotalCount: s.totalCount,
		RecordSize: s.recordSize,
	}

	n, err := w.Write(header.Bytes())
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("write header: %w", err)
	}

	buf := pool.GetCopyBuffer()
	defer pool.PutCopyBuffer(buf)

	for _, path := range s.files {
		copied, err := appendPayload(w, path, *buf)
		written += copied
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// appendPayload streams the bytes of path after the header into w.
func appendPayload(w io.Writer, path string, buf []byte) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Seek(vec.HeaderSize, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek past header of %s: %w", path, err)
	}

	copied, err := io.CopyBuffer(w, f, buf)
	if err != nil {
		return copied, fmt.Errorf("copy payload of %s: %w", path, err)
	}

	return copied, nil
}
