package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/numpy/internal/tensor"
)

// Archive holds the arrays and metadata read from a SafeTensors archive.
type Archive struct {
	Arrays   map[string]*tensor.RawTensor
	Metadata map[string]string
}

// Names returns the array names in alphabetical order.
func (a *Archive) Names() []string {
	return slices.Sorted(maps.Keys(a.Arrays))
}

// Read decodes a whole archive from r. The header is validated before any data
// is read; a stored checksum is verified.
func Read(r io.Reader) (*Archive, error) {
	br := bufio.NewReader(r)

	var headerSize uint64
	if err := binary.Read(br, binary.LittleEndian, &headerSize); err != nil {
		return nil, errors.Wrapf(ErrFormat, "failed to read header size: %v", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, errors.Wrapf(ErrHeaderTooLarge, "%d bytes", headerSize)
	}
	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(br, headerJSON); err != nil {
		return nil, errors.Wrapf(ErrFormat, "failed to read header: %v", err)
	}

	entries, metadata, err := parseHeader(headerJSON)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read array data")
	}
	if err := ValidateOffsets(entries, int64(len(data))); err != nil {
		return nil, err
	}
	if stored, found := metadata[ChecksumKey]; found {
		if err := ValidateChecksum(data, stored); err != nil {
			return nil, err
		}
	}

	archive := &Archive{
		Arrays:   make(map[string]*tensor.RawTensor, len(entries)),
		Metadata: metadata,
	}
	for name, e := range entries {
		dt, shape, err := ValidateEntry(name, e)
		if err != nil {
			return nil, err
		}
		raw, err := tensor.NewRaw(shape, dt)
		if err != nil {
			return nil, errors.WithMessagef(err, "array %q", name)
		}
		buf := raw.Data()
		copy(buf, data[e.DataOffsets[0]:e.DataOffsets[1]])
		if !hostLittleEndian {
			swapBytes(buf, dt.Size())
		}
		archive.Arrays[name] = raw
	}
	klog.V(1).Infof("read %d array(s), %d data bytes", len(entries), len(data))
	return archive, nil
}

// ReadFile decodes the archive stored at path.
func ReadFile(path string) (*Archive, error) {
	//nolint:gosec // G304: the path is chosen by the caller.
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = file.Close() }()
	return Read(file)
}

// parseHeader splits the JSON header into array entries and metadata.
func parseHeader(headerJSON []byte) (map[string]Entry, map[string]string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &fields); err != nil {
		return nil, nil, errors.Wrapf(ErrFormat, "failed to parse header JSON: %v", err)
	}

	metadata := map[string]string{}
	if rawMeta, found := fields[MetadataKey]; found {
		if err := json.Unmarshal(rawMeta, &metadata); err != nil {
			return nil, nil, errors.Wrapf(ErrFormat, "metadata must map strings to strings: %v", err)
		}
		delete(fields, MetadataKey)
	}

	entries := make(map[string]Entry, len(fields))
	for name, rawEntry := range fields {
		if err := ValidateName(name); err != nil {
			return nil, nil, err
		}
		var e Entry
		if err := json.Unmarshal(rawEntry, &e); err != nil {
			return nil, nil, errors.Wrapf(ErrFormat, "array %q: %v", name, err)
		}
		entries[name] = e
	}
	return entries, metadata, nil
}
