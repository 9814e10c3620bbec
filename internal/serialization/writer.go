package serialization

import (
	"bufio"
	"bytes"
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

// Write stores arrays in SafeTensors layout. Arrays are laid out in
// alphabetical order by name; metadata may be nil. The checksum of the data
// section is added to the metadata under ChecksumKey.
func Write(w io.Writer, arrays map[string]*tensor.RawTensor, metadata map[string]string) error {
	names := slices.Sorted(maps.Keys(arrays))

	header := make(map[string]any, len(names)+1)
	sum := newChecksummer()
	payloads := make([][]byte, len(names))
	var offset int64
	for i, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
		raw := arrays[name]
		if raw == nil {
			return errors.Errorf("array %q is nil", name)
		}
		dtype, err := dtypeName(raw.DType())
		if err != nil {
			return errors.WithMessagef(err, "array %q", name)
		}

		data := raw.Data()
		if !hostLittleEndian {
			data = bytes.Clone(data)
			swapBytes(data, raw.DType().Size())
		}
		payloads[i] = data
		sum.add(data)

		shape := make([]int64, raw.Rank())
		for d, dim := range raw.Shape() {
			shape[d] = int64(dim)
		}
		size := int64(len(data))
		header[name] = Entry{DType: dtype, Shape: shape, DataOffsets: [2]int64{offset, offset + size}}
		offset += size
	}

	meta := make(map[string]string, len(metadata)+1)
	maps.Copy(meta, metadata)
	meta[ChecksumKey] = sum.String()
	header[MetadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	if pad := len(headerJSON) % HeaderAlign; pad != 0 {
		headerJSON = append(headerJSON, bytes.Repeat([]byte{' '}, HeaderAlign-pad)...)
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "failed to write header size")
	}
	if _, err := bw.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for i, data := range payloads {
		if _, err := bw.Write(data); err != nil {
			return errors.Wrapf(err, "failed to write array %q", names[i])
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush archive")
	}
	klog.V(1).Infof("wrote %d array(s), %d data bytes", len(names), offset)
	return nil
}

// WriteFile stores arrays in a new SafeTensors file at path.
func WriteFile(path string, arrays map[string]*tensor.RawTensor, metadata map[string]string) (err error) {
	//nolint:gosec // G304: the path is chosen by the caller.
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "failed to close file")
		}
	}()
	return Write(file, arrays, metadata)
}
