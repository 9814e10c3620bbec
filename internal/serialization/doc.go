// Package serialization stores named arrays in SafeTensors archives.
//
//	Archive layout:
//	  [8 bytes: header size N (uint64 LE)]
//	  [N bytes: JSON header, space padded to a multiple of 8]
//	  [data: element buffers, little-endian, back to back]
//
// The header maps every array name to {"dtype", "shape", "data_offsets"}, where
// the offsets are relative to the start of the data section. The optional
// "__metadata__" entry holds string pairs; the writer records a SHA-256 of the
// data section there and the reader verifies it when present.
//
// Example usage:
//
//	err := serialization.WriteFile("arrays.safetensors", map[string]*tensor.RawTensor{"x": raw}, nil)
//	...
//	archive, err := serialization.ReadFile("arrays.safetensors")
//	x := archive.Arrays["x"]
package serialization
