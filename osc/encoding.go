package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

////
// De/Encoding functions
////

// parseBlob parses an OSC blob from the blob byte array. Padding bytes are
// consumed but not returned.
func parseBlob(data []byte) ([]byte, int, error) {
	if len(data) < bit32Size {
		return nil, 0, fmt.Errorf("parseBlob: %w", io.ErrUnexpectedEOF)
	}

	// First, get the length
	blobLen := int(binary.BigEndian.Uint32(data[:bit32Size]))
	n := bit32Size + blobLen
	data = data[bit32Size:]

	if blobLen < 0 || blobLen > len(data) {
		return nil, 0, fmt.Errorf("parseBlob: invalid blob length %d", blobLen)
	}

	n += padBytesNeeded(n)
	if n > len(data)+bit32Size {
		return nil, 0, fmt.Errorf("parseBlob: missing padding for blob of length %d", blobLen)
	}

	return data[:blobLen], n, nil
}

// writeBlob writes the data byte array as an OSC blob into b. If the length
// of data isn't 32-bit aligned, zeroed padding bytes are added.
func writeBlob(data []byte, b []byte) int {
	// Add the size of the blob
	binary.BigEndian.PutUint32(b[:bit32Size], uint32(len(data)))
	n := bit32Size

	// Write the data
	n += copy(b[n:], data)

	end := n + padBytesNeeded(n)
	clear(b[n:end])
	return end
}

// blobSize is the encoded size of a blob of length l.
func blobSize(l int) int {
	return bit32Size + l + padBytesNeeded(l)
}

// parsePaddedString reads a padded string from the given slice and returns the string and the number of bytes read.
func parsePaddedString(data []byte) (string, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", 0, fmt.Errorf("parsePaddedString: %w", io.EOF)
	}

	n := pos + 1 + padBytesNeeded(pos+1)
	if n > len(data) {
		return "", 0, fmt.Errorf("parsePaddedString: %w", io.ErrUnexpectedEOF)
	}

	str := data[:pos]

	return *(*string)(unsafe.Pointer(&str)), n, nil
}

// writePaddedString writes a null terminated string with zeroed padding bytes to b.
// Returns the number of written bytes.
func writePaddedString(str string, b []byte) int {
	n := copy(b, str)

	end := n + 1 + padBytesNeeded(n+1)
	clear(b[n:end])
	return end
}

// paddedStringSize is the encoded size of str, including the terminator and padding.
func paddedStringSize(str string) int {
	return len(str) + 1 + padBytesNeeded(len(str)+1)
}

// writeTypeTags writes a typetag string to b.
func writeTypeTags(elems []interface{}, b []byte) (int, error) {
	b[0] = ','
	n := 1
	for _, elem := range elems {
		s := ToTypeTag(elem)
		if s == TypeInvalid {
			return n, fmt.Errorf("writeTypeTags: unsupported type: %T", elem)
		}
		b[n] = byte(s)
		n++
	}

	end := n + 1 + padBytesNeeded(n+1)
	clear(b[n:end])
	return end, nil
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
