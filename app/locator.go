package app

import "bytes"

// infoKeyToken is the Bencode encoding of the 4-character key "info".
var infoKeyToken = []byte("4:info")

// FindInfoRange scans data for the literal encoded "info" key and parses the
// value that follows it. It is the fallback for buffers whose outer shape the
// structured walk could not handle, e.g. a top-level value that is not a
// dictionary. A plain linear search is enough here; metadata files are small.
//
// First occurrence wins. The scan can mis-fire only when the 6-byte token
// appears inside unrelated string content and happens to be followed by a
// syntactically valid value; that risk is accepted.
func FindInfoRange(data []byte) (ByteRange, error) {
	i := bytes.Index(data, infoKeyToken)
	if i < 0 {
		return ByteRange{}, ErrInfoNotFound
	}

	node, _, err := DecodeBencodeAt(data, i+len(infoKeyToken))
	if err != nil {
		return ByteRange{}, ErrInfoNotFound
	}
	return node.Range, nil
}

// InfoRange locates the raw byte range of the info dictionary within data,
// trying the structured decode first and falling back to the literal scan.
func InfoRange(data []byte) (ByteRange, error) {
	result, err := DecodeBencode(data)
	if err == nil && result.InfoRange != nil {
		return *result.InfoRange, nil
	}
	return FindInfoRange(data)
}
