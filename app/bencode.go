package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// decoder walks a Bencode buffer once, left to right. The buffer is never
// copied; every decoded node records the range of bytes it came from. The
// first "info" key seen anywhere during the walk records its value's range.
type decoder struct {
	data []byte
	pos  int
	info *ByteRange
}

// DecodeBencode decodes one complete Bencode value from the start of data
// and returns it together with the byte range of the "info" dictionary's
// value, if any dictionary in the tree carried that key.
func DecodeBencode(data []byte) (ParseResult, error) {
	d := &decoder{data: data}
	node, err := d.decodeValue()
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Node: node, InfoRange: d.info}, nil
}

// DecodeBencodeAt decodes one self-contained Bencode value starting at
// offset and returns it along with the offset of the first byte after it.
// Ranges on the returned nodes are absolute offsets into data.
func DecodeBencodeAt(data []byte, offset int) (*BNode, int, error) {
	d := &decoder{data: data, pos: offset}
	node, err := d.decodeValue()
	if err != nil {
		return nil, 0, err
	}
	return node, d.pos, nil
}

func (d *decoder) decodeValue() (*BNode, error) {
	if d.pos >= len(d.data) {
		return nil, &TruncatedInputError{Offset: d.pos}
	}
	switch ch := d.data[d.pos]; {
	case ch == 'd':
		return d.decodeDict()
	case ch == 'l':
		return d.decodeList()
	case ch == 'i':
		return d.decodeInt()
	case ch >= '0' && ch <= '9':
		return d.decodeString()
	default:
		return nil, &MalformedInputError{Offset: d.pos, Byte: ch}
	}
}

// decodeString parses <length>:<bytes>. The length is scanned byte-for-byte
// so binary payloads earlier in the buffer cannot perturb offset arithmetic.
func (d *decoder) decodeString() (*BNode, error) {
	start := d.pos
	i := d.pos
	for i < len(d.data) && d.data[i] >= '0' && d.data[i] <= '9' {
		i++
	}
	if i >= len(d.data) {
		return nil, &TruncatedInputError{Offset: i}
	}
	if i == d.pos || d.data[i] != ':' {
		return nil, &MalformedInputError{Offset: i, Byte: d.data[i]}
	}

	length, err := strconv.Atoi(string(d.data[start:i]))
	if err != nil {
		// Only reachable when the digit run overflows int.
		return nil, &MalformedInputError{Offset: start, Byte: d.data[start]}
	}

	contentStart := i + 1
	// Compare by subtraction so a huge declared length cannot overflow the
	// end offset into a negative value.
	if length > len(d.data)-contentStart {
		return nil, &TruncatedInputError{Offset: len(d.data)}
	}
	end := contentStart + length
	d.pos = end

	return &BNode{
		Type:  BString,
		Str:   string(d.data[contentStart:end]),
		Range: ByteRange{Start: start, End: end},
	}, nil
}

// decodeInt parses i<digits>e with an optional sign. Values must fit in 64
// bits; anything larger is reported as malformed rather than wrapped.
func (d *decoder) decodeInt() (*BNode, error) {
	start := d.pos
	d.pos++ // 'i'

	j := d.pos
	if j < len(d.data) && d.data[j] == '-' {
		j++
	}
	digits := j
	for j < len(d.data) && d.data[j] >= '0' && d.data[j] <= '9' {
		j++
	}
	if j >= len(d.data) {
		return nil, &TruncatedInputError{Offset: j}
	}
	if j == digits || d.data[j] != 'e' {
		return nil, &MalformedInputError{Offset: j, Byte: d.data[j]}
	}

	v, err := strconv.ParseInt(string(d.data[d.pos:j]), 10, 64)
	if err != nil {
		// Only reachable when the value does not fit in 64 bits.
		return nil, &MalformedInputError{Offset: d.pos, Byte: d.data[d.pos]}
	}
	d.pos = j + 1

	return &BNode{
		Type:  BInt,
		Int:   v,
		Range: ByteRange{Start: start, End: d.pos},
	}, nil
}

func (d *decoder) decodeList() (*BNode, error) {
	start := d.pos
	d.pos++ // 'l'

	node := &BNode{Type: BList, List: make([]*BNode, 0)}
	for {
		if d.pos >= len(d.data) {
			return nil, &TruncatedInputError{Offset: d.pos}
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			break
		}
		item, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		node.List = append(node.List, item)
	}
	node.Range = ByteRange{Start: start, End: d.pos}

	return node, nil
}

// decodeDict parses d<key><value>...e, preserving pair order as read. When a
// key equals "info" its value's range is recorded on the decoder, first
// occurrence wins, so a later key of the same name cannot overwrite it.
func (d *decoder) decodeDict() (*BNode, error) {
	start := d.pos
	d.pos++ // 'd'

	node := &BNode{Type: BDict, Dict: make([]DictEntry, 0)}
	for {
		if d.pos >= len(d.data) {
			return nil, &TruncatedInputError{Offset: d.pos}
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			break
		}
		key, err := d.decodeString()
		if err != nil {
			return nil, err
		}
		value, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		if key.Str == "info" && d.info == nil {
			r := value.Range
			d.info = &r
		}
		node.Dict = append(node.Dict, DictEntry{Key: key.Str, Value: value})
	}
	node.Range = ByteRange{Start: start, End: d.pos}

	return node, nil
}

// MarshalBNode encodes a BNode into JSON format, keeping dictionary entries
// in the order they were decoded.
func MarshalBNode(node *BNode) ([]byte, error) {
	switch node.Type {
	case BString:
		return json.Marshal(node.Str)

	case BInt:
		return json.Marshal(node.Int)

	case BList:
		encodedList := make([]json.RawMessage, 0, len(node.List))
		for _, item := range node.List {
			encodedItem, err := MarshalBNode(item)
			if err != nil {
				return nil, err
			}
			encodedList = append(encodedList, encodedItem)
		}
		return json.Marshal(encodedList)

	case BDict:
		var b bytes.Buffer
		b.WriteByte('{')
		for i, entry := range node.Dict {
			if i > 0 {
				b.WriteByte(',')
			}
			encodedKey, err := json.Marshal(entry.Key)
			if err != nil {
				return nil, err
			}
			b.Write(encodedKey)
			b.WriteByte(':')
			encodedValue, err := MarshalBNode(entry.Value)
			if err != nil {
				return nil, err
			}
			b.Write(encodedValue)
		}
		b.WriteByte('}')
		return b.Bytes(), nil
	}

	return nil, fmt.Errorf("unknown node type: %d", node.Type)
}

// EncodeBNode encodes a BNode back into Bencode based on its type.
func EncodeBNode(node *BNode) []byte {
	switch node.Type {
	case BString:
		return EncodeBencodeString(node.Str)
	case BInt:
		return EncodeBencodeInt(node.Int)
	case BList:
		return EncodeBencodeList(node)
	case BDict:
		return EncodeBencodeDict(node)
	}
	return nil
}

// EncodeBencodeString encodes a string into bencode format.
func EncodeBencodeString(s string) []byte {
	return []byte(fmt.Sprintf("%d:%s", len(s), s))
}

// EncodeBencodeInt encodes an integer into bencode format.
func EncodeBencodeInt(i int64) []byte {
	return []byte(fmt.Sprintf("i%de", i))
}

// EncodeBencodeList encodes a list of BNodes into bencode format.
func EncodeBencodeList(node *BNode) []byte {
	encodedList := []byte("l")
	for _, item := range node.List {
		encodedList = append(encodedList, EncodeBNode(item)...)
	}
	encodedList = append(encodedList, 'e')
	return encodedList
}

// EncodeBencodeDict encodes a dictionary of BNodes into bencode format,
// writing entries in stored order rather than re-sorting, so a decoded
// dictionary re-encodes to its original bytes.
func EncodeBencodeDict(node *BNode) []byte {
	encodedDict := []byte("d")
	for _, entry := range node.Dict {
		encodedDict = append(encodedDict, EncodeBencodeString(entry.Key)...)
		encodedDict = append(encodedDict, EncodeBNode(entry.Value)...)
	}
	encodedDict = append(encodedDict, 'e')
	return encodedDict
}
