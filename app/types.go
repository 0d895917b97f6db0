package app

// BType defines the type of value stored in BNode.
type BType int

const (
	BString BType = iota
	BInt
	BList
	BDict
)

// ByteRange identifies the exact span of bytes that encoded one value in the
// original buffer, including the value's own framing. Start is inclusive,
// End is exclusive.
type ByteRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// Slice returns the bytes of the range as a view into data, no copy.
func (r ByteRange) Slice(data []byte) []byte {
	return data[r.Start:r.End]
}

// DictEntry is one key/value pair of a Bencode dictionary, in the order it
// appeared in the input.
type DictEntry struct {
	Key   string
	Value *BNode
}

// BNode represents a self-referencing structure to hold Bencode values.
// Every node records the byte range it was decoded from.
type BNode struct {
	Type  BType
	Str   string
	Int   int64
	List  []*BNode
	Dict  []DictEntry
	Range ByteRange
}

// Lookup returns the value stored under key in a dictionary node, or nil if
// the key is absent or the node is not a dictionary.
func (n *BNode) Lookup(key string) *BNode {
	if n == nil || n.Type != BDict {
		return nil
	}
	for _, e := range n.Dict {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// ParseResult pairs a decoded value with the byte range of the "info"
// dictionary's value, if one was seen during the walk. InfoRange is kept
// outside the node tree so an unrelated key literally named "info" inside
// the tree cannot overwrite it.
type ParseResult struct {
	Node      *BNode
	InfoRange *ByteRange
}
