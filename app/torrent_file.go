package app

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/zeebo/bencode"
)

// MetaInfo holds all metadata related information for the given torrent.
// InfoHash is computed over the info dictionary's raw bytes as they appear
// in the file, never over a re-serialization.
type MetaInfo struct {
	TrackerUrl   string
	TrackerTiers [][]string
	Name         string
	Length       int64
	PieceLength  int64
	InfoHash     []byte
}

// torrentFields is the struct-tag view of a torrent file used for display
// metadata. Decoding it is best-effort; the infohash never depends on it.
type torrentFields struct {
	Announce     string     `bencode:"announce"`
	AnnounceList [][]string `bencode:"announce-list"`
	Info         struct {
		Name        string `bencode:"name"`
		Length      int64  `bencode:"length"`
		PieceLength int64  `bencode:"piece length"`
	} `bencode:"info"`
}

// CalculateInfoHash calculates the SHA1 hash of the raw bytes of the info
// dictionary within data.
func CalculateInfoHash(data []byte) ([]byte, error) {
	r, err := InfoRange(data)
	if err != nil {
		return nil, err
	}
	h := sha1.Sum(r.Slice(data))
	return h[:], nil
}

// ParseTorrent parses raw torrent file contents into a MetaInfo object.
func ParseTorrent(data []byte) (MetaInfo, error) {
	infoHash, err := CalculateInfoHash(data)
	if err != nil {
		return MetaInfo{}, err
	}

	result := MetaInfo{InfoHash: infoHash}

	// Display fields are decoded separately; a buffer the fallback scan had
	// to rescue may not unmarshal cleanly, and that is fine.
	var fields torrentFields
	if err := bencode.NewDecoder(bytes.NewReader(data)).Decode(&fields); err == nil {
		result.TrackerUrl = fields.Announce
		result.TrackerTiers = fields.AnnounceList
		result.Name = fields.Info.Name
		result.Length = fields.Info.Length
		result.PieceLength = fields.Info.PieceLength
	}

	return result, nil
}

// ParseTorrentFile parses a torrent file to a MetaInfo object.
func ParseTorrentFile(filePath string) (MetaInfo, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return MetaInfo{}, fmt.Errorf("failed to read torrent file: %v", err)
	}

	return ParseTorrent(file)
}
