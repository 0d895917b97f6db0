package app

import (
	"encoding/hex"
	"net/url"
	"strings"
)

// MagnetMetaInfo represents metadata for a magnet link.
type MagnetMetaInfo struct {
	TrackerUrls []string
	InfoHash    string
	FileName    string
}

// FormatMagnetLink renders a magnet link for the given torrent metadata.
// fallbackName is used as the display name when the torrent carries none.
// The infohash is the lowercase hex form of the 20-byte digest; the display
// name and tracker URLs are percent-encoded.
func FormatMagnetLink(info MetaInfo, fallbackName string) string {
	var b strings.Builder
	b.WriteString("magnet:?xt=urn:btih:")
	b.WriteString(hex.EncodeToString(info.InfoHash))

	name := info.Name
	if name == "" {
		name = fallbackName
	}
	if name != "" {
		b.WriteString("&dn=")
		b.WriteString(url.QueryEscape(name))
	}

	for _, tracker := range trackerList(info) {
		b.WriteString("&tr=")
		b.WriteString(url.QueryEscape(tracker))
	}

	return b.String()
}

// trackerList flattens the announce URL and announce-list tiers into one
// de-duplicated list, announce first.
func trackerList(info MetaInfo) []string {
	seen := make(map[string]bool)
	trackers := make([]string, 0)
	if info.TrackerUrl != "" {
		seen[info.TrackerUrl] = true
		trackers = append(trackers, info.TrackerUrl)
	}
	for _, tier := range info.TrackerTiers {
		for _, tracker := range tier {
			if tracker == "" || seen[tracker] {
				continue
			}
			seen[tracker] = true
			trackers = append(trackers, tracker)
		}
	}
	return trackers
}

// ParseMagnetLink parses a magnet link to a MagnetMetaInfo object.
func ParseMagnetLink(magnetLink string) (MagnetMetaInfo, error) {
	magnetLink = strings.TrimPrefix(magnetLink, "magnet:?")

	parts := strings.Split(magnetLink, "&")

	result := MagnetMetaInfo{}

	for _, part := range parts {
		if strings.HasPrefix(part, "xt=urn:btih:") {
			result.InfoHash = strings.TrimPrefix(part, "xt=urn:btih:")
		} else if strings.HasPrefix(part, "tr=") {
			tracker, err := url.QueryUnescape(strings.TrimPrefix(part, "tr="))
			if err != nil {
				return MagnetMetaInfo{}, err
			}
			result.TrackerUrls = append(result.TrackerUrls, tracker)
		} else if strings.HasPrefix(part, "dn=") {
			name, err := url.QueryUnescape(strings.TrimPrefix(part, "dn="))
			if err != nil {
				return MagnetMetaInfo{}, err
			}
			result.FileName = name
		}
	}

	return result, nil
}
