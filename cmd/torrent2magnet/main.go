package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	. "github.com/MalakaDeSilva/torrent-to-magnet/app"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  torrent2magnet decode <bencoded-value>")
	fmt.Fprintln(os.Stderr, "  torrent2magnet info <torrent-file>")
	fmt.Fprintln(os.Stderr, "  torrent2magnet magnet <torrent-file> [display-name]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}
	command := os.Args[1]

	switch command {
	case "decode":
		result, err := DecodeBencode([]byte(os.Args[2]))
		if err != nil {
			log.Fatalf("Failed to decode bencoded value: %v", err)
		}

		// Marshal the decoded value to JSON
		jsonOutput, err := MarshalBNode(result.Node)
		if err != nil {
			log.Fatalf("Failed to marshal decoded value: %v", err)
		}

		fmt.Println(string(jsonOutput))

	case "info":
		torrentFilePath := os.Args[2]

		metaInfo, err := ParseTorrentFile(torrentFilePath)
		if err != nil {
			log.Fatalf("Failed to parse torrent file: %v", err)
		}

		fmt.Println("Tracker URL:", metaInfo.TrackerUrl)
		fmt.Println("Name:", metaInfo.Name)
		fmt.Println("Length:", metaInfo.Length)
		fmt.Println("Piece Length:", metaInfo.PieceLength)
		fmt.Println("Info Hash:", hex.EncodeToString(metaInfo.InfoHash))

	case "magnet":
		torrentFilePath := os.Args[2]

		metaInfo, err := ParseTorrentFile(torrentFilePath)
		if err != nil {
			log.Fatalf("Failed to parse torrent file: %v", err)
		}

		fallbackName := DefaultDisplayName(torrentFilePath)
		if len(os.Args) > 3 {
			fallbackName = os.Args[3]
		}

		fmt.Println(FormatMagnetLink(metaInfo, fallbackName))

	default:
		// Handle unknown commands
		log.Fatalf("Unknown command: %s", command)
	}
}
