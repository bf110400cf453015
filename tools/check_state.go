// Quick snapshot inspector: prints entity counts from the persisted store
// blob. Point it at either the JSON file or the sqlite database.
//
//	go run ./tools -file tmp/gharjoy.json
//	go run ./tools -sqlite tmp/gharjoy.sqlite
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

type snapshot struct {
	CurrentUserID  string            `json:"currentUser"`
	Users          []json.RawMessage `json:"users"`
	Products       []json.RawMessage `json:"products"`
	Posts          []json.RawMessage `json:"posts"`
	Wishlist       []json.RawMessage `json:"wishlist"`
	SpinResults    []json.RawMessage `json:"spinResults"`
	SpinsAvailable int               `json:"spinsAvailable"`
	MentorChat     []json.RawMessage `json:"mentorChat"`
	BargainChat    []json.RawMessage `json:"bargainChat"`
}

func main() {
	filePath := flag.String("file", "", "path to the JSON snapshot file")
	sqlitePath := flag.String("sqlite", "", "path to the sqlite snapshot database")
	flag.Parse()

	var blob []byte
	var err error
	switch {
	case *filePath != "":
		blob, err = os.ReadFile(*filePath)
		if err != nil {
			log.Fatal(err)
		}
	case *sqlitePath != "":
		db, err := sql.Open("sqlite", *sqlitePath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.QueryRow("SELECT payload FROM app_state WHERE state_key = 'shoppingghar-storage'").Scan(&blob); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("need -file or -sqlite")
	}

	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("current user:    %s\n", snap.CurrentUserID)
	fmt.Printf("users:           %d\n", len(snap.Users))
	fmt.Printf("products:        %d\n", len(snap.Products))
	fmt.Printf("posts:           %d\n", len(snap.Posts))
	fmt.Printf("wishlist:        %d\n", len(snap.Wishlist))
	fmt.Printf("spin results:    %d\n", len(snap.SpinResults))
	fmt.Printf("spins available: %d\n", snap.SpinsAvailable)
	fmt.Printf("mentor chat:     %d messages\n", len(snap.MentorChat))
	fmt.Printf("bargain chat:    %d messages\n", len(snap.BargainChat))
}
