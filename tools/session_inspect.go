package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// inspectConfig reads the store location the same way the client does.
type inspectConfig struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,default=.hr-chat"`
}

// Lists what the client persisted. Session ids are opaque and may be long,
// so only their head is shown unless -full is set.
func main() {
	config, err := loadInspectConfig()
	if err != nil {
		log.Fatal("config error: ", err)
	}

	dbPath := flag.String("db", config.BadgerFilepath, "Path to the client badger DB")
	full := flag.Bool("full", false, "Print values untruncated")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Value", "Size", "Version", "Expires"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				fmt.Printf("Error reading key %s: %v\n", string(item.Key()), err)
				continue
			}

			display := string(value)
			if !*full && len(display) > 24 {
				display = display[:24] + "..."
			}

			expires := "never"
			if at := item.ExpiresAt(); at > 0 {
				expires = time.Unix(int64(at), 0).Format(time.RFC3339)
			}

			table.Append([]string{
				string(item.Key()),
				display,
				fmt.Sprintf("%d", len(value)),
				fmt.Sprintf("%d", item.Version()),
				expires,
			})
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func loadInspectConfig() (inspectConfig, error) {
	var config inspectConfig
	_, err := env.UnmarshalFromEnviron(&config)
	return config, err
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		// a crashed client leaves the value log dirty; a writable open truncates it
		repaired, repairErr := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
		if repairErr != nil {
			return nil, fmt.Errorf("repair failed: %w", repairErr)
		}
		_ = repaired.Close()
		return badger.Open(opts)
	}
	return db, err
}
