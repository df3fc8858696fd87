// Command migrate applies the SQL files under migrations/ in name order.
// Every statement is written to be re-runnable, so there is no version table.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/rebill/internal/config"
	"github.com/MrJamesThe3rd/rebill/internal/database"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read migrations dir:", err)
		os.Exit(1)
	}

	var names []string

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)

	for _, name := range names {
		sqlBytes, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", name, err)
			os.Exit(1)
		}

		if _, err := db.Exec(string(sqlBytes)); err != nil {
			fmt.Fprintf(os.Stderr, "migration %s failed: %v\n", name, err)
			os.Exit(1)
		}

		fmt.Println("applied", name)
	}
}
