package main

import (
	"flag"
	"gin-heyvankala/infra"
	"log"
)

func main() {
	reset := flag.Bool("reset", true, "drop all tables before migrating")
	flag.Parse()

	cfg := infra.Initialize()
	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *reset {
		err = infra.RecreateSchema(db)
	} else {
		err = infra.Migrate(db)
	}
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Migration completed")
}
