package main

import (
	"context"
	"flag"
	"log"
	"os"

	"foodapp/internal/config"
	"foodapp/internal/db"
	"foodapp/internal/importer"
	foodrepo "foodapp/internal/repository/food"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a JSON menu export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open export: %v", err)
	}
	defer f.Close()

	imp := importer.NewJSONImporter(f, foodrepo.NewPostgres(pool, logger))
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d items: %v", count, err)
	}
	logger.Printf("imported %d menu items", count)
}
