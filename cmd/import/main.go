package main

import (
	"context"
	"flag"
	"log"
	"os"

	"pizzaria-backend/internal/config"
	"pizzaria-backend/internal/db"
	"pizzaria-backend/internal/importer"
	categoryrepo "pizzaria-backend/internal/repository/category"
	pizzeriarepo "pizzaria-backend/internal/repository/pizzeria"
	productrepo "pizzaria-backend/internal/repository/product"
	zonerepo "pizzaria-backend/internal/repository/zone"

	"github.com/joho/godotenv"
)

func main() {
	var (
		filePath string
		slug     string
	)
	flag.StringVar(&filePath, "file", "", "Path to menu JSON document")
	flag.StringVar(&slug, "pizzeria", "", "Slug of the pizzeria to import into")
	flag.Parse()

	if filePath == "" || slug == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[import] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	pizzeria, err := pizzeriarepo.NewPostgres(pool).GetBySlug(ctx, slug)
	if err != nil {
		logger.Fatalf("pizzeria %q: %v (run the seed or create it first)", slug, err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.New(
		categoryrepo.NewPostgres(pool),
		productrepo.NewPostgres(pool, logger),
		zonerepo.NewPostgres(pool),
		pizzeria.ID,
	)

	count, err := imp.Run(ctx, f)
	if err != nil {
		logger.Fatalf("import: %v", err)
	}
	logger.Printf("imported %d products into %s", count, pizzeria.Name)
}
