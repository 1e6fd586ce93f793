package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"kaamwala/internal/config"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/search"
	"kaamwala/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	category := flag.String("category", "", "category id or name")
	location := flag.String("location", "", "location")
	minRate := flag.String("min-rate", "", "minimum hourly rate")
	maxRate := flag.String("max-rate", "", "maximum hourly rate")
	minExp := flag.String("min-experience", "", "minimum years of experience")
	sortBy := flag.String("sort", "", "sort key: name, hourlyRate or experience")
	skill := flag.String("skill", "", "search by skill id instead of filters")
	suggest := flag.String("suggest", "", "print search suggestions for a query and exit")
	page := flag.Int("page", 1, "1-based page number")
	dryRun := flag.Bool("dry-run", false, "print the planned backend call without sending it")
	flag.Parse()

	_ = godotenv.Load()

	mcfg, err := config.LoadMarketplace(viper.New())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	client := marketplace.NewClient(mcfg, logger)
	uc := usecase.NewWorkerSearchUsecase(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), mcfg.Timeout+5*time.Second)
	defer cancel()

	if q := strings.TrimSpace(*suggest); q != "" {
		out, err := uc.Suggestions(ctx, nil, q)
		if err != nil {
			log.Fatalf("suggestions failed: %v", err)
		}
		printJSON(out)
		return
	}

	if id := strings.TrimSpace(*skill); id != "" {
		req := search.BySkill(id, *page)
		fmt.Printf("endpoint: %s\nrequest:  %s\n", req.Endpoint, req.URL())
		if *dryRun {
			return
		}
		res, err := uc.BySkill(ctx, nil, id, *page)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		printJSON(res.Workers)
		return
	}

	filters := search.Filters{
		Category:      strings.TrimSpace(*category),
		Location:      strings.TrimSpace(*location),
		MinRate:       optFloat(*minRate),
		MaxRate:       optFloat(*maxRate),
		MinExperience: optInt(*minExp),
		SortBy:        strings.TrimSpace(*sortBy),
	}

	req := search.Plan(filters, *page)
	fmt.Printf("endpoint: %s\nrequest:  %s\nquery:    %s\n", req.Endpoint, req.URL(), filters.Encode().Encode())
	if *dryRun {
		return
	}

	res, err := uc.Search(ctx, nil, filters, *page)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	fmt.Printf("page:     %d (has more: %t)\n", res.Page, res.HasMore)
	printJSON(res.Workers)
}

func optFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("invalid number %q", raw)
	}
	return &v
}

func optInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("invalid integer %q", raw)
	}
	return &v
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}
