// Package cmd implements the CLI application to track stock portfolios.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/avoronkov/stockfolio"
	"github.com/avoronkov/stockfolio/finnhub"
	"github.com/avoronkov/stockfolio/store"
	"github.com/avoronkov/stockfolio/store/mongostore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&portfoliosCmd{}, "portfolios")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&actualCmd{}, "reports")
	c.Register(&targetsCmd{}, "reports")
	c.Register(&weightsCmd{}, "reports")
	c.Register(&trendsCmd{}, "reports")
	c.Register(&tendenciesCmd{}, "reports")
	c.Register(&earningsCmd{}, "reports")
	c.Register(&independenceCmd{}, "projections")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioName = flag.String("portfolio", "main", "Name of the portfolio to operate on")
var storeDir = flag.String("store-dir", ".stockfolio", "Path to the local transaction store folder")

var logger zerolog.Logger

func init() {
	// .env is optional, the environment itself wins.
	godotenv.Load()

	level := zerolog.WarnLevel
	if l, err := zerolog.ParseLevel(os.Getenv("STOCKFOLIO_LOG")); err == nil && os.Getenv("STOCKFOLIO_LOG") != "" {
		level = l
	}
	zerolog.SetGlobalLevel(level)
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// OpenStore is the central function to open the transaction store.
//
// With MONGO_URI set the histories live in MongoDB, otherwise in JSONL
// files under -store-dir. With REDIS_ADDR set, reads go through a shared
// Redis cache, otherwise through an in-process one.
func OpenStore(ctx context.Context) (store.Store, error) {
	var backing store.Store
	var err error
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		backing, err = mongostore.Connect(ctx, uri)
	} else {
		backing, err = store.NewFileStore(*storeDir)
	}
	if err != nil {
		return nil, err
	}

	var backend store.Backend
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		backend = store.NewRedisBackend(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		}))
	} else {
		backend = store.NewMemoryBackend()
	}
	return store.NewCache(backing, backend, logger), nil
}

// NewFinnhub builds the quote provider from the FINNHUB_TOKEN environment
// variable, which may hold several comma-separated API tokens.
func NewFinnhub() (*finnhub.Client, error) {
	raw := os.Getenv("FINNHUB_TOKEN")
	if raw == "" {
		return nil, fmt.Errorf("FINNHUB_TOKEN is not set")
	}
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return finnhub.NewClient(tokens...), nil
}

// LoadHoldings reads the portfolio history and folds it into holdings.
func LoadHoldings(ctx context.Context) ([]stockfolio.Holding, error) {
	s, err := OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.Transactions(ctx, *portfolioName)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stockfolio.Aggregate(txs)
}
