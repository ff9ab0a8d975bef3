// Package mongostore backs the transaction store with MongoDB, for
// deployments where histories must outlive the local filesystem.
package mongostore

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avoronkov/stockfolio"
	"github.com/avoronkov/stockfolio/store"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "mongostore").Logger()

const (
	dbName                 = "stockfolio"
	transactionsCollection = "transactions"
	portfoliosCollection   = "portfolios"
	countersCollection     = "counters"
)

// Store implements store.Store on a MongoDB database. Transaction ids
// come from a per-portfolio counter document, so they keep increasing
// across removals and across processes.
type Store struct {
	db *mongo.Database
}

// Connect dials the MongoDB at uri and returns a Store over it.
func Connect(ctx context.Context, uri string) (*Store, error) {
	logger.Debug().Str("uri", uri).Msg("connecting to mongodb")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return New(client.Database(dbName)), nil
}

// New wraps an already connected database.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// txDoc is the wire form of a transaction. The price is kept as a
// decimal string so nothing is lost to float rounding.
type txDoc struct {
	Portfolio string `bson:"portfolio"`
	ID        int64  `bson:"id"`
	Symbol    string `bson:"symbol"`
	Operation string `bson:"operation"`
	Shares    int64  `bson:"shares"`
	Price     string `bson:"price"`
	Currency  string `bson:"currency"`
	Date      string `bson:"date"`
}

func newTxDoc(portfolio string, tx stockfolio.Transaction) txDoc {
	return txDoc{
		Portfolio: portfolio,
		ID:        tx.ID,
		Symbol:    tx.Symbol,
		Operation: string(tx.Operation),
		Shares:    tx.Shares,
		Price:     tx.Price.Amount().String(),
		Currency:  tx.Price.Currency(),
		Date:      tx.Date.String(),
	}
}

func (d txDoc) transaction() (stockfolio.Transaction, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return stockfolio.Transaction{}, fmt.Errorf("invalid stored price %q: %w", d.Price, err)
	}
	date, err := stockfolio.ParseDate(d.Date)
	if err != nil {
		return stockfolio.Transaction{}, fmt.Errorf("invalid stored date %q: %w", d.Date, err)
	}
	return stockfolio.Transaction{
		ID:        d.ID,
		Symbol:    d.Symbol,
		Operation: stockfolio.Operation(d.Operation),
		Shares:    d.Shares,
		Price:     stockfolio.M(price, d.Currency),
		Date:      date,
	}, nil
}

func (s *Store) Portfolios(ctx context.Context) ([]string, error) {
	cursor, err := s.db.Collection(portfoliosCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing portfolios: %w", err)
	}
	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("listing portfolios: %w", err)
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) CreatePortfolio(ctx context.Context, portfolio string) error {
	res, err := s.db.Collection(portfoliosCollection).UpdateOne(ctx,
		bson.M{"name": portfolio},
		bson.M{"$setOnInsert": bson.M{"name": portfolio}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("creating portfolio %q: %w", portfolio, err)
	}
	if res.UpsertedCount == 0 {
		return store.ErrExist
	}
	return nil
}

func (s *Store) exists(ctx context.Context, portfolio string) (bool, error) {
	err := s.db.Collection(portfoliosCollection).
		FindOne(ctx, bson.M{"name": portfolio}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up portfolio %q: %w", portfolio, err)
	}
	return true, nil
}

func (s *Store) Transactions(ctx context.Context, portfolio string) ([]stockfolio.Transaction, error) {
	ok, err := s.exists(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.ErrNotFound
	}

	cursor, err := s.db.Collection(transactionsCollection).Find(ctx,
		bson.M{"portfolio": portfolio},
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("loading portfolio %q: %w", portfolio, err)
	}
	var docs []txDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("loading portfolio %q: %w", portfolio, err)
	}
	txs := make([]stockfolio.Transaction, 0, len(docs))
	for _, d := range docs {
		tx, err := d.transaction()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// nextID increments the portfolio's counter document and returns the
// new value, creating the counter on first use.
func (s *Store) nextID(ctx context.Context, portfolio string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": portfolio},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("assigning transaction id: %w", err)
	}
	return counter.Seq, nil
}

func (s *Store) Add(ctx context.Context, portfolio string, tx stockfolio.Transaction) (stockfolio.Transaction, error) {
	if err := s.CreatePortfolio(ctx, portfolio); err != nil && err != store.ErrExist {
		return stockfolio.Transaction{}, err
	}
	id, err := s.nextID(ctx, portfolio)
	if err != nil {
		return stockfolio.Transaction{}, err
	}
	tx.ID = id
	if _, err := s.db.Collection(transactionsCollection).InsertOne(ctx, newTxDoc(portfolio, tx)); err != nil {
		return stockfolio.Transaction{}, fmt.Errorf("storing transaction: %w", err)
	}
	logger.Debug().Str("portfolio", portfolio).Int64("id", id).Msg("transaction stored")
	return tx, nil
}

func (s *Store) Remove(ctx context.Context, portfolio string, id int64) error {
	res, err := s.db.Collection(transactionsCollection).DeleteOne(ctx,
		bson.M{"portfolio": portfolio, "id": id})
	if err != nil {
		return fmt.Errorf("removing transaction %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
