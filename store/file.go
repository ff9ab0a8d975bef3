package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/avoronkov/stockfolio"
)

const fileExt = ".jsonl"

var portfolioNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// FileStore keeps each portfolio as a JSONL file in a single directory,
// one transaction per line. Writes rewrite the whole file, which is fine
// at the histories a personal portfolio accumulates.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore opens (creating if needed) the store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(portfolio string) (string, error) {
	if !portfolioNameRegex.MatchString(portfolio) {
		return "", fmt.Errorf("invalid portfolio name %q", portfolio)
	}
	return filepath.Join(s.dir, portfolio+fileExt), nil
}

func (s *FileStore) Portfolios(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing portfolios: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

func (s *FileStore) CreatePortfolio(ctx context.Context, portfolio string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.path(portfolio)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if os.IsExist(err) {
		return ErrExist
	}
	if err != nil {
		return fmt.Errorf("creating portfolio %q: %w", portfolio, err)
	}
	return f.Close()
}

func (s *FileStore) Transactions(ctx context.Context, portfolio string) ([]stockfolio.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(portfolio)
}

// load reads a portfolio file. Callers hold s.mu.
func (s *FileStore) load(portfolio string) ([]stockfolio.Transaction, error) {
	path, err := s.path(portfolio)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading portfolio %q: %w", portfolio, err)
	}
	txs, err := stockfolio.DecodeTransactions(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading portfolio %q: %w", portfolio, err)
	}
	return txs, nil
}

// save rewrites a portfolio file atomically. Callers hold s.mu.
func (s *FileStore) save(portfolio string, txs []stockfolio.Transaction) error {
	path, err := s.path(portfolio)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := stockfolio.EncodeTransactions(&buf, txs); err != nil {
		return fmt.Errorf("writing portfolio %q: %w", portfolio, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing portfolio %q: %w", portfolio, err)
	}
	return os.Rename(tmp, path)
}

func (s *FileStore) Add(ctx context.Context, portfolio string, tx stockfolio.Transaction) (stockfolio.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.load(portfolio)
	if err == ErrNotFound {
		txs, err = nil, nil
	}
	if err != nil {
		return stockfolio.Transaction{}, err
	}
	tx.ID = nextID(txs)
	if err := s.save(portfolio, append(txs, tx)); err != nil {
		return stockfolio.Transaction{}, err
	}
	return tx, nil
}

func (s *FileStore) Remove(ctx context.Context, portfolio string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.load(portfolio)
	if err != nil {
		return err
	}
	kept := txs[:0]
	found := false
	for _, tx := range txs {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	if !found {
		return ErrNotFound
	}
	return s.save(portfolio, kept)
}
