// Package stockfolio tracks a stock portfolio from its recorded buy and
// sell transactions.
//
// The heart of the package is Aggregate, which folds an ordered
// transaction list into the current holdings with their weighted average
// cost basis. Everything else derives from that: performance, price
// targets, weights, tendencies and the beta comparison all consume the
// holdings plus market data fetched by a provider.
//
// The package itself performs no I/O. Persistence lives in the store
// package, market data in the finnhub package, formatting in the renderer
// package, and the CLI in cmd.
package stockfolio
