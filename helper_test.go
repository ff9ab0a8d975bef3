package stockfolio

import "time"

// test helpers shared by the package tests.

func usd(v float64) Money { return M(v, USD) }

func d(day int) Date { return NewDate(2025, time.March, day) }

func buy(id int64, symbol string, price float64, shares int64, on Date) Transaction {
	return Transaction{ID: id, Symbol: symbol, Operation: Purchase, Shares: shares, Price: usd(price), Date: on}
}

func sell(id int64, symbol string, price float64, shares int64, on Date) Transaction {
	return Transaction{ID: id, Symbol: symbol, Operation: Sale, Shares: shares, Price: usd(price), Date: on}
}
