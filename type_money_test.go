package stockfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := usd(100)
	b := usd(50.5)
	if got := a.Add(b); !got.Equal(usd(150.5)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(usd(49.5)) {
		t.Errorf("Sub = %v", got)
	}
	if got := b.MulShares(3); !got.Equal(usd(151.5)) {
		t.Errorf("MulShares = %v", got)
	}
	if got := usd(151.5).DivShares(3); !got.Equal(b) {
		t.Errorf("DivShares = %v", got)
	}
}

func TestMoney_ExactAverage(t *testing.T) {
	// 1/3 style divisions must not lose the exact running total:
	// (100*1 + 200*2) / 3 * 3 == 500.
	avg := usd(100).Add(usd(200).MulShares(2)).DivShares(3)
	if got := avg.MulShares(3); !got.Sub(usd(500)).Amount().Abs().LessThan(decimal.NewFromFloat(1e-9)) {
		t.Errorf("average lost precision: %v", got)
	}
}

func TestMoney_PercentOf(t *testing.T) {
	got := usd(50).PercentOf(usd(200))
	if !got.Equal(decimal.NewFromInt(25)) {
		t.Errorf("PercentOf = %v, want 25", got)
	}
}

func TestMoney_String(t *testing.T) {
	if got := usd(1234.5).String(); got != "$1,234.50" {
		t.Errorf("String() = %q", got)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := usd(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q", got)
	}
	if got := usd(1).SignedString(); got != "+$1.00" {
		t.Errorf("SignedString(1) = %q", got)
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD and EUR did not panic")
		}
	}()
	_ = usd(1).Add(M(1, "EUR"))
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice("245.5")
	if err != nil {
		t.Fatalf("ParsePrice() error = %v", err)
	}
	if !p.Equal(usd(245.5)) {
		t.Errorf("ParsePrice() = %v", p)
	}
	if _, err := ParsePrice("abc"); err == nil {
		t.Error("ParsePrice(abc) did not fail")
	}
}
