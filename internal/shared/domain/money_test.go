package domain

import (
	"math"
	"testing"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(49.9)
	if err != nil {
		t.Fatalf("NewMoney: %v", err)
	}
	if m.Amount() != 49.9 {
		t.Errorf("Amount: got %v, want 49.9", m.Amount())
	}

	if _, err := NewMoney(-1); err == nil {
		t.Error("un montant négatif doit être rejeté")
	}
}

func TestNewMoney_NonFiniteCoercedToZero(t *testing.T) {
	for _, input := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m, err := NewMoney(input)
		if err != nil {
			t.Fatalf("NewMoney(%v): %v", input, err)
		}
		if !m.IsZero() {
			t.Errorf("NewMoney(%v): got %v, want 0", input, m.Amount())
		}
	}
}

func TestSafeAmount(t *testing.T) {
	cases := []struct {
		input float64
		want  float64
	}{
		{100.5, 100.5},
		{0, 0},
		{-3, -3},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := SafeAmount(c.input); got != c.want {
			t.Errorf("SafeAmount(%v): got %v, want %v", c.input, got, c.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := MustNewMoney(100)
	b := MustNewMoney(50.5)

	if got := a.Add(b).Amount(); got != 150.5 {
		t.Errorf("Add: got %v, want 150.5", got)
	}

	product, err := a.Multiply(3)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	if product.Amount() != 300 {
		t.Errorf("Multiply: got %v, want 300", product.Amount())
	}

	if _, err := a.Multiply(-2); err == nil {
		t.Error("un facteur produisant un montant négatif doit être rejeté")
	}
}
