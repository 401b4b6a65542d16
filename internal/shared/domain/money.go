package domain

import (
	"errors"
	"fmt"
	"math"
)

// Money représente un montant HT (hors taxes) avec garanties d'invariants.
// L'application travaille dans une devise implicite unique, les montants
// ne portent donc pas de code devise.
type Money struct {
	amount float64
}

// NewMoney crée une nouvelle instance de Money avec validation.
// Un montant non fini (NaN, ±Inf) est ramené à zéro plutôt que propagé.
func NewMoney(amount float64) (Money, error) {
	amount = SafeAmount(amount)
	if amount < 0 {
		return Money{}, errors.New("amount cannot be negative")
	}
	return Money{amount: amount}, nil
}

// MustNewMoney crée un Money en paniquant si invalide
func MustNewMoney(amount float64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(fmt.Sprintf("invalid money: %v", err))
	}
	return m
}

// Amount retourne le montant
func (m Money) Amount() float64 {
	return m.amount
}

// Add additionne deux Money
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Multiply multiplie le montant par un facteur
func (m Money) Multiply(factor float64) (Money, error) {
	if factor < 0 {
		return Money{}, errors.New("multiplication factor cannot be negative")
	}
	return Money{amount: m.amount * factor}, nil
}

// IsZero vérifie si le montant est zéro
func (m Money) IsZero() bool {
	return m.amount == 0
}

// SafeAmount ramène à zéro les valeurs non finies (NaN, ±Inf) pour
// éviter de propager des NaN dans les agrégats.
func SafeAmount(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
