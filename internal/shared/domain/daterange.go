package domain

import (
	"errors"
	"time"
)

// Period désigne une fenêtre temporelle relative, résolue en DateRange
// par ResolvePeriod. Jamais persistée telle quelle.
type Period string

const (
	PeriodToday   Period = "today"
	Period7Days   Period = "7d"
	Period30Days  Period = "30d"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodCustom  Period = "custom"
)

// DateRange représente une période temporelle
// DESIGN PATTERN: Value Object (DDD)
//   - Immutable: pas de setters, valeurs fixées à la création
//   - Égalité basée sur les valeurs, pas l'identité
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange crée un DateRange avec validation des bornes
func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, errors.New("end cannot be before start")
	}
	return DateRange{start: start, end: end}, nil
}

// Start retourne la date de début
func (dr DateRange) Start() time.Time {
	return dr.start
}

// End retourne la date de fin
func (dr DateRange) End() time.Time {
	return dr.end
}

// Duration retourne la durée de la période
func (dr DateRange) Duration() time.Duration {
	return dr.end.Sub(dr.start)
}

// Contains indique si t appartient à la période, bornes incluses.
// C'est la convention de filtrage de la période courante.
func (dr DateRange) Contains(t time.Time) bool {
	return !t.Before(dr.start) && !t.After(dr.end)
}

// ContainsExclusive indique si t appartient à la période, début inclus
// et fin exclue. Convention de filtrage de la période de comparaison
// (sa borne de fin coïncide avec le début de la période courante).
func (dr DateRange) ContainsExclusive(t time.Time) bool {
	return !t.Before(dr.start) && t.Before(dr.end)
}

// CustomRange bornes optionnelles fournies par l'appelant pour la
// période "custom". Une borne nil prend sa valeur par défaut
// (start: now - 30 jours, end: now).
type CustomRange struct {
	Start *time.Time
	End   *time.Time
}

// ResolvePeriod résout une période nommée en DateRange concret.
// Tous les calculs se font dans le calendrier local de now (pas de
// normalisation UTC). Une période inconnue retombe sur la règle "30d".
func ResolvePeriod(period Period, custom CustomRange, now time.Time) DateRange {
	switch period {
	case PeriodToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return DateRange{start: start, end: now}
	case Period7Days:
		return DateRange{start: now.Add(-7 * 24 * time.Hour), end: now}
	case Period30Days:
		return DateRange{start: now.Add(-30 * 24 * time.Hour), end: now}
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{start: start, end: now}
	case PeriodQuarter:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
		return DateRange{start: start, end: now}
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return DateRange{start: start, end: now}
	case PeriodCustom:
		start := now.Add(-30 * 24 * time.Hour)
		end := now
		if custom.Start != nil {
			start = *custom.Start
		}
		if custom.End != nil {
			end = *custom.End
		}
		return DateRange{start: start, end: end}
	default:
		return DateRange{start: now.Add(-30 * 24 * time.Hour), end: now}
	}
}

// PreviousPeriod retourne la période de même durée précédant
// immédiatement r, sans chevauchement. Sert de fenêtre de comparaison
// pour le calcul du taux de croissance.
func PreviousPeriod(r DateRange) DateRange {
	duration := r.end.Sub(r.start)
	return DateRange{start: r.start.Add(-duration), end: r.start}
}
