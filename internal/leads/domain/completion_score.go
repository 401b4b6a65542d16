package domain

import (
	"math"
	"strings"
)

// Barème de complétude du formulaire détaillé: somme pondérée sur
// quatre niveaux d'importance, ramenée en pourcentage 0-100.
const (
	essentialPoints = 10
	importantPoints = 8
	secondaryPoints = 5
	optionalPoints  = 3

	// maxCompletionPoints total atteignable: 3×10 + 7×8 + 12×5 + 8×3
	maxCompletionPoints = 170
)

// CalculateCompletionScore calcule le pourcentage de complétude d'un
// formulaire de prospect. Un champ texte compte s'il est non vide après
// trim; un champ numérique compte s'il est fini et strictement positif.
func CalculateCompletionScore(d LeadDetails) int {
	points := 0

	// Essentiels: identité et contact direct
	if filled(d.Email) {
		points += essentialPoints
	}
	if filled(d.Phone) {
		points += essentialPoints
	}
	if filled(d.FirstName) && filled(d.LastName) {
		points += essentialPoints
	}

	// Importants: bénéficiaire des travaux et adresse du chantier
	for _, field := range []string{
		d.BeneficiaryEmail,
		d.BeneficiaryPhone,
		d.BeneficiaryFirstName,
		d.BeneficiaryLastName,
		d.WorkAddress,
		d.WorkCity,
		d.WorkPostcode,
	} {
		if filled(field) {
			points += importantPoints
		}
	}

	// Secondaires: entreprise, siège et qualification du chantier
	for _, field := range []string{
		d.Company,
		d.HQAddress,
		d.HQCity,
		d.HQPostcode,
		d.WorkCompanyName,
		d.WorkRegion,
		d.WorkClimateZone,
		d.BeneficiaryTitle,
		d.BeneficiaryFunction,
		d.BeneficiaryLandline,
		d.CadastralParcel,
	} {
		if filled(field) {
			points += secondaryPoints
		}
	}
	if positiveFinite(d.SurfaceM2) {
		points += secondaryPoints
	}

	// Optionnels: identifiants légaux, photos et notes
	for _, field := range []string{
		d.Siret,
		d.Siren,
		d.WorkSiret,
		d.ExteriorPhotoURL,
		d.CadastralPhotoURL,
		d.InternalNotes,
		d.CategoryID,
	} {
		if filled(field) {
			points += optionalPoints
		}
	}
	if d.QualificationScore > 0 {
		points += optionalPoints
	}

	score := int(math.Round(float64(points) / maxCompletionPoints * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// filled vérifie qu'un champ texte est renseigné après trim
func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

// positiveFinite vérifie qu'un champ numérique est fini et > 0
func positiveFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}
