package domain

import (
	"strings"
	"unicode"
)

// Chaînes d'affichage retournées par CalculateRegion pour les entrées
// absentes ou illisibles. Ce sont des libellés destinés à l'interface,
// pas des codes d'erreur internes.
const (
	RegionMissingPostcode = "Code postal à remplir"
	RegionFormatError     = "Erreur de format"
	RegionUnknown         = "Région inconnue"
)

// CalculateRegion détermine la région administrative d'un code postal.
//
// Un code à 4 chiffres est complété à gauche par un zéro (saisies type
// "6200" pour Nice). Le département est toujours pris sur les deux
// premiers chiffres: les codes d'outre-mer (97x) ne sont pas distingués
// ici et retombent sur RegionUnknown.
func CalculateRegion(postcode string) string {
	cleaned := stripSpaces(postcode)
	if cleaned == "" {
		return RegionMissingPostcode
	}
	if !isDigits(cleaned) || len(cleaned) < 4 || len(cleaned) > 5 {
		return RegionFormatError
	}
	if len(cleaned) == 4 {
		cleaned = "0" + cleaned
	}

	// Référentiel des 13 régions administratives par département.
	// Données de référence, à reproduire telles quelles.
	switch cleaned[:2] {
	case "01", "03", "07", "15", "26", "38", "42", "43", "63", "69", "73", "74":
		return "Auvergne-Rhône-Alpes"
	case "21", "25", "39", "58", "70", "71", "89", "90":
		return "Bourgogne-Franche-Comté"
	case "22", "29", "35", "56":
		return "Bretagne"
	case "18", "28", "36", "37", "41", "45":
		return "Centre-Val de Loire"
	case "20":
		return "Corse"
	case "08", "10", "51", "52", "54", "55", "57", "67", "68", "88":
		return "Grand Est"
	case "02", "59", "60", "62", "80":
		return "Hauts-de-France"
	case "75", "77", "78", "91", "92", "93", "94", "95":
		return "Île-de-France"
	case "14", "27", "50", "61", "76":
		return "Normandie"
	case "16", "17", "19", "23", "24", "33", "40", "47", "64", "79", "86", "87":
		return "Nouvelle-Aquitaine"
	case "09", "11", "12", "30", "31", "32", "34", "46", "48", "65", "66", "81", "82":
		return "Occitanie"
	case "44", "49", "53", "72", "85":
		return "Pays de la Loire"
	case "04", "05", "06", "13", "83", "84":
		return "Provence-Alpes-Côte d'Azur"
	default:
		return RegionUnknown
	}
}

// stripSpaces retire tout caractère d'espacement, y compris les
// espaces insécables des codes copiés-collés
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isDigits vérifie que s ne contient que des chiffres ASCII
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
