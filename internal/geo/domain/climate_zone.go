package domain

import (
	"strconv"
	"strings"
)

// Zones climatiques réglementaires françaises (DPE / réglementation
// thermique), indexées par numéro de département.
const (
	ZoneH1 = "H1"
	ZoneH2 = "H2"
	ZoneH3 = "H3"

	// ZoneUnknown chaîne d'affichage pour un code postal illisible ou
	// hors référentiel
	ZoneUnknown = "Zone inconnue"
)

// Référentiel réglementaire: partition des départements en trois zones.
// Données de référence, à reproduire telles quelles, pas une formule.
var (
	zoneH1Departments = []int{
		1, 2, 3, 5, 8, 10, 14, 15, 19, 21, 23, 25, 27, 28,
		36, 37, 38, 39, 42, 43, 45, 51, 52, 54, 55, 57, 58, 59,
		60, 61, 62, 63, 67, 68, 69, 70, 71, 73, 74, 75, 76, 77,
		78, 80, 87, 88, 89, 90, 91, 92, 93, 94, 95,
	}
	zoneH2Departments = []int{
		4, 7, 9, 12, 16, 17, 18, 22, 24, 26, 29, 31, 32, 33,
		35, 40, 41, 44, 46, 47, 48, 49, 50, 53, 56, 64, 65, 72,
		79, 81, 82, 84, 85, 86,
	}
	// Pourtour méditerranéen, Corse et départements d'outre-mer
	zoneH3Departments = []int{
		6, 11, 13, 20, 30, 34, 66, 83,
		971, 972, 973, 974, 975, 976,
	}
)

var climateZoneByDepartment = buildClimateZoneIndex()

func buildClimateZoneIndex() map[int]string {
	index := make(map[int]string, len(zoneH1Departments)+len(zoneH2Departments)+len(zoneH3Departments))
	for _, dept := range zoneH1Departments {
		index[dept] = ZoneH1
	}
	for _, dept := range zoneH2Departments {
		index[dept] = ZoneH2
	}
	for _, dept := range zoneH3Departments {
		index[dept] = ZoneH3
	}
	return index
}

// CalculateClimateZone détermine la zone climatique d'un code postal.
//
// Retourne ("", false) quand le code postal est absent (vide après trim):
// l'absence se distingue d'un code illisible, qui retourne la chaîne
// d'affichage ZoneUnknown. Les départements d'outre-mer (préfixes 97/98)
// sont identifiés sur trois chiffres, contrairement au classifieur de
// région qui reste sur deux.
func CalculateClimateZone(postcode string) (string, bool) {
	trimmed := strings.TrimSpace(postcode)
	if trimmed == "" {
		return "", false
	}

	digits := keepDigits(trimmed)
	if digits == "" {
		return ZoneUnknown, true
	}

	deptLen := 2
	if strings.HasPrefix(digits, "97") || strings.HasPrefix(digits, "98") {
		deptLen = 3
	}
	if deptLen > len(digits) {
		deptLen = len(digits)
	}

	dept, err := strconv.Atoi(digits[:deptLen])
	if err != nil {
		return ZoneUnknown, true
	}

	if zone, ok := climateZoneByDepartment[dept]; ok {
		return zone, true
	}
	return ZoneUnknown, true
}

// keepDigits ne conserve que les chiffres ASCII de s
func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
