package domain

import "testing"

func TestCalculateClimateZone(t *testing.T) {
	tests := []struct {
		name     string
		postcode string
		want     string
	}{
		{"Paris H1", "75001", ZoneH1},
		{"Lille H1", "59000", ZoneH1},
		{"Bordeaux H2", "33000", ZoneH2},
		{"Nantes H2", "44000", ZoneH2},
		{"Marseille H3", "13001", ZoneH3},
		{"Nice H3", "06000", ZoneH3},
		{"Ajaccio H3", "20000", ZoneH3},
		{"La Réunion H3 (département sur 3 chiffres)", "97400", ZoneH3},
		{"Guadeloupe H3", "97110", ZoneH3},
		{"Mayotte H3", "97600", ZoneH3},
		{"Polynésie hors référentiel", "98714", ZoneUnknown},
		{"lettres uniquement", "ABCDE", ZoneUnknown},
		{"chiffres noyés dans du texte", "7x5y0z01", ZoneH1},
		{"département inexistant", "99000", ZoneUnknown},
	}
	for _, tt := range tests {
		got, ok := CalculateClimateZone(tt.postcode)
		if !ok {
			t.Errorf("%s: code %q considéré absent", tt.name, tt.postcode)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.postcode, tt.want)
		}
	}
}

func TestCalculateClimateZone_AbsentPostcode(t *testing.T) {
	for _, postcode := range []string{"", "   ", "\t"} {
		if zone, ok := CalculateClimateZone(postcode); ok {
			t.Errorf("code %q: attendu absent, got %q", postcode, zone)
		}
	}
}

// Le référentiel doit former une partition: chaque département
// métropolitain (1-95) et d'outre-mer (971-976) appartient à exactement
// une zone.
func TestClimateZonePartition(t *testing.T) {
	seen := make(map[int]string)
	record := func(depts []int, zone string) {
		for _, d := range depts {
			if prev, dup := seen[d]; dup {
				t.Errorf("département %d présent dans %s et %s", d, prev, zone)
			}
			seen[d] = zone
		}
	}
	record(zoneH1Departments, ZoneH1)
	record(zoneH2Departments, ZoneH2)
	record(zoneH3Departments, ZoneH3)

	for d := 1; d <= 95; d++ {
		if _, ok := seen[d]; !ok {
			t.Errorf("département métropolitain %d sans zone", d)
		}
	}
	for d := 971; d <= 976; d++ {
		if _, ok := seen[d]; !ok {
			t.Errorf("département d'outre-mer %d sans zone", d)
		}
	}
}

func BenchmarkCalculateClimateZone(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = CalculateClimateZone("97400")
	}
}
