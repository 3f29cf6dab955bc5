package analysis

import "testing"

func TestDeriveMaxRounds(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     int
		wantOK   bool
	}{
		{"zero duration", 0, 1, false},
		{"negative duration", -30, 1, false},
		{"one second rounds up", 1, 1, true},
		{"exactly four minutes", 240, 1, true},
		{"seven minutes rounds up to two", 420, 2, true},
		{"thirty minutes", 1800, 8, true},
		{"five minutes", 300, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveMaxRounds(tt.duration)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DeriveMaxRounds(%v) = (%d, %v), want (%d, %v)",
					tt.duration, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEffectiveVideoRounds(t *testing.T) {
	tests := []struct {
		name     string
		claimed  int
		duration float64
		want     int
	}{
		{"claim within bounds", 2, 1800, 2},
		{"overclaim clamped to duration", 12, 300, 2},
		{"zero claim floors at one", 0, 300, 1},
		{"negative claim floors at one", -3, 600, 1},
		{"no duration caps at one", 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveVideoRounds(tt.claimed, tt.duration); got != tt.want {
				t.Errorf("EffectiveVideoRounds(%d, %v) = %d, want %d",
					tt.claimed, tt.duration, got, tt.want)
			}
		})
	}
}

func TestFightRounds(t *testing.T) {
	tests := []struct {
		name     string
		declared int
		want     int
	}{
		{"declared value kept", 5, 5},
		{"zero defaults to three", 0, 3},
		{"negative defaults to three", -1, 3},
		{"excessive value capped", 50, 12},
		{"one round title fight", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FightRounds(tt.declared); got != tt.want {
				t.Errorf("FightRounds(%d) = %d, want %d", tt.declared, got, tt.want)
			}
		})
	}
}
