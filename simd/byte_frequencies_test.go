package simd

import "testing"

func TestByteFrequenciesTableSize(t *testing.T) {
	if len(ByteFrequencies) != 256 {
		t.Errorf("ByteFrequencies should have 256 entries, got %d", len(ByteFrequencies))
	}
}

func TestByteFrequenciesCommonBytes(t *testing.T) {
	if ByteFrequencies[' '] != 255 {
		t.Errorf("space should have rank 255, got %d", ByteFrequencies[' '])
	}
	if ByteFrequencies['e'] < 200 {
		t.Errorf("'e' should have high rank (>200), got %d", ByteFrequencies['e'])
	}
	if ByteFrequencies['t'] < 200 {
		t.Errorf("'t' should have high rank (>200), got %d", ByteFrequencies['t'])
	}
}

func TestByteFrequenciesRareBytes(t *testing.T) {
	if ByteFrequencies['@'] > 50 {
		t.Errorf("'@' should have low rank (<50), got %d", ByteFrequencies['@'])
	}
	if ByteFrequencies['Q'] > 50 {
		t.Errorf("'Q' should have low rank (<50), got %d", ByteFrequencies['Q'])
	}
	if ByteFrequencies['Z'] > 20 {
		t.Errorf("'Z' should have very low rank (<20), got %d", ByteFrequencies['Z'])
	}
}

func TestByteRank(t *testing.T) {
	tests := []struct {
		b    byte
		want byte
	}{
		{' ', 255},
		{'@', 25},
		{'e', 245},
	}
	for _, tt := range tests {
		if got := ByteRank(tt.b); got != tt.want {
			t.Errorf("ByteRank(%q) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestRarerOf(t *testing.T) {
	if got := rarerOf('@', 'e'); got != '@' {
		t.Errorf("rarerOf('@','e') = %q, want '@'", got)
	}
	if got := rarerOf('e', '@'); got != '@' {
		t.Errorf("rarerOf('e','@') = %q, want '@'", got)
	}
	if got := rarerOf('a', 'a'); got != 'a' {
		t.Errorf("rarerOf('a','a') = %q, want 'a'", got)
	}
}
