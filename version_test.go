package crownpages

import "testing"

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{"current version", SchemaVersion, true},
		{"older version", "0.0.1", false},
		{"newer version", "99.0.0", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCompatible(tt.version); got != tt.want {
				t.Fatalf("IsCompatible(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
