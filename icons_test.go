package crownpages

import "testing"

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		platform Platform
		want     string
	}{
		{"star web", "star", PlatformWeb, "FaStar"},
		{"star mobile", "star", PlatformMobile, "star-outline"},
		{"heart web", "heart", PlatformWeb, "FaHeart"},
		{"unknown value passes through", "totally-unknown", PlatformWeb, "totally-unknown"},
		{"unknown platform passes through", "star", Platform("desktop"), "star"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveIcon(tt.value, tt.platform); got != tt.want {
				t.Fatalf("ResolveIcon(%q, %q) = %q, want %q", tt.value, tt.platform, got, tt.want)
			}
		})
	}
}

func TestIconValues_SortedAndResolvable(t *testing.T) {
	values := IconValues()
	if len(values) == 0 {
		t.Fatal("no icon values")
	}
	for i, v := range values {
		if i > 0 && values[i-1] >= v {
			t.Fatalf("values not sorted: %q before %q", values[i-1], v)
		}
		if got := ResolveIcon(v, PlatformWeb); got == v {
			t.Fatalf("known icon %q did not resolve for web", v)
		}
	}
}

func TestIconFor(t *testing.T) {
	icon := Icon{Mobile: "m", Web: "w"}
	if got := icon.For(PlatformMobile); got != "m" {
		t.Fatalf("For(mobile) = %q", got)
	}
	if got := icon.For(PlatformWeb); got != "w" {
		t.Fatalf("For(web) = %q", got)
	}
	if got := icon.For(Platform("other")); got != "w" {
		t.Fatalf("For(other) = %q, want web fallback", got)
	}
}
