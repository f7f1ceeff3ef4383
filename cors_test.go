package herald

import "testing"

func TestResolveOriginDevelopmentEchoes(t *testing.T) {
	got := ResolveOrigin("https://evil.test", []string{"https://a.test"}, DevelopmentPolicy())
	if got != "https://evil.test" {
		t.Errorf("Development must echo the request origin, got %q", got)
	}
}

func TestResolveOriginEmptyAllowList(t *testing.T) {
	if got := ResolveOrigin("https://a.test", nil, ProductionPolicy()); got != "https://a.test" {
		t.Errorf("Empty allow-list must echo the request origin, got %q", got)
	}
	if got := ResolveOrigin("", nil, ProductionPolicy()); got != "*" {
		t.Errorf("Empty allow-list and absent origin must yield the wildcard, got %q", got)
	}
}

func TestResolveOriginAbsentOrigin(t *testing.T) {
	allowed := []string{"https://a.test", "https://b.test"}
	if got := ResolveOrigin("", allowed, ProductionPolicy()); got != "https://a.test" {
		t.Errorf("Absent origin must yield the first allowed entry, got %q", got)
	}
}

func TestResolveOriginExactMatch(t *testing.T) {
	allowed := []string{"https://a.test", "https://b.test"}
	if got := ResolveOrigin("https://b.test", allowed, ProductionPolicy()); got != "https://b.test" {
		t.Errorf("Exact match must be returned, got %q", got)
	}
}

// Mismatches deliberately fall back to the first allowed origin instead of
// refusing. This is the documented production policy, not strict CORS
// validation: callers needing rejection must not rely on this resolver.
func TestResolveOriginMismatchFallsBackToFirst(t *testing.T) {
	allowed := []string{"https://a.test"}
	if got := ResolveOrigin("https://evil.test", allowed, ProductionPolicy()); got != "https://a.test" {
		t.Errorf("Mismatch must fall back to the first allowed origin, got %q", got)
	}
}

func TestResolveOriginLocalhostAliases(t *testing.T) {
	allowed := []string{"http://localhost:3000"}
	policy := OriginPolicy{AllowAnyLocalhost: true}

	if got := ResolveOrigin("http://127.0.0.1:5173", allowed, policy); got != "http://127.0.0.1:5173" {
		t.Errorf("Localhost aliases must be interchangeable, got %q", got)
	}
	if got := ResolveOrigin("http://0.0.0.0:8080", allowed, policy); got != "http://0.0.0.0:8080" {
		t.Errorf("0.0.0.0 must count as a localhost alias, got %q", got)
	}

	// Flexibility disabled: mismatching alias falls back.
	if got := ResolveOrigin("http://127.0.0.1:5173", allowed, ProductionPolicy()); got != "http://localhost:3000" {
		t.Errorf("Disabled flexibility must fall back to the allow-list, got %q", got)
	}
}

func TestResolveOriginAnyPort(t *testing.T) {
	allowed := []string{"https://app.example.com:8443"}
	policy := OriginPolicy{AllowAnyPort: true}

	if got := ResolveOrigin("https://app.example.com:9000", allowed, policy); got != "https://app.example.com:9000" {
		t.Errorf("Port-insensitive match must accept the request origin, got %q", got)
	}
	if got := ResolveOrigin("https://other.example.com:9000", allowed, policy); got != "https://app.example.com:8443" {
		t.Errorf("Different hostname must still fall back, got %q", got)
	}
}

func TestOriginHost(t *testing.T) {
	cases := []struct {
		origin string
		want   string
	}{
		{"https://app.example.com:8443", "app.example.com"},
		{"http://localhost:3000", "localhost"},
		{"https://plain.example.com", "plain.example.com"},
		{"localhost:9090", "localhost"},
	}
	for _, tc := range cases {
		if got := originHost(tc.origin); got != tc.want {
			t.Errorf("originHost(%q): expected %q, got %q", tc.origin, tc.want, got)
		}
	}
}
