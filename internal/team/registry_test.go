package team

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Real Madrid!! ", "real madrid"},
		{"1. Arsenal", "arsenal"},
		{"ရီးရဲ", "ရီးရဲ"},
		{"***လီပါပူး***", "လီပါပူး"},
		{"12345", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuiltinAliases(t *testing.T) {
	r := NewRegistry(nil, nil)
	cases := []struct {
		token string
		want  string
	}{
		{"ရီးရဲ", "Real Madrid"},
		{"man city", "Manchester City"},
		{"နယူး", "Newcastle"},
	}
	for _, tc := range cases {
		got, ok := r.Alias(Normalize(tc.token))
		if !ok || got != tc.want {
			t.Errorf("Alias(%q) = %q, %v; want %q", tc.token, got, ok, tc.want)
		}
	}
}

func TestAliasPhraseContainment(t *testing.T) {
	r := NewRegistry(nil, nil)
	got, ok := r.Alias(Normalize("Tottenham Hotspur FC"))
	if !ok || got != "Tottenham" {
		t.Errorf("Alias containment = %q, %v; want Tottenham", got, ok)
	}
}

func TestAliasMissAndEmptyToken(t *testing.T) {
	r := NewRegistry(nil, nil)
	if _, ok := r.Alias("levante"); ok {
		t.Errorf("unexpected alias hit for levante")
	}
	if _, ok := r.Alias(""); ok {
		t.Errorf("empty token must not match")
	}
}

func TestConfigExtrasExtendRegistry(t *testing.T) {
	r := NewRegistry([]string{"Girona"}, map[string]string{"ဂျီရိုနာ": "Girona"})

	if !r.Has("girona") {
		t.Fatalf("extra team not registered")
	}
	got, ok := r.Alias(Normalize("ဂျီရိုနာ"))
	if !ok || got != "Girona" {
		t.Errorf("extra alias = %q, %v; want Girona", got, ok)
	}

	teams := r.Teams()
	if teams[len(teams)-1] != "Girona" {
		t.Errorf("extra team should be appended last, got %v", teams[len(teams)-1])
	}
}

func TestCanonicalLookup(t *testing.T) {
	r := NewRegistry(nil, nil)
	got, ok := r.Canonical("real madrid")
	if !ok || got != "Real Madrid" {
		t.Errorf("Canonical(real madrid) = %q, %v", got, ok)
	}
	if _, ok := r.Canonical("Levante"); ok {
		t.Errorf("Levante must not be canonical")
	}
}
