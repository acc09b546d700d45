package classify

import "testing"

func TestPhoneLinesAreAccounts(t *testing.T) {
	cases := []struct {
		line string
		id   string
	}{
		{"09123456789", "09123456789"},
		{"+959123456789", "959123456789"},
		{"my number 09777123456 thanks", "09777123456"},
	}
	cls := New("John", nil)
	for _, tc := range cases {
		cat, id := cls.Classify(tc.line)
		if cat != Account {
			t.Errorf("%q: category = %s, want account", tc.line, cat)
		}
		if id != tc.id {
			t.Errorf("%q: id = %q, want %q", tc.line, id, tc.id)
		}
	}
}

func TestKeywordLinesAreAccounts(t *testing.T) {
	cls := New("John", nil)
	for _, line := range []string{"OKBet aung123", "ok bet id 55", "slot player"} {
		if cat, _ := cls.Classify(line); cat != Account {
			t.Errorf("%q: category = %s, want account", line, cat)
		}
	}
}

func TestAccountWinsOverTeamCandidate(t *testing.T) {
	// a line carrying both a phone number and a team name must never be
	// read as a team pick
	cls := New("John", nil)
	cat, id := cls.Classify("Real Madrid 09123456789")
	if cat != Account {
		t.Fatalf("category = %s, want account", cat)
	}
	if id != "09123456789" {
		t.Errorf("id = %q, want the digit run", id)
	}
}

func TestRepeatedDisplayNameSkipped(t *testing.T) {
	cls := New("John", nil)
	if cat, _ := cls.Classify("John"); cat != Skipped {
		t.Errorf("display name line: category = %s, want skipped", cat)
	}
	if cat, _ := cls.Classify("john"); cat != Skipped {
		t.Errorf("case-folded display name: category = %s, want skipped", cat)
	}
}

func TestOrdinalPrefixStripped(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"1. Real Madrid", "Real Madrid"},
		{"2) Arsenal", "Arsenal"},
		{"- Chelsea", "Chelsea"},
		{"3 - Liverpool", "Liverpool"},
		{"Everton", "Everton"},
	}
	cls := New("John", nil)
	for _, tc := range cases {
		cat, value := cls.Classify(tc.line)
		if cat != TeamCandidate {
			t.Errorf("%q: category = %s, want team-candidate", tc.line, cat)
		}
		if value != tc.want {
			t.Errorf("%q: value = %q, want %q", tc.line, value, tc.want)
		}
	}
}

func TestCustomKeywords(t *testing.T) {
	cls := New("John", []string{"wallet"})
	if cat, _ := cls.Classify("my wallet id abc"); cat != Account {
		t.Errorf("custom keyword not honored")
	}
	// defaults replaced, not merged
	if cat, _ := cls.Classify("okbet something"); cat != TeamCandidate {
		t.Errorf("default keyword should not apply with custom set")
	}
}
