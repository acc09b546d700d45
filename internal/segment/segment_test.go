package segment

import "testing"

func TestSplitProducesOneBlockPerHeader(t *testing.T) {
	text := "John, [1/2/2024 9:30 AM]\n" +
		"Real Madrid\n" +
		"09123456789\n" +
		"Mary, [1/2/2024 10:05 PM]\n" +
		"Arsenal\n"

	blocks := Split(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Name != "John" {
		t.Errorf("block 0 name = %q, want John", blocks[0].Name)
	}
	if len(blocks[0].Lines) != 2 {
		t.Errorf("block 0 lines = %v, want 2 lines", blocks[0].Lines)
	}
	if blocks[1].Name != "Mary" {
		t.Errorf("block 1 name = %q, want Mary", blocks[1].Name)
	}
	if len(blocks[1].Lines) != 1 || blocks[1].Lines[0] != "Arsenal" {
		t.Errorf("block 1 lines = %v, want [Arsenal]", blocks[1].Lines)
	}
}

func TestNearHeaderLinesStayBodyLines(t *testing.T) {
	cases := []string{
		"Results, [1/2/2024 9:30]",       // no AM/PM
		"Odds, [1/2/24 9:30 AM]",         // two-digit year
		"Score 2/1 at [9:30 PM]",         // no date
		"Kickoff, [13/2/2024 930 AM]",    // missing colon
	}
	for _, line := range cases {
		text := "John, [1/2/2024 9:30 AM]\n" + line + "\n"
		blocks := Split(text)
		if len(blocks) != 1 {
			t.Fatalf("%q: expected 1 block, got %d", line, len(blocks))
		}
		if len(blocks[0].Lines) != 1 || blocks[0].Lines[0] != line {
			t.Errorf("%q: expected the line kept as body, got %v", line, blocks[0].Lines)
		}
	}
}

func TestContentBeforeFirstHeaderDiscarded(t *testing.T) {
	text := "exported chat\nsome preamble\nJohn, [1/2/2024 9:30 AM]\nChelsea\n"
	blocks := Split(text)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0].Lines) != 1 || blocks[0].Lines[0] != "Chelsea" {
		t.Errorf("lines = %v, want [Chelsea]", blocks[0].Lines)
	}
}

func TestSplitEmptyAndHeaderlessInput(t *testing.T) {
	if blocks := Split(""); len(blocks) != 0 {
		t.Errorf("empty input: expected 0 blocks, got %d", len(blocks))
	}
	if blocks := Split("just\nsome\ntext\n"); len(blocks) != 0 {
		t.Errorf("headerless input: expected 0 blocks, got %d", len(blocks))
	}
}

func TestSplitTrimsAndDropsBlankLines(t *testing.T) {
	text := "John, [1/2/2024 9:30 AM]\r\n\r\n  Liverpool  \r\n\n"
	blocks := Split(text)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0].Lines) != 1 || blocks[0].Lines[0] != "Liverpool" {
		t.Errorf("lines = %v, want [Liverpool]", blocks[0].Lines)
	}
}

func TestHeaderNameCaseInsensitiveMeridiem(t *testing.T) {
	if name := HeaderName("Ko Ko, [12/31/2023 11:59 pm]"); name != "Ko Ko" {
		t.Errorf("HeaderName = %q, want Ko Ko", name)
	}
}
