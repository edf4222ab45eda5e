package text

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "RaidTeam", "raidteam"},
		{"strips punctuation and spaces", "Movie-Night!", "movienight"},
		{"strips markup tokens", "fans of <:Silhouette:1176360845295489024>", "fansof"},
		{"strips animated markup tokens", "party <a:party:123> crew", "partycrew"},
		{"keeps digits", "Team 7", "team7"},
		{"empty input", "", ""},
		{"only punctuation", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEquivalentNames(t *testing.T) {
	if Normalize("Movie-Night 🎬") != Normalize("movienight") {
		t.Error("expected decorated and plain spellings to normalize identically")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Raid Team", "movie-night", "<a:x:1> Fun Crew 42"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestChunkSingleChunk(t *testing.T) {
	var chunks []string
	for c := range Chunk("short", []string{", "}, 8, 1900) {
		chunks = append(chunks, c)
	}
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Errorf("expected single chunk [short], got %v", chunks)
	}
}

func TestChunkSplitsAtDelimiter(t *testing.T) {
	var chunks []string
	for c := range Chunk("a, b, c, d", []string{", "}, 0, 6) {
		chunks = append(chunks, c)
	}

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %v", chunks)
	}
	for _, c := range chunks {
		if len(c) > 6 {
			t.Errorf("chunk %q exceeds max length 6", c)
		}
	}
	if got := strings.Join(chunks, ""); got != "a, b, c, d" {
		t.Errorf("concatenated chunks = %q, want original input", got)
	}
}

func TestChunkHardCutWithoutDelimiter(t *testing.T) {
	input := strings.Repeat("x", 25)
	var chunks []string
	for c := range Chunk(input, []string{"\n"}, 0, 10) {
		chunks = append(chunks, c)
	}

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %v", len(chunks), chunks)
	}
	for i, c := range chunks[:2] {
		if len(c) != 10 {
			t.Errorf("chunk %d has length %d, want 10", i, len(c))
		}
	}
	if got := strings.Join(chunks, ""); got != input {
		t.Error("concatenated chunks do not reconstruct the input")
	}
}

func TestChunkRespectsShortenBy(t *testing.T) {
	input := strings.Repeat("y", 50)
	for c := range Chunk(input, nil, 8, 20) {
		if len(c) > 12 {
			t.Errorf("chunk length %d exceeds window 12", len(c))
		}
	}
}

func TestChunkReiterable(t *testing.T) {
	seq := Chunk(strings.Repeat("z", 30), nil, 0, 10)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != second {
		t.Errorf("sequence not reiterable: %d != %d", first, second)
	}
}

func TestReadableList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"a"}, "a"},
		{"pair", []string{"a", "b"}, "a and b"},
		{"three", []string{"a", "b", "c"}, "a, b, and c"},
		{"four", []string{"a", "b", "c", "d"}, "a, b, c, and d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadableList(tt.items); got != tt.want {
				t.Errorf("ReadableList(%v) = %q, want %q", tt.items, got, tt.want)
			}
		})
	}
}
