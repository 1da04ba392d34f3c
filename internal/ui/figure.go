package ui

// gallows is the full figure; parts reveal one per miss.
var gallows = []string{
	"  +---+",
	"  |   |",
	"      |",
	"      |",
	"      |",
	"      |",
	"=========",
}

// bodyParts lists where each miss draws: line, column, rune.
var bodyParts = []struct {
	line, col int
	ch        rune
}{
	{2, 2, 'O'},
	{3, 2, '|'},
	{3, 1, '/'},
	{3, 3, '\\'},
	{4, 1, '/'},
	{4, 3, '\\'},
}

// figureLines returns the hangman drawing after the given number of misses.
func figureLines(misses int) []string {
	lines := make([][]rune, len(gallows))
	for i, l := range gallows {
		lines[i] = []rune(l)
	}
	for i := 0; i < misses && i < len(bodyParts); i++ {
		p := bodyParts[i]
		lines[p.line][p.col] = p.ch
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = string(l)
	}
	return out
}
