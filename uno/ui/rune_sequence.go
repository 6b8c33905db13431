package ui

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

// labels returns amount consecutive option labels: A, B, C...
func labels(amount int) []string {
	sequence := runeSequence{}
	result := make([]string, amount)
	for i := range result {
		result[i] = string(sequence.next())
	}
	return result
}
