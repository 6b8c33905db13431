package card

import "strconv"

type Value int

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var valueNames = map[Value]string{
	Skip:         "Skip",
	Reverse:      "Reverse",
	DrawTwo:      "Draw Two",
	Wild:         "Wild",
	WildDrawFour: "Wild Draw Four",
}

func (v Value) IsNumber() bool {
	return v >= Zero && v <= Nine
}

// IsDraw reports whether v forces the next player to draw.
func (v Value) IsDraw() bool {
	return v == DrawTwo || v == WildDrawFour
}

func (v Value) String() string {
	if v.IsNumber() {
		return strconv.Itoa(int(v))
	}
	if name, ok := valueNames[v]; ok {
		return name
	}
	return "Value(" + strconv.Itoa(int(v)) + ")"
}
