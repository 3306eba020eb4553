package chat

// Chamber is the echo mode chosen from the user's first answer.
type Chamber string

const (
	ChamberNone     Chamber = ""
	ChamberPositive Chamber = "positive"
	ChamberNegative Chamber = "negative"
)

// Valid reports whether the chamber is one of the two echo modes.
func (c Chamber) Valid() bool {
	return c == ChamberPositive || c == ChamberNegative
}
