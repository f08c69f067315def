package color

import "fmt"

// Channel selects one color byte of a pixel.
//
// Names follow the byte offset, not the stored color: TGA keeps pixels as
// B,G,R but offset 0 is labeled Red, 1 Green and 2 Blue.
type Channel int

// Channel constants in offset order.
const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists every selectable channel.
var Channels = []Channel{Red, Green, Blue}

// Offset returns the byte offset of the channel within a pixel.
func (c Channel) Offset() int {
	return int(c)
}

// Valid reports whether c is one of Red, Green or Blue.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}
