package pixkit

import "fmt"

// Command paints a single cell of the game canvas when posted in chat.
type Command struct {
	X    int
	Y    int
	Code string
}

func (c Command) String() string {
	return fmt.Sprintf("!pixel %d,%d,%s", c.X, c.Y, c.Code)
}
