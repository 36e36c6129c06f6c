package sketch

import "fmt"

// Tool identifies one of the drawing modes.
type Tool int

const (
	ToolFreehand Tool = iota
	ToolLine
	ToolRectangle
	ToolCircle
)

func (t Tool) String() string {
	switch t {
	case ToolFreehand:
		return "freehand"
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// ParseTool is the inverse of String. Unknown names fall back to freehand.
func ParseTool(name string) Tool {
	switch name {
	case "line":
		return ToolLine
	case "rectangle":
		return ToolRectangle
	case "circle":
		return ToolCircle
	default:
		return ToolFreehand
	}
}

// Point is a position in surface pixels.
type Point struct {
	X float64
	Y float64
}
