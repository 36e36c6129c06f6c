package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolStringRoundTrip(t *testing.T) {
	for _, tool := range []Tool{ToolFreehand, ToolLine, ToolRectangle, ToolCircle} {
		assert.Equal(t, tool, ParseTool(tool.String()))
	}
}

func TestParseToolUnknownFallsBack(t *testing.T) {
	assert.Equal(t, ToolFreehand, ParseTool(""))
	assert.Equal(t, ToolFreehand, ParseTool("spline"))
}
