package blocks

// Box-drawing pieces used by the document renderer.
const (
	verticalBar         = "│"
	verticalRightBar    = "├"
	horizontalBar       = "─"
	horizontalTopBar    = "┴"
	horizontalBottomBar = "┬"
	bottomRightCorner   = "╭"
	topRightCorner      = "╰"
	topLeftCorner       = "╯"
	middleDot           = "·"
	upPointer           = "^"
	rightArrow          = "▶"
	newLineMark         = "↩"
	skipMark            = "···    "
)
