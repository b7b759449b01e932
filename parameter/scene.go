package parameter

// Stock scene
const (
	SceneTitle = "Bouncy Ball"

	SceneWidth  = 800
	SceneHeight = 600

	// SceneBallX and SceneBallY place the stock ball near the centre of the viewport
	SceneBallX = 376.0
	SceneBallY = 276.0
)
