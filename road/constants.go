package road

// Fixed geometry of the road. These are compile-time constants and are not
// exposed through configuration.
const (
	CanvasWidth   = 640
	CanvasHeight  = 480
	RoadWidth     = 2000.0 // half-width basis in world units
	SegmentLength = 200.0
	RumbleLength  = 3 // segments per stripe
	DrawDistance  = 300
	CameraHeight  = 1000.0
	CameraDepth   = 0.84
	Lanes         = 3

	// SegmentCount is the number of segments in one lap of the track
	SegmentCount = 500
)
