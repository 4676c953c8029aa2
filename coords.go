package jigsaw

// ScreenToNDC converts a pointer position in window pixels (origin top-left,
// Y down) to normalized device coordinates. A non-positive window size maps
// every pointer to the origin.
func ScreenToNDC(px, py, width, height float64) Vec2 {
	if width <= 0 || height <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: (px/width)*2 - 1,
		Y: 1 - (py/height)*2,
	}
}

// NDCToScreen is the inverse of ScreenToNDC.
func NDCToScreen(p Vec2, width, height float64) (float64, float64) {
	return (p.X + 1) / 2 * width, (1 - p.Y) / 2 * height
}
