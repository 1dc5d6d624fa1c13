package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// Fallback sheet geometry.
const (
	FallbackFrameSize   = 32
	FallbackFrameCount  = 5
	FallbackSheetWidth  = FallbackFrameSize * FallbackFrameCount
	FallbackSheetHeight = 48
	HeartSpriteWidth    = 13
	HeartSpriteHeight   = 12
)

var (
	capRed      = color.RGBA{0xE5, 0x25, 0x21, 0xFF}
	skin        = color.RGBA{0xF8, 0xC8, 0x98, 0xFF}
	overallBlue = color.RGBA{0x01, 0x65, 0xB3, 0xFF}
	shoeBrown   = color.RGBA{0x8B, 0x45, 0x13, 0xFF}
	hairBrown   = color.RGBA{0x5C, 0x33, 0x17, 0xFF}
	white       = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	black       = color.RGBA{0x00, 0x00, 0x00, 0xFF}

	brick        = color.RGBA{0xC8, 0x78, 0x38, 0xFF}
	brickOutline = color.RGBA{0x8B, 0x45, 0x13, 0xFF}
	brickPit     = color.RGBA{0xA0, 0x60, 0x20, 0xFF}
)

type pixelRect struct {
	x, y, w, h int
	c          color.RGBA
}

func fill(img *image.RGBA, r pixelRect) {
	draw.Draw(img, image.Rect(r.x, r.y, r.x+r.w, r.y+r.h), image.NewUniform(r.c), image.Point{}, draw.Src)
}

// FallbackCharacterSheet draws a five-frame pixel-art runner. Odd frames
// shift the legs to give a two-step gait.
func FallbackCharacterSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FallbackSheetWidth, FallbackSheetHeight))
	for frame := 0; frame < FallbackFrameCount; frame++ {
		ox := frame * FallbackFrameSize
		leg := 0
		if frame%2 == 1 {
			leg = 2
		}
		for _, r := range []pixelRect{
			{ox + 4, 2, 24, 8, capRed},
			{ox + 8, 0, 16, 4, capRed},
			{ox + 4, 4, 10, 3, white},
			{ox + 12, 2, 6, 5, white},
			{ox + 20, 4, 8, 4, hairBrown},
			{ox + 6, 10, 20, 14, skin},
			{ox + 8, 12, 3, 3, black},
			{ox + 19, 12, 3, 3, black},
			{ox + 6, 18, 6, 2, black},
			{ox + 20, 18, 6, 2, black},
			{ox + 6, 24, 20, 12, capRed},
			{ox + 8, 24, 16, 10, overallBlue},
			{ox + 10, 24, 4, 12, overallBlue},
			{ox + 18, 24, 4, 12, overallBlue},
			{ox + 12, 26, 2, 2, white},
			{ox + 18, 26, 2, 2, white},
			{ox + 2, 26, 5, 10, skin},
			{ox + 25, 26, 5, 10, skin},
			{ox + 2, 34, 5, 5, white},
			{ox + 25, 34, 5, 5, white},
			{ox + 6 + leg, 36, 8, 12, overallBlue},
			{ox + 18 - leg, 36, 8, 12, overallBlue},
			{ox + 6 + leg, 46, 8, 2, shoeBrown},
			{ox + 18 - leg, 46, 8, 2, shoeBrown},
		} {
			fill(img, r)
		}
	}
	return img
}

// FallbackGroundTile draws a single brick tile with an outline and four
// corner pits.
func FallbackGroundTile(tile int) *image.RGBA {
	const outline, pit, inset = 2, 4, 6
	img := image.NewRGBA(image.Rect(0, 0, tile, tile))
	fill(img, pixelRect{0, 0, tile, tile, brick})

	fill(img, pixelRect{0, 0, tile, outline, brickOutline})
	fill(img, pixelRect{0, tile - outline, tile, outline, brickOutline})
	fill(img, pixelRect{0, 0, outline, tile, brickOutline})
	fill(img, pixelRect{tile - outline, 0, outline, tile, brickOutline})

	far := tile - inset - pit
	for _, p := range [][2]int{{inset, inset}, {far, inset}, {inset, far}, {far, far}} {
		fill(img, pixelRect{p[0], p[1], pit, pit, brickPit})
	}
	return img
}

var heartRows = []struct {
	c      color.RGBA
	pixels [][2]int
}{
	{black, [][2]int{
		{1, 0}, {2, 0}, {3, 0}, {9, 0}, {10, 0}, {11, 0},
		{0, 1}, {4, 1}, {8, 1}, {12, 1},
		{0, 2}, {12, 2}, {0, 3}, {12, 3},
		{1, 4}, {11, 4}, {2, 5}, {10, 5}, {3, 6}, {9, 6},
		{4, 7}, {8, 7}, {5, 8}, {7, 8}, {6, 9},
	}},
	{capRed, [][2]int{
		{1, 1}, {2, 1}, {3, 1}, {9, 1}, {10, 1}, {11, 1},
		{1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {6, 2}, {7, 2}, {8, 2}, {9, 2}, {10, 2}, {11, 2},
		{1, 3}, {2, 3}, {3, 3}, {4, 3}, {5, 3}, {6, 3}, {7, 3}, {8, 3}, {9, 3}, {10, 3}, {11, 3},
		{2, 4}, {3, 4}, {4, 4}, {5, 4}, {6, 4}, {7, 4}, {8, 4}, {9, 4}, {10, 4},
		{3, 5}, {4, 5}, {5, 5}, {6, 5}, {7, 5}, {8, 5}, {9, 5},
		{4, 6}, {5, 6}, {6, 6}, {7, 6}, {8, 6},
		{5, 7}, {6, 7}, {7, 7},
		{6, 8},
	}},
	{color.RGBA{0xA0, 0x10, 0x10, 0xFF}, [][2]int{
		{10, 3}, {11, 3}, {9, 4}, {10, 4}, {8, 5}, {9, 5}, {7, 6}, {8, 6}, {7, 7},
	}},
	{color.RGBA{0xFF, 0x6B, 0x6B, 0xFF}, [][2]int{
		{2, 1}, {3, 1}, {10, 1}, {11, 1}, {1, 2}, {2, 2}, {10, 2}, {11, 2},
	}},
	{color.RGBA{0xFF, 0xC0, 0xC0, 0xFF}, [][2]int{
		{2, 1}, {10, 1},
	}},
}

// FallbackHeart draws the 13x12 pixel heart, layered outline first and
// specular last.
func FallbackHeart() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, HeartSpriteWidth, HeartSpriteHeight))
	for _, layer := range heartRows {
		for _, p := range layer.pixels {
			img.SetRGBA(p[0], p[1], layer.c)
		}
	}
	return img
}
