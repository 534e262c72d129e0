package render

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color" // This is the standard library color package
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/arcanaland/mysticguide/internal/card"
)

// Art dimensions in terminal cells
const (
	ArtWidth  = 40
	ArtHeight = 32
)

// FindCardImage returns the local image file for c under imageDir
func FindCardImage(imageDir string, c card.Card) (string, error) {
	if imageDir == "" {
		return "", fmt.Errorf("no image directory configured")
	}
	if c.Image == "" {
		return "", fmt.Errorf("card %s has no image", c.ID)
	}

	base := filepath.Base(c.Image)
	candidates := []string{
		filepath.Join(imageDir, base),
		filepath.Join(imageDir, filepath.FromSlash(strings.TrimPrefix(c.Image, "/"))),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no image found for card %s in %s", c.ID, imageDir)
}

// LoadArt returns ANSI art for c, generating and caching it from the local
// card image on first use
func LoadArt(imageDir, cacheDir string, c card.Card) (string, error) {
	imagePath, err := FindCardImage(imageDir, c)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	// Create a cache filename based on the image path
	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(imagePath))))

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	if err := GenerateANSIArt(imagePath, cachePath); err != nil {
		return "", fmt.Errorf("failed to generate ANSI art: %w", err)
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GenerateANSIArt converts an image file to ANSI art and saves it to outputPath
func GenerateANSIArt(imagePath, outputPath string) error {
	file, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	art := ImageToANSI(img, ArtWidth, ArtHeight)

	if err := os.WriteFile(outputPath, []byte(art), 0644); err != nil {
		return fmt.Errorf("failed to write ANSI art to file: %w", err)
	}
	return nil
}

// ImageToANSI renders img as width x height cells of upper half blocks in
// 24-bit color, one terminal line per row
func ImageToANSI(img image.Image, width, height int) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// Top pixels as foreground, bottom pixels as background
			col1, _ := colorful.MakeColor(colorAt(resized, x, y))
			col2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			fg := averageColor(col1, col2)
			bg := averageColor(col3, col4)

			buffer.WriteString(halfBlock(fg, bg))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// colorAt returns the color at a coordinate, black when out of bounds
func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}.Clamped()
}

// halfBlock formats an upper half block with foreground and background colors
func halfBlock(fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m", r1, g1, b1, r2, g2, b2)
}
