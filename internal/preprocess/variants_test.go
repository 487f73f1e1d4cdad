package preprocess

import (
	"image"
	"image/color"
	"testing"
)

// uniformImage returns a solid-color NRGBA image.
func uniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestBuildVariants_OrderAndNames(t *testing.T) {
	img := uniformImage(64, 48, color.NRGBA{120, 130, 140, 255})

	variants := BuildVariants(img)

	wantNames := []string{"Original", "CLAHE", "Denoised", "Sharpened"}
	if len(variants) != len(wantNames) {
		t.Fatalf("got %d variants, want %d", len(variants), len(wantNames))
	}
	for i, want := range wantNames {
		if variants[i].Name != want {
			t.Errorf("variants[%d].Name = %q, want %q", i, variants[i].Name, want)
		}
		b := variants[i].Image.Bounds()
		if b.Dx() != 64 || b.Dy() != 48 {
			t.Errorf("variant %q dimensions = %dx%d, want 64x48", want, b.Dx(), b.Dy())
		}
	}
}

func TestFlatten_DropsAlpha(t *testing.T) {
	img := uniformImage(10, 10, color.NRGBA{200, 100, 50, 255})
	img.SetNRGBA(3, 3, color.NRGBA{10, 20, 30, 0})   // fully transparent
	img.SetNRGBA(4, 4, color.NRGBA{10, 20, 30, 128}) // semi-transparent

	flat := Flatten(img)

	b := flat.Bounds()
	if b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("flattened dimensions = %dx%d, want 10x10", b.Dx(), b.Dy())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			_, _, _, a := flat.At(x, y).RGBA()
			if a>>8 != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a>>8)
			}
		}
	}
}

func TestFlatten_PreservesOpaqueColors(t *testing.T) {
	img := uniformImage(8, 8, color.NRGBA{200, 100, 50, 255})

	flat := Flatten(img)

	r, g, b, _ := flat.At(4, 4).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("pixel = (%d, %d, %d), want (200, 100, 50)", r>>8, g>>8, b>>8)
	}
}

func TestFlatten_NormalizesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 7, 25, 27))

	flat := Flatten(src)

	if got := flat.Bounds(); got.Min.X != 0 || got.Min.Y != 0 || got.Dx() != 20 || got.Dy() != 20 {
		t.Errorf("bounds = %v, want origin (0,0) with 20x20 size", got)
	}
}

func TestSharpened_UniformImageUnchanged(t *testing.T) {
	// The sharpen kernel sums to 1, so a flat region must pass through
	// unmodified.
	img := uniformImage(32, 32, color.NRGBA{128, 128, 128, 255})

	variants := BuildVariants(img)
	sharpened := variants[3].Image

	r, g, b, _ := sharpened.At(16, 16).RGBA()
	if r>>8 != 128 || g>>8 != 128 || b>>8 != 128 {
		t.Errorf("sharpened uniform pixel = (%d, %d, %d), want (128, 128, 128)", r>>8, g>>8, b>>8)
	}
}

func TestSharpened_AmplifiesEdges(t *testing.T) {
	// Dark-to-bright vertical step: sharpening overshoots on both sides of
	// the edge, so the bright side's edge column clips brighter than the
	// interior.
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			v := uint8(60)
			if x >= 16 {
				v = 180
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 255})
		}
	}

	variants := BuildVariants(img)
	sharpened := variants[3].Image

	interior, _, _, _ := sharpened.At(24, 16).RGBA()
	edge, _, _, _ := sharpened.At(16, 16).RGBA()
	if edge>>8 <= interior>>8 {
		t.Errorf("edge column = %d, interior = %d; sharpening should overshoot at the step", edge>>8, interior>>8)
	}
}

func TestDenoised_RemovesImpulseNoise(t *testing.T) {
	img := uniformImage(32, 32, color.NRGBA{100, 100, 100, 255})
	img.SetNRGBA(16, 16, color.NRGBA{255, 255, 255, 255}) // lone bright pixel

	variants := BuildVariants(img)
	denoised := variants[2].Image

	r, _, _, _ := denoised.At(16, 16).RGBA()
	if r>>8 > 110 {
		t.Errorf("impulse pixel after denoise = %d, want close to background 100", r>>8)
	}
}
