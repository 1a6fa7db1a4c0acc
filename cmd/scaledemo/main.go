// Command scaledemo demonstrates the scale library.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"

	"github.com/narslan/scale"
	"github.com/narslan/scale/colors"
	"github.com/narslan/scale/interpolate"
)

func main() {
	var (
		colorList = flag.String("colors", "steelblue,orange", "ramp endpoints: names or hex")
		space     = flag.String("space", "oklab", "interpolation space: rgb, oklab or oklch")
		steps     = flag.Int("steps", 7, "number of ramp samples")
		ease      = flag.String("ease", "none", "easing: none, smoothstep or smootherstep")
		domain    = flag.String("domain", "0,1000", "linear domain lo,hi")
		tickCount = flag.Int("ticks", 5, "approximate tick count")
		lang      = flag.String("lang", "en", "BCP 47 tag for tick labels")
		bands     = flag.String("bands", "mon,tue,wed,thu,fri", "band categories")
		width     = flag.Float64("width", 500, "band range width")
		padding   = flag.Float64("padding", 0.1, "band padding")
		output    = flag.String("output", "", "optional PNG file for the color ramp")
	)
	flag.Parse()

	ramp, err := colorRamp(*colorList, *space, *ease)
	if err != nil {
		log.Fatalf("Failed to build ramp: %v", err)
	}
	swatches := sample(ramp, *steps)
	fmt.Println("ramp:")
	for i, c := range swatches {
		fmt.Printf("  %2d %s\n", i, c)
	}
	if *output != "" {
		if err := savePNG(*output, swatches); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Ramp saved to %s\n", *output)
	}

	if err := printTicks(*domain, *tickCount, *lang); err != nil {
		log.Fatalf("Failed to compute ticks: %v", err)
	}

	if err := printBands(*bands, *width, *padding); err != nil {
		log.Fatalf("Failed to lay out bands: %v", err)
	}
}

func colorRamp(list, space, ease string) (scale.Linear[colors.RGB], error) {
	names := strings.Split(list, ",")
	if len(names) != 2 {
		return scale.Linear[colors.RGB]{}, fmt.Errorf("need two colors, got %q", list)
	}
	c0, err := colors.Parse(strings.TrimSpace(names[0]))
	if err != nil {
		return scale.Linear[colors.RGB]{}, err
	}
	c1, err := colors.Parse(strings.TrimSpace(names[1]))
	if err != nil {
		return scale.Linear[colors.RGB]{}, err
	}

	var build interpolate.Builder[colors.RGB]
	switch space {
	case "rgb":
		build = interpolate.RGB
	case "oklab":
		build = interpolate.OKLab
	case "oklch":
		build = interpolate.OKLCH
	default:
		return scale.Linear[colors.RGB]{}, fmt.Errorf("unknown color space %q", space)
	}
	switch ease {
	case "none":
	case "smoothstep":
		build = interpolate.Eased(build, interpolate.Smoothstep)
	case "smootherstep":
		build = interpolate.Eased(build, interpolate.Smootherstep)
	default:
		return scale.Linear[colors.RGB]{}, fmt.Errorf("unknown easing %q", ease)
	}
	return scale.NewLinearOf(0, 1, c0, c1, build)
}

func sample(ramp scale.Linear[colors.RGB], steps int) []colors.RGB {
	if steps < 2 {
		steps = 2
	}
	out := make([]colors.RGB, steps)
	for i := range out {
		out[i] = ramp.Map(float64(i) / float64(steps-1))
	}
	return out
}

func savePNG(path string, swatches []colors.RGB) error {
	const swatchSize = 32

	strip := image.NewNRGBA(image.Rect(0, 0, len(swatches), 1))
	for i, c := range swatches {
		strip.Set(i, 0, c.Color())
	}
	dst := image.NewNRGBA(image.Rect(0, 0, len(swatches)*swatchSize, swatchSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), strip, strip.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printTicks(domain string, count int, lang string) error {
	lo, hi, err := parsePair(domain)
	if err != nil {
		return err
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return err
	}
	x, err := scale.NewLinear(lo, hi, 0, 1)
	if err != nil {
		return err
	}
	x = x.Nice(count)
	format := x.TickFormat(count, tag)

	d := x.Domain()
	fmt.Printf("ticks over [%s, %s]:", format(d[0]), format(d[1]))
	for _, t := range x.Ticks(count) {
		fmt.Printf(" %s", format(t))
	}
	fmt.Println()
	return nil
}

func printBands(list string, width, padding float64) error {
	keys := strings.Split(list, ",")
	b, err := scale.NewBand(keys, 0, width, scale.WithPadding(padding), scale.WithRound(true))
	if err != nil {
		return err
	}
	fmt.Printf("bands: step %g, bandwidth %g\n", b.Step(), b.Bandwidth())
	for _, k := range keys {
		x, _ := b.Map(k)
		fmt.Printf("  %-8s %6g\n", k, x)
	}
	return nil
}

func parsePair(s string) (float64, float64, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected lo,hi, got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
