// Command objmeasure is a demo CLI driving the measurement pipeline
// end to end: load a label image (and optionally an intensity image)
// from disk, run a requested set of features over it, print the
// resulting table, and optionally paint one feature back to a PNG.
//
// This is a demo harness, not a CLI product — scripting bindings and a
// full command-line tool suite remain out of scope.
package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/latticevision/objmeasure"
	"github.com/latticevision/objmeasure/paint"
	"github.com/latticevision/objmeasure/rasterimage"
	"github.com/latticevision/objmeasure/table"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("objmeasure - object-measurement engine demo CLI")
	fmt.Println()
	fmt.Println("Usage: objmeasure --label <path.png> [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --label <path>          Label image (PNG, grayscale channel quantized to object IDs)")
	fmt.Println("  --grey <path>           Optional intensity image (PNG, same size as --label)")
	fmt.Println("  --features <list>       Comma-separated feature names (default: Size)")
	fmt.Println("  --ids <list>            Comma-separated object IDs (default: all labels present)")
	fmt.Println("  --connectivity <n>      Chain-code connectivity, 1..dimensionality (default: 2)")
	fmt.Println("  --paint <feature>       Paint one feature's values back onto the label image")
	fmt.Println("  --paint-scale <n>       Upscale factor applied to the painted PNG (default: 1)")
	fmt.Println("  --out <path>            Output path for --paint (default: painted.png)")
	fmt.Println("  --version, -v           Print version information")
	fmt.Println("  --help, -h              Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  OBJMEASURE_LOG_LEVEL=debug    Enable debug logging")
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("objmeasure %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	args, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("argument error: %v", err)
	}
	if args.labelPath == "" {
		usage()
		os.Exit(1)
	}

	if os.Getenv("OBJMEASURE_LOG_LEVEL") == "debug" {
		log.Printf("objmeasure v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	label, err := loadLabel(args.labelPath)
	if err != nil {
		log.Fatalf("loading label image: %v", err)
	}
	var grey rasterimage.Image = &rasterimage.GreyImage{}
	if args.greyPath != "" {
		grey, err = loadGrey(args.greyPath)
		if err != nil {
			log.Fatalf("loading intensity image: %v", err)
		}
	}

	tool := objmeasure.NewTool()
	result, err := tool.Measure(label, grey, args.features, args.ids, args.connectivity)
	if err != nil {
		log.Fatalf("Measure: %v", err)
	}

	if err := objmeasure.Fprint(os.Stdout, result); err != nil {
		log.Fatalf("printing result table: %v", err)
	}

	if args.paintFeature != "" {
		if err := paintAndSave(label, result, args.paintFeature, args.paintScale, args.outPath); err != nil {
			log.Fatalf("painting %s: %v", args.paintFeature, err)
		}
	}
}

type cliArgs struct {
	labelPath    string
	greyPath     string
	features     []string
	ids          []uint32
	connectivity int
	paintFeature string
	paintScale   int
	outPath      string
}

func parseArgs(argv []string) (cliArgs, error) {
	args := cliArgs{features: []string{"Size"}, connectivity: 2, paintScale: 1, outPath: "painted.png"}
	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--label":
			i++
			args.labelPath = argv[i]
		case "--grey":
			i++
			args.greyPath = argv[i]
		case "--features":
			i++
			args.features = splitNonEmpty(argv[i])
		case "--ids":
			i++
			ids, err := parseIDs(argv[i])
			if err != nil {
				return args, err
			}
			args.ids = ids
		case "--connectivity":
			i++
			n, err := strconv.Atoi(argv[i])
			if err != nil {
				return args, fmt.Errorf("invalid --connectivity: %w", err)
			}
			args.connectivity = n
		case "--paint":
			i++
			args.paintFeature = argv[i]
		case "--paint-scale":
			i++
			n, err := strconv.Atoi(argv[i])
			if err != nil {
				return args, fmt.Errorf("invalid --paint-scale: %w", err)
			}
			args.paintScale = n
		case "--out":
			i++
			args.outPath = argv[i]
		default:
			return args, fmt.Errorf("unrecognized argument: %s", argv[i])
		}
	}
	return args, nil
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIDs(s string) ([]uint32, error) {
	var out []uint32
	for _, part := range splitNonEmpty(s) {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid object id %q: %w", part, err)
		}
		out = append(out, uint32(n))
	}
	return out, nil
}

func loadLabel(path string) (*rasterimage.LabelImage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	data := make([]uint32, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			data[y*cols+x] = uint32(r >> 8)
		}
	}
	return rasterimage.NewLabelImage([]int{rows, cols}, data), nil
}

func loadGrey(path string) (*rasterimage.GreyImage, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	data := make([]float64, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			data[y*cols+x] = float64(r >> 8)
		}
	}
	return rasterimage.NewGreyImage([]int{rows, cols}, 1, data), nil
}

// paintAndSave projects featureName's per-object values back onto
// label, colorizes the result, optionally upscales it with
// Catmull-Rom interpolation, and writes it to outPath as a PNG.
func paintAndSave(label rasterimage.Image, result *table.Table, featureName string, scale int, outPath string) error {
	view, err := result.FeatureByName(featureName)
	if err != nil {
		return fmt.Errorf("unknown feature %q in result table: %w", featureName, err)
	}
	painted, err := paint.ObjectToMeasurement(label, view)
	if err != nil {
		return err
	}
	colored, err := paint.Colorize(painted)
	if err != nil {
		return err
	}
	if scale > 1 {
		b := colored.Bounds()
		scaled := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), colored, b, draw.Over, nil)
		colored = scaled
	}
	return imaging.Save(colored, outPath)
}
