// Command glcm computes Haralick texture features over regions of a grey image.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"glcm-texture/internal/analysis"
	"glcm-texture/internal/config"
	"glcm-texture/internal/glcm"
	"glcm-texture/internal/imageio"
	"glcm-texture/internal/logging"
	"glcm-texture/internal/report"
	"glcm-texture/internal/roi"
	"glcm-texture/internal/version"
	"glcm-texture/pkg/geometry"
)

type options struct {
	imagePath  string
	configPath string
	saveConfig string
	levels     int
	distance   int
	features   string
	maskPath   string
	openCV     bool
	csvPath    string
	jsonPath   string
	logLevel   string
	logJSON    bool
	rects      []geometry.RectInt
	polygons   [][]geometry.PointInt
}

func main() {
	var opts options
	flag.StringVar(&opts.imagePath, "image", "", "Path to image (TIFF, PNG, JPEG or BMP)")
	flag.StringVar(&opts.configPath, "config", "", "Analysis settings JSON file")
	flag.StringVar(&opts.saveConfig, "save-config", "", "Write the effective settings to this file")
	flag.IntVar(&opts.levels, "levels", roi.MaxLevels, "Grey levels Ng (1-256)")
	flag.IntVar(&opts.distance, "distance", 1, "Neighbour distance in pixels")
	flag.StringVar(&opts.features, "features", "", "Comma-separated feature names (default all)")
	flag.StringVar(&opts.maskPath, "mask", "", "Mask image restricting -rect and -polygon regions")
	flag.BoolVar(&opts.openCV, "opencv", false, "Load images and rasterise polygons with OpenCV")
	flag.StringVar(&opts.csvPath, "csv", "", "Write results as CSV")
	flag.StringVar(&opts.jsonPath, "json", "", "Write results as JSON")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.logJSON, "log-json", false, "Log JSON lines instead of console output")
	flag.Func("rect", "Rectangle region x,y,w,h (repeatable)", func(s string) error {
		r, err := geometry.ParseRect(s)
		if err != nil {
			return err
		}
		opts.rects = append(opts.rects, r)
		return nil
	})
	flag.Func("polygon", "Polygon region x1,y1;x2,y2;... (repeatable)", func(s string) error {
		pts, err := geometry.ParsePoints(s)
		if err != nil {
			return err
		}
		if _, err := geometry.NewPolygon(pts); err != nil {
			return err
		}
		opts.polygons = append(opts.polygons, pts)
		return nil
	})
	showVersion := flag.Bool("version", false, "Print version and exit")
	listFeatures := flag.Bool("list-features", false, "List feature names and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("glcm"))
		return
	}
	if *listFeatures {
		for _, ft := range glcm.AllFeatures() {
			fmt.Println(ft)
		}
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "glcm: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	var log zerolog.Logger
	if opts.logJSON {
		log = logging.New(os.Stderr, level)
	} else {
		log = logging.NewConsole(level)
	}

	imagePath := opts.imagePath
	if imagePath == "" {
		imagePath = config.ResolvePath(opts.configPath, settings.ImagePath)
	}
	if imagePath == "" {
		flag.Usage()
		return fmt.Errorf("no image given")
	}

	img, err := loadImage(imagePath, settings.UseOpenCV)
	if err != nil {
		return err
	}
	log.Info().
		Str("image", imagePath).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Int("levels", settings.Levels).
		Int("distance", settings.Distance).
		Msg("image loaded")

	regions, err := buildRegions(settings, opts.configPath, img.Bounds())
	if err != nil {
		return err
	}

	analyzer, err := analysis.New(settings, log)
	if err != nil {
		return err
	}
	entries, err := analyzer.Regions(img, regions)
	if err != nil {
		log.Error().Err(err).Msg("some regions could not be analysed")
	}

	if err := report.WriteTable(os.Stdout, entries); err != nil {
		return err
	}
	if opts.csvPath != "" {
		if err := writeFile(opts.csvPath, entries, report.WriteCSV); err != nil {
			return err
		}
		log.Info().Str("path", opts.csvPath).Msg("CSV written")
	}
	if opts.jsonPath != "" {
		if err := writeFile(opts.jsonPath, entries, report.WriteJSON); err != nil {
			return err
		}
		log.Info().Str("path", opts.jsonPath).Msg("JSON written")
	}
	if opts.saveConfig != "" {
		if settings.ImagePath == "" {
			settings.SetImage(opts.saveConfig, imagePath)
		}
		if err := settings.Save(opts.saveConfig); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	if len(entries) == 0 {
		return fmt.Errorf("no region produced results")
	}
	return nil
}

// loadSettings reads the settings file, if any, and applies the flags that
// were set explicitly.
func loadSettings(opts options) (*config.Settings, error) {
	settings := config.Default()
	if opts.configPath != "" {
		var err error
		if settings, err = config.Load(opts.configPath); err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "levels":
			settings.Levels = opts.levels
		case "distance":
			settings.Distance = opts.distance
		case "features":
			settings.Features = splitList(opts.features)
		case "opencv":
			settings.UseOpenCV = opts.openCV
		case "log-level":
			settings.LogLevel = opts.logLevel
		}
	})

	for i, r := range opts.rects {
		rect := r
		settings.Regions = append(settings.Regions, config.RegionDef{
			Name: fmt.Sprintf("rect%d", i+1), Rect: &rect, MaskPath: opts.maskPath,
		})
	}
	for i, pts := range opts.polygons {
		settings.Regions = append(settings.Regions, config.RegionDef{
			Name: fmt.Sprintf("polygon%d", i+1), Polygon: pts, MaskPath: opts.maskPath,
		})
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func loadImage(path string, useOpenCV bool) (*image.Gray, error) {
	if useOpenCV {
		return imageio.LoadGrayCV(path)
	}
	return imageio.Load(path)
}

// buildRegions converts the configured regions. Without any, the whole image
// is analysed.
func buildRegions(s *config.Settings, configPath string, bounds image.Rectangle) ([]roi.Region, error) {
	if len(s.Regions) == 0 {
		return []roi.Region{roi.RectRegion("image", bounds)}, nil
	}

	regions := make([]roi.Region, 0, len(s.Regions))
	for _, def := range s.Regions {
		region, err := def.Region(s.Distance)
		if err != nil {
			return nil, err
		}
		if s.UseOpenCV && len(def.Polygon) > 0 {
			mask, err := imageio.PolygonMaskCV(def.Polygon, bounds.Dx(), bounds.Dy())
			if err != nil {
				return nil, fmt.Errorf("region %s: %w", def.Name, err)
			}
			region.Mask = roi.GrayMask{Gray: mask}
		}
		if def.MaskPath != "" {
			if region, err = withMaskImage(region, config.ResolvePath(configPath, def.MaskPath)); err != nil {
				return nil, fmt.Errorf("region %s: %w", def.Name, err)
			}
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// withMaskImage restricts region to the non-black pixels of the mask image,
// on top of any mask it already has.
func withMaskImage(region roi.Region, path string) (roi.Region, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return region, err
	}
	file := roi.GrayMask{Gray: imageio.MaskFromImage(img)}
	if region.Mask == nil {
		region.Mask = file
		return region, nil
	}
	region.Mask = roi.AllOf(region.Mask, file)
	return region, nil
}

func writeFile(path string, entries []report.Entry, write func(io.Writer, []report.Entry) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
