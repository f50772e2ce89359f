// Package main provides the CLI entry point for tab2gis.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/config"
	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/output"
)

var (
	configPath        string
	epsg              int
	crsDefinition     string
	componentColumn   string
	xColumn           string
	yColumn           string
	vertexColumn      string
	minArea           float64
	sheet             string
	cellRange         string
	printAreas        bool
	ocrLanguage       string
	outputDir         string
	format            string
	zipOutput         bool
	postgisTable      string
	keepRepeatedNames bool
	parallel          bool
	debug             bool
	quiet             bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tab2gis [input]",
		Short: "Convert coordinate tables into GIS geometries",
		Long: `tab2gis reads coordinate tables from spreadsheets, CSV, HTML or scanned
images, groups their rows into named figures and writes the resulting
polygons as GeoJSON, WKT, DXF or shapefiles, or loads them into PostGIS.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.IntVar(&epsg, "epsg", 0, "EPSG code of the input coordinates (e.g. 32718)")
	flags.StringVar(&crsDefinition, "crs", "", "CRS definition (EPSG:n, PROJ string or WKT)")
	flags.StringVar(&componentColumn, "component-column", "", "Column holding figure names (default: detect by vertex resets)")
	flags.StringVar(&xColumn, "x-column", "", "X (easting) column (default: detected)")
	flags.StringVar(&yColumn, "y-column", "", "Y (northing) column (default: detected)")
	flags.StringVar(&vertexColumn, "vertex-column", tab2gis.DefaultVertexColumn, "Vertex index column")
	flags.Float64Var(&minArea, "min-area", 0, "Area at or below which a figure is reported")
	flags.StringVar(&sheet, "sheet", "", "Sheet to read (default: all sheets)")
	flags.StringVar(&cellRange, "range", "", "Cell range to read, e.g. A1:D40")
	flags.BoolVar(&printAreas, "print-areas", false, "Restrict each sheet to its print area")
	flags.StringVar(&ocrLanguage, "ocr-language", "eng", "OCR language for image input")
	flags.StringVarP(&outputDir, "output", "o", "", "Output directory, one file per figure (default: stdout)")
	flags.StringVarP(&format, "format", "f", "geojson", "Output format: geojson, wkt, dxf, shp (shp needs --output)")
	flags.BoolVar(&zipOutput, "zip", false, "Store each figure file in its own ZIP archive")
	flags.StringVar(&postgisTable, "postgis-table", "", "Also load figures into this PostGIS table")
	flags.BoolVar(&keepRepeatedNames, "keep-repeated-names", false, "Keep blocks sharing a name as separate figures")
	flags.BoolVar(&parallel, "parallel", false, "Build figures concurrently")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		ForceColors:      term.IsTerminal(int(os.Stderr.Fd())),
		DisableTimestamp: true,
	})

	switch {
	case debug:
		log.SetLevel(log.DebugLevel)
	case quiet:
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig reads the configuration file, if any, and applies the flags
// the user set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("epsg") {
		cfg.CRS.EPSG, cfg.CRS.Definition = epsg, ""
	}
	if flags.Changed("crs") {
		cfg.CRS.Definition = crsDefinition
		if !flags.Changed("epsg") {
			cfg.CRS.EPSG = 0
		}
	}
	if flags.Changed("component-column") {
		cfg.Columns.Component = componentColumn
	}
	if flags.Changed("x-column") {
		cfg.Columns.X = xColumn
	}
	if flags.Changed("y-column") {
		cfg.Columns.Y = yColumn
	}
	if flags.Changed("vertex-column") {
		cfg.Columns.Vertex = vertexColumn
	}
	if flags.Changed("min-area") {
		cfg.MinArea = minArea
	}
	if flags.Changed("sheet") {
		cfg.Input.Sheet = sheet
	}
	if flags.Changed("range") {
		cfg.Input.Range = cellRange
	}
	if flags.Changed("print-areas") {
		cfg.Input.PrintAreas = printAreas
	}
	if flags.Changed("ocr-language") || cfg.Input.OCRLanguage == "" {
		cfg.Input.OCRLanguage = ocrLanguage
	}
	if flags.Changed("output") {
		cfg.Export.Output = outputDir
	}
	if flags.Changed("format") {
		f, err := output.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		cfg.Export.Format = string(f)
	}
	if flags.Changed("zip") {
		cfg.Export.Zip = zipOutput
	}
	if flags.Changed("postgis-table") {
		cfg.Export.PostGIS.Table = postgisTable
	}
	if flags.Changed("keep-repeated-names") {
		cfg.KeepRepeatedNames = keepRepeatedNames
	}
	if flags.Changed("parallel") {
		cfg.Parallel = parallel
	}

	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging()
	inputPath := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	report, err := tab2gis.Convert(inputPath, cfg.ReadParams(), cfg.Options())
	if report != nil {
		logReport(report)
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := export(cmd.Context(), cfg, report); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"run":      report.RunID,
		"figures":  len(report.Figures),
		"warnings": len(report.Warnings),
		"errors":   len(report.Errors),
	}).Info("conversion finished")
	return nil
}

func logReport(report *tab2gis.Report) {
	log.Infof("Using CRS: %s", report.CRS)
	for _, w := range report.Warnings {
		log.Warn(w)
	}
	for _, e := range report.Errors {
		if tab2gis.IsTableError(e) {
			log.Errorf("Skipped %v", e)
		} else {
			log.Error(e)
		}
	}
	for _, name := range report.Skipped {
		log.Debugf("Figure '%s' has fewer than 2 usable vertices and was skipped.", name)
	}
}

func export(ctx context.Context, cfg *config.Config, report *tab2gis.Report) error {
	f := output.Format(cfg.Export.Format)

	if cfg.Export.Output != "" {
		paths, err := output.WriteDir(ctx, cfg.Export.Output, report, f, cfg.Export.Zip)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Infof("Exported %d files to %s", len(paths), cfg.Export.Output)
	} else if cfg.Export.PostGIS.Table == "" {
		data, err := output.Encode(report, f)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
		if f == output.FormatGeoJSON {
			fmt.Println()
		}
	}

	if cfg.Export.PostGIS.Table != "" {
		if err := writePostGIS(ctx, cfg.Export.PostGIS, report); err != nil {
			return fmt.Errorf("PostGIS export failed: %w", err)
		}
	}
	return nil
}

func writePostGIS(ctx context.Context, pg config.PostGIS, report *tab2gis.Report) error {
	sink, err := output.NewPostGIS(ctx, pg.DSN(), pg.Table)
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := sink.Write(ctx, report); err != nil {
		return fmt.Errorf("table %s: %w", pg.Table, err)
	}
	return nil
}
