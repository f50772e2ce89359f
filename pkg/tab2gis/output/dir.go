package output

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
)

// WriteDir writes each figure of report to its own file in dir, named
// after the sanitized figure name. With zipped set, each figure file is
// stored in a "<name>.zip" archive instead. Shapefile sets keep their
// members side by side, or together in one archive. Files are written
// concurrently; the returned paths follow figure order.
func WriteDir(ctx context.Context, dir string, report *tab2gis.Report, format Format, zipped bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	names := fileNames(report.Figures)
	paths := make([]string, len(report.Figures))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i := range report.Figures {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			single := *report
			single.Figures = report.Figures[i : i+1]

			var err error
			if format == FormatSHP {
				paths[i], err = writeShapefileFigure(dir, names[i], &single, zipped)
			} else {
				paths[i], err = writeFigure(dir, names[i], &single, format, zipped)
			}
			if err != nil {
				return fmt.Errorf("writing figure %q: %w", report.Figures[i].Figure.Name, err)
			}

			log.WithField("path", paths[i]).Debug("wrote figure")
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFigure(dir, name string, report *tab2gis.Report, format Format, zipped bool) (string, error) {
	data, err := Encode(report, format)
	if err != nil {
		return "", err
	}

	file := name + "." + format.Ext()
	if zipped {
		path := filepath.Join(dir, name+".zip")
		return path, writeZip(path, []zipEntry{{name: file, data: data}})
	}
	path := filepath.Join(dir, file)
	return path, os.WriteFile(path, data, 0644)
}

// writeShapefileFigure writes the shapefile set into dir, or into a
// scratch directory whose files are then archived as dir/name.zip.
func writeShapefileFigure(dir, name string, report *tab2gis.Report, zipped bool) (string, error) {
	if !zipped {
		files, err := WriteShapefile(filepath.Join(dir, name), report)
		if err != nil {
			return "", err
		}
		return files[0], nil
	}

	tmp, err := os.MkdirTemp("", "tab2gis-shp-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmp)

	files, err := WriteShapefile(filepath.Join(tmp, name), report)
	if err != nil {
		return "", err
	}

	entries := make([]zipEntry, len(files))
	for i, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return "", err
		}
		entries[i] = zipEntry{name: filepath.Base(f), data: data}
	}

	path := filepath.Join(dir, name+".zip")
	return path, writeZip(path, entries)
}

// fileNames sanitizes figure names, suffixing repeats with "_2", "_3"...
func fileNames(figures []tab2gis.FigureResult) []string {
	names := make([]string, len(figures))
	used := make(map[string]bool)
	for i, r := range figures {
		base := Sanitize(r.Figure.Name)
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

type zipEntry struct {
	name string
	data []byte
}

func writeZip(path string, entries []zipEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return err
		}
		if _, err := w.Write(e.data); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}
