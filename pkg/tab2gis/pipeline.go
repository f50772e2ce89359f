package tab2gis

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/crs"
	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/geometry"
	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/table"
)

// FigureResult is a figure that survived geometry construction.
type FigureResult struct {
	// Figure holds the figure's vertices, closed when it is a ring.
	Figure models.Figure
	// Geometry is an orb.Polygon (one closed ring) or a 2-point
	// orb.LineString, in the run's CRS.
	Geometry orb.Geometry
	// Repaired is set when the ring needed the repair pass.
	Repaired bool
	// Warnings holds the figure's geometry and CRS warnings.
	Warnings []string
}

// Report is the outcome of a run.
type Report struct {
	// RunID identifies the run in logs and exports.
	RunID string
	// CRS is the run's coordinate system.
	CRS *crs.Descriptor
	// Figures holds surviving figures in detection order.
	Figures []FigureResult
	// Warnings aggregates every figure warning in order.
	Warnings []string
	// Errors holds the *TableError and *FigureError values raised by
	// tables and figures that were dropped.
	Errors []error
	// Skipped names the figures with fewer than two usable vertices.
	Skipped []string
}

// figureRows is the set of rows making up one figure.
type figureRows struct {
	name string
	id   string
	rows []models.Row
}

type outcome struct {
	result  *FigureResult
	err     error
	skipped bool
}

type runner struct {
	opts    Options
	crs     *crs.Descriptor
	checker geometry.Checker
	report  *Report
}

// Run interprets every table in order and returns the surviving figures.
//
// Configuration problems abort the run with ErrConfiguration. A table whose
// structure or columns cannot be resolved is recorded as a *TableError and
// skipped; a figure whose geometry cannot be built is recorded as a
// *FigureError. When no figure survives, Run returns the report together
// with ErrEmptyResult.
func Run(tables []models.Table, opts Options) (*Report, error) {
	d, err := opts.Validate()
	if err != nil {
		return nil, err
	}

	r := &runner{
		opts:    opts,
		crs:     d,
		checker: geometry.Checker{MinArea: opts.MinArea},
		report:  &Report{RunID: uuid.NewString(), CRS: d},
	}
	log.WithFields(log.Fields{"run": r.report.RunID, "crs": d.String()}).Debug("starting run")

	for _, t := range tables {
		if err := r.runTable(t); err != nil {
			return r.report, err
		}
	}

	if len(r.report.Figures) == 0 {
		return r.report, fmt.Errorf("%w (%d tables, %d errors)", ErrEmptyResult, len(tables), len(r.report.Errors))
	}
	return r.report, nil
}

func (r *runner) runTable(t models.Table) error {
	logger := log.WithFields(log.Fields{"source": t.Source, "table": t.Name})

	if r.opts.ComponentColumn != "" && !t.HasColumn(r.opts.ComponentColumn) {
		logger.Warnf("component column %q not found, detecting figures from vertex resets", r.opts.ComponentColumn)
	}
	for _, col := range []string{r.opts.XColumn, r.opts.YColumn} {
		if col != "" && !t.HasColumn(col) {
			return fmt.Errorf("%w: missing required column %q in table %q", ErrConfiguration, col, t.Name)
		}
	}

	blocks, err := table.DetectBlocks(t, table.DetectParams{
		ComponentColumn: r.opts.ComponentColumn,
		VertexColumn:    r.opts.vertexColumn(),
	})
	if err != nil {
		r.tableFailed(t, err)
		return nil
	}
	logger.WithField("blocks", len(blocks)).Debug("detected table blocks")

	vertexCol, err := table.ResolveVertexColumn(t.Columns, r.opts.vertexColumn())
	if err != nil {
		r.tableFailed(t, err)
		return nil
	}

	groups := groupBlocks(blocks, !r.opts.KeepRepeatedNames)
	coords := make([][2]string, len(groups))
	for i, g := range groups {
		x, y, err := r.resolveXY(t.Columns)
		if err != nil {
			r.tableFailed(t, fmt.Errorf("figure %q: %w", g.name, err))
			return nil
		}
		coords[i] = [2]string{x, y}
	}

	outcomes := make([]outcome, len(groups))
	if r.opts.Parallel {
		var eg errgroup.Group
		for i, g := range groups {
			eg.Go(func() error {
				outcomes[i] = r.buildFigure(t, g, coords[i][0], coords[i][1], vertexCol)
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for i, g := range groups {
			outcomes[i] = r.buildFigure(t, g, coords[i][0], coords[i][1], vertexCol)
		}
	}

	for i, o := range outcomes {
		switch {
		case o.skipped:
			logger.WithField("figure", groups[i].name).Debug("figure has fewer than 2 usable vertices, skipped")
			r.report.Skipped = append(r.report.Skipped, groups[i].name)
		case o.err != nil:
			logger.Warn(o.err)
			r.report.Errors = append(r.report.Errors, o.err)
		default:
			r.report.Figures = append(r.report.Figures, *o.result)
			r.report.Warnings = append(r.report.Warnings, o.result.Warnings...)
		}
	}

	return nil
}

func (r *runner) tableFailed(t models.Table, err error) {
	log.WithFields(log.Fields{"source": t.Source, "table": t.Name}).Warn(err)
	r.report.Errors = append(r.report.Errors, NewTableError(t.Source, t.Name, err))
}

// resolveXY honours the X/Y overrides and otherwise detects the columns.
func (r *runner) resolveXY(columns []string) (string, string, error) {
	if r.opts.XColumn != "" {
		return r.opts.XColumn, r.opts.YColumn, nil
	}
	return table.FindXY(columns)
}

func (r *runner) buildFigure(t models.Table, g figureRows, xCol, yCol, vertexCol string) outcome {
	pts := table.ExtractVertices(g.rows, xCol, yCol, vertexCol)
	if len(pts) < 2 {
		return outcome{skipped: true}
	}

	fig := models.Figure{
		Name:     g.name,
		Vertices: pts,
		CRS:      r.crs,
		Source:   t.Source,
		Table:    t.Name,
		TableID:  g.id,
	}
	if err := fig.Validate(); err != nil {
		return outcome{err: &FigureError{Table: t.Name, Figure: g.name, Err: err}}
	}

	res, err := geometry.Build(fig.Name, fig.Vertices)
	if err != nil {
		return outcome{err: &FigureError{Table: t.Name, Figure: g.name, Err: err}}
	}

	if poly, ok := res.Geometry.(orb.Polygon); ok {
		// Checks and exports see the ring that was actually built.
		fig.Vertices = append([]orb.Point(nil), poly[0]...)
	}

	warnings := r.checker.Check(&fig)
	for _, w := range crs.CheckCoordinates(r.crs, fig.Vertices) {
		warnings = append(warnings, fmt.Sprintf("Figure '%s': %s", fig.Name, w))
	}

	return outcome{result: &FigureResult{
		Figure:   fig,
		Geometry: res.Geometry,
		Repaired: res.Repaired,
		Warnings: warnings,
	}}
}

// groupBlocks turns blocks into figures. When merge is set, blocks sharing
// a name are concatenated in order of first appearance.
func groupBlocks(blocks []models.Block, merge bool) []figureRows {
	var groups []figureRows
	index := make(map[string]int)

	for _, b := range blocks {
		if i, ok := index[b.Name]; ok && merge {
			groups[i].rows = append(groups[i].rows, b.Rows...)
			continue
		}
		index[b.Name] = len(groups)
		groups = append(groups, figureRows{
			name: b.Name,
			id:   b.ID,
			rows: append([]models.Row(nil), b.Rows...),
		})
	}

	return groups
}

// IsTableError reports whether err stopped a whole table.
func IsTableError(err error) bool {
	var te *TableError
	return errors.As(err, &te)
}
