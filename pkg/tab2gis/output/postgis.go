package output

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb/encoding/wkt"
	log "github.com/sirupsen/logrus"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
)

// PostGIS loads figures into a PostGIS table.
type PostGIS struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostGIS connects to the database at dsn. table may be schema
// qualified ("gis.parcels").
func NewPostGIS(ctx context.Context, dsn, table string) (*PostGIS, error) {
	if strings.TrimSpace(table) == "" {
		return nil, fmt.Errorf("postgis: table name is required")
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostGIS{pool: pool, table: table}, nil
}

// Close releases the connection pool.
func (p *PostGIS) Close() {
	p.pool.Close()
}

// Write creates the target table when missing and inserts every figure of
// report in one transaction.
func (p *PostGIS) Write(ctx context.Context, report *tab2gis.Report) error {
	createSQL, insertSQL := statements(p.table)

	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createSQL); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}

		batch := &pgx.Batch{}
		for _, args := range insertArgs(report) {
			batch.Queue(insertSQL, args...)
		}

		br := tx.SendBatch(ctx, batch)
		for range report.Figures {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("inserting figure: %w", err)
			}
		}
		return br.Close()
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"table": p.table, "figures": len(report.Figures)}).Info("loaded figures into PostGIS")
	return nil
}

// statements returns the CREATE TABLE and INSERT statements for table.
func statements(table string) (string, string) {
	ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()

	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id serial PRIMARY KEY,
	run_id text NOT NULL,
	name text NOT NULL,
	source text,
	table_id text,
	repaired boolean NOT NULL DEFAULT false,
	geom geometry NOT NULL
)`, ident)

	insertSQL := fmt.Sprintf(
		`INSERT INTO %s (run_id, name, source, table_id, repaired, geom) VALUES ($1, $2, $3, $4, $5, ST_GeomFromText($6, $7))`,
		ident)

	return createSQL, insertSQL
}

func insertArgs(report *tab2gis.Report) [][]any {
	srid := 0
	if report.CRS != nil {
		srid = report.CRS.SRID()
	}

	rows := make([][]any, 0, len(report.Figures))
	for _, r := range report.Figures {
		rows = append(rows, []any{
			report.RunID,
			r.Figure.Name,
			r.Figure.Source,
			r.Figure.TableID,
			r.Repaired,
			wkt.MarshalString(r.Geometry),
			srid,
		})
	}
	return rows
}
