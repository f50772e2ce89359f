package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tab2gis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearPGEnv(t *testing.T) {
	for _, n := range []string{"DATABASE_URL", "PGHOST", "POSTGRES_HOST", "PGPORT", "POSTGRES_PORT",
		"PGDATABASE", "POSTGRES_DB", "PGUSER", "POSTGRES_USER", "PGPASSWORD", "POSTGRES_PASSWORD", "PGSSLMODE"} {
		t.Setenv(n, "")
	}
}

func TestLoad(t *testing.T) {
	clearPGEnv(t)
	path := writeConfig(t, `
crs:
  epsg: 32718
columns:
  component: COMPONENTE
  x: ESTE
  y: NORTE
min_area: 0.5
parallel: true
input:
  sheet: Lotes
  range: A1:D40
export:
  output: out
  format: DXF
  zip: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	opts := cfg.Options()
	assert.Equal(t, 32718, opts.EPSG)
	assert.Equal(t, "COMPONENTE", opts.ComponentColumn)
	assert.Equal(t, "ESTE", opts.XColumn)
	assert.Equal(t, "NORTE", opts.YColumn)
	assert.Equal(t, "VERTICE", opts.VertexColumn)
	assert.Equal(t, 0.5, opts.MinArea)
	assert.True(t, opts.Parallel)

	params := cfg.ReadParams()
	assert.Equal(t, "Lotes", params.Sheet)
	assert.Equal(t, "A1:D40", params.Range)

	assert.Equal(t, "dxf", cfg.Export.Format)
	assert.True(t, cfg.Export.Zip)
}

func TestLoadInvalid(t *testing.T) {
	clearPGEnv(t)
	tests := []struct {
		name    string
		content string
	}{
		{"both crs", "crs:\n  epsg: 4326\n  definition: \"+proj=longlat\"\n"},
		{"negative area", "min_area: -1\n"},
		{"bad format", "export:\n  format: kml\n"},
		{"bad yaml", "crs: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	clearPGEnv(t)
	t.Setenv("PGPORT", "6543")

	cfg := Default()
	assert.Equal(t, "geojson", cfg.Export.Format)
	assert.Equal(t, "VERTICE", cfg.Columns.Vertex)
	assert.Equal(t, "postgres://@localhost:6543/?sslmode=disable", cfg.Export.PostGIS.DSN())
}

func TestPostGISEnvFallback(t *testing.T) {
	clearPGEnv(t)
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGUSER", "gis")
	t.Setenv("PGDATABASE", "cadastre")

	cfg, err := Load(writeConfig(t, "export:\n  postgis:\n    table: parcels\n    connection:\n      port: 5433\n"))
	require.NoError(t, err)

	pg := cfg.Export.PostGIS
	assert.Equal(t, "parcels", pg.Table)
	assert.Equal(t, "postgres://gis@db.internal:5433/cadastre?sslmode=disable", pg.DSN())

	t.Setenv("DATABASE_URL", "postgres://other/db")
	cfg, err = Load(writeConfig(t, "export:\n  postgis:\n    table: parcels\n"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://other/db", cfg.Export.PostGIS.DSN())
}
