// Package config loads tab2gis run settings from a YAML file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/output"
	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/parser"
)

// Config represents the top-level YAML configuration.
type Config struct {
	CRS               CRS     `yaml:"crs"`
	Columns           Columns `yaml:"columns"`
	MinArea           float64 `yaml:"min_area"`
	KeepRepeatedNames bool    `yaml:"keep_repeated_names"`
	Parallel          bool    `yaml:"parallel"`
	Input             Input   `yaml:"input"`
	Export            Export  `yaml:"export"`
}

// CRS selects the input coordinate system. Set exactly one field.
type CRS struct {
	EPSG       int    `yaml:"epsg"`
	Definition string `yaml:"definition"`
}

// Columns names the table columns. Empty fields are detected.
type Columns struct {
	Component string `yaml:"component"`
	X         string `yaml:"x"`
	Y         string `yaml:"y"`
	Vertex    string `yaml:"vertex"`
}

// Input restricts what is read from the input file.
type Input struct {
	Sheet       string `yaml:"sheet"`
	Range       string `yaml:"range"`
	PrintAreas  bool   `yaml:"print_areas"`
	OCRLanguage string `yaml:"ocr_language"`
}

// Export configures where figures are written.
type Export struct {
	Output  string  `yaml:"output"`
	Format  string  `yaml:"format"`
	Zip     bool    `yaml:"zip"`
	PostGIS PostGIS `yaml:"postgis"`
}

// PostGIS holds the database sink settings. The sink is enabled when
// Table is set.
type PostGIS struct {
	Table      string     `yaml:"table"`
	URL        string     `yaml:"url"`
	Connection Connection `yaml:"connection"`
}

// Connection holds database connection parameters.
type Connection struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostGIS connection string: URL when set, otherwise one
// built from Connection.
func (p *PostGIS) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	c := p.Connection
	u := url.URL{
		Scheme: "postgres",
		Host:   c.Host + ":" + strconv.Itoa(c.Port),
		Path:   "/" + c.Database,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	return u.String()
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// applyEnv fills in empty PostGIS connection fields from environment
// variables. YAML values take precedence.
func (c *Config) applyEnv() {
	pg := &c.Export.PostGIS
	if pg.URL == "" {
		pg.URL = os.Getenv("DATABASE_URL")
	}

	conn := &pg.Connection
	if conn.Host == "" {
		conn.Host = envOr("PGHOST", "POSTGRES_HOST")
	}
	if conn.Port == 0 {
		if s := envOr("PGPORT", "POSTGRES_PORT"); s != "" {
			if p, err := strconv.Atoi(s); err == nil {
				conn.Port = p
			}
		}
	}
	if conn.Database == "" {
		conn.Database = envOr("PGDATABASE", "POSTGRES_DB")
	}
	if conn.User == "" {
		conn.User = envOr("PGUSER", "POSTGRES_USER")
	}
	if conn.Password == "" {
		conn.Password = envOr("PGPASSWORD", "POSTGRES_PASSWORD")
	}
	if conn.SSLMode == "" {
		conn.SSLMode = os.Getenv("PGSSLMODE")
	}
}

// envOr returns the first non-empty value from the given env var names.
func envOr(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// validate checks values and normalizes the export format name.
func (c *Config) validate() error {
	if c.CRS.EPSG != 0 && c.CRS.Definition != "" {
		return fmt.Errorf("crs.epsg and crs.definition are mutually exclusive")
	}
	if c.MinArea < 0 {
		return fmt.Errorf("min_area must not be negative")
	}

	f, err := output.ParseFormat(c.Export.Format)
	if err != nil {
		return err
	}
	c.Export.Format = string(f)
	return nil
}

// applyDefaults fills the values left empty by the file and environment.
func (c *Config) applyDefaults() {
	if c.Export.Format == "" {
		c.Export.Format = string(output.FormatGeoJSON)
	}
	if c.Columns.Vertex == "" {
		c.Columns.Vertex = tab2gis.DefaultVertexColumn
	}

	conn := &c.Export.PostGIS.Connection
	if conn.Host == "" {
		conn.Host = "localhost"
	}
	if conn.Port == 0 {
		conn.Port = 5432
	}
	if conn.SSLMode == "" {
		conn.SSLMode = "disable"
	}
}

// Options returns the pipeline options described by the configuration.
func (c *Config) Options() tab2gis.Options {
	opts := tab2gis.DefaultOptions()
	opts.ComponentColumn = c.Columns.Component
	opts.XColumn = c.Columns.X
	opts.YColumn = c.Columns.Y
	opts.VertexColumn = c.Columns.Vertex
	opts.EPSG = c.CRS.EPSG
	opts.CRSDefinition = c.CRS.Definition
	opts.MinArea = c.MinArea
	opts.KeepRepeatedNames = c.KeepRepeatedNames
	opts.Parallel = c.Parallel
	return opts
}

// ReadParams returns the reader settings described by the configuration.
func (c *Config) ReadParams() parser.ReadParams {
	return parser.ReadParams{
		Sheet:         c.Input.Sheet,
		Range:         c.Input.Range,
		UsePrintAreas: c.Input.PrintAreas,
		Language:      c.Input.OCRLanguage,
	}
}
