package tab2gis

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/parser"
)

// Convert reads every table of the file at path and runs them through the
// pipeline.
func Convert(path string, params parser.ReadParams, opts Options) (*Report, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	wb, err := parser.Read(path, params)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"file":   path,
		"tables": len(wb.Tables),
	}).Debug("read input")

	return Run(wb.Tables, opts)
}
