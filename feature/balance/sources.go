package balance

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"objmask-workaround/feature/balance/models"
)

// Paths names the two input files of a run.
type Paths struct {
	Rules   string
	Balance string
}

// ResolvePaths turns the command argument into input paths. arg is either
// the balance file, whose directory holds the rules file, or a directory
// holding both. A non-empty rules overrides the rules path.
func ResolvePaths(arg, rules string, cfg Config) (Paths, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return Paths{}, sourceError(arg, err)
	}

	var p Paths
	if info.IsDir() {
		p = Paths{
			Rules:   filepath.Join(arg, cfg.RulesFile),
			Balance: filepath.Join(arg, cfg.BalanceFile),
		}
	} else {
		p = Paths{
			Rules:   filepath.Join(filepath.Dir(arg), cfg.RulesFile),
			Balance: arg,
		}
	}
	if rules != "" {
		p.Rules = rules
	}
	return p, nil
}

// openSource opens path, mapping a missing file to ErrSourceNotFound.
func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sourceError(path, err)
	}
	return f, nil
}

func sourceError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &models.SourceError{Source: path, Err: models.ErrSourceNotFound}
	}
	return &models.SourceError{Source: path, Err: err}
}
