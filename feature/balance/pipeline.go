package balance

import (
	"io"

	"objmask-workaround/feature/balance/matrix"
	"objmask-workaround/feature/balance/models"
	"objmask-workaround/feature/balance/rules"
	"objmask-workaround/feature/balance/table"
)

// Rules is a parsed unit rules file.
type Rules struct {
	Source      string
	Index       *models.UnitIndex
	Diagnostics *models.Diagnostics
}

// Result is the outcome of one rebuild.
type Result struct {
	RulesSource   string
	BalanceSource string
	Index         *models.UnitIndex
	Shipped       *models.ModifierTable
	Table         *models.Table
	Diagnostics   *models.Diagnostics
}

// LoadRules parses unit rules from r, leaving out the ignored units.
func LoadRules(r io.Reader, source string, ignore []string) (*Rules, error) {
	diag := &models.Diagnostics{}
	index, err := rules.Parse(r, source, ignore, diag)
	if err != nil {
		return nil, err
	}
	return &Rules{Source: source, Index: index, Diagnostics: diag}, nil
}

// Rebuild reads the shipped table from balance and computes the dense,
// neutralized table for rs. rs is not modified, so one Rules may serve
// many rebuilds.
func Rebuild(rs *Rules, balance io.Reader, source string) (*Result, error) {
	shipped, err := table.Parse(balance, source)
	if err != nil {
		return nil, err
	}

	diag := &models.Diagnostics{}
	if rs.Diagnostics != nil {
		diag.Warnings = append(diag.Warnings, rs.Diagnostics.Warnings...)
	}

	return &Result{
		RulesSource:   rs.Source,
		BalanceSource: source,
		Index:         rs.Index,
		Shipped:       shipped,
		Table:         matrix.Compute(rs.Index, shipped),
		Diagnostics:   diag,
	}, nil
}

// Process runs the whole pipeline over two readers.
func Process(rulesR io.Reader, rulesSource string, balanceR io.Reader, balanceSource string, ignore []string) (*Result, error) {
	rs, err := LoadRules(rulesR, rulesSource, ignore)
	if err != nil {
		return nil, err
	}
	return Rebuild(rs, balanceR, balanceSource)
}
