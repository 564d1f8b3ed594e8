package balance_test

import (
	"os"
	"path/filepath"
	"testing"

	"objmask-workaround/feature/balance"
	"objmask-workaround/feature/balance/rules"

	"github.com/stretchr/testify/require"
)

const (
	armored = "Flag_A_OBJMASK_ARMORED"
	naval   = "Flag_N_OBJMASK_NAVAL"
)

const rulesXML = `<?xml version="1.0"?>
<UNITRULES>
  <UNIT>
    <NAME>Tank</NAME>
    <OBJ_MASK>A</OBJ_MASK>
  </UNIT>
  <UNIT>
    <NAME>Ship</NAME>
    <OBJ_MASK>N9</OBJ_MASK>
  </UNIT>
  <UNIT>
    <NAME>Herd Horse</NAME>
    <OBJ_MASK>M</OBJ_MASK>
  </UNIT>
</UNITRULES>
`

const balanceXML = `<?xml version="1.0"?>
<ROOT>
  <TABLE>
    <ENTRY name="Tank" Flag_N_OBJMASK_NAVAL="50"/>
    <ENTRY name="Flag_A_OBJMASK_ARMORED" Ship="50" Flag_N_OBJMASK_NAVAL="50"/>
  </TABLE>
</ROOT>
`

func testConfig(dir string) balance.Config {
	return balance.Config{
		DataDir:           dir,
		RulesFile:         "unitrules.xml",
		BalanceFile:       "balance.xml",
		OutputFile:        "balance_out.xml",
		IgnoreUnits:       rules.DefaultIgnore,
		RulesCacheSeconds: 300,
		PublishPrefix:     "balance",
	}
}

// writeSources writes both fixtures into a fresh directory.
func writeSources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unitrules.xml"), []byte(rulesXML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "balance.xml"), []byte(balanceXML), 0o644))
	return dir
}
