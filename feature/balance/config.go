package balance

import "time"

// Config holds the source file names and indexing options.
type Config struct {
	// DataDir holds the rules file the server falls back to when a request
	// carries none.
	DataDir string `mapstructure:"data_dir" default:"."`
	// RulesFile is the unit rules file name, looked up next to the balance file.
	RulesFile string `mapstructure:"rules_file" default:"unitrules.xml"`
	// BalanceFile is the balance file name used when a directory is given.
	BalanceFile string `mapstructure:"balance_file" default:"balance.xml"`
	// OutputFile names the rebuilt table when written to disk or published.
	OutputFile string `mapstructure:"output_file" default:"balance_out.xml"`
	// IgnoreUnits lists normalized unit names left out of the table.
	IgnoreUnits []string `mapstructure:"ignore_units" default:"Fur_Trapper,Wild_Bird,Flock_Bird,Gull_Bird,Farm_Pig,Farm_Chicken,Herd_Horse,Herd_Sheep,Herd_Bison,Herd_Bear,Herd_Fish,Herd_Whales,Herd_Peacock"`
	// RulesObject, when set, loads the fallback rules file from the storage
	// bucket instead of DataDir.
	RulesObject string `mapstructure:"rules_object" default:""`
	// RulesCacheSeconds is how long the server reuses a parsed rules file.
	RulesCacheSeconds int `mapstructure:"rules_cache_seconds" default:"300"`
	// PublishPrefix is the object prefix published tables are stored under.
	PublishPrefix string `mapstructure:"publish_prefix" default:"balance"`
}

// RulesCacheTTL returns the rules cache lifetime.
func (c Config) RulesCacheTTL() time.Duration {
	if c.RulesCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RulesCacheSeconds) * time.Second
}
