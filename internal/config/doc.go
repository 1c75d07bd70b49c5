// Package config loads the two configuration layers of the tool.
//
// The user config lives at ~/.ge_seer/config.json and carries the
// wiki-compliant User-Agent plus the data directory. It is written once
// by the setup wizard and is a hard precondition: nothing runs without
// it.
//
// The gatherer config is a YAML file in the usual load/defaults/validate
// arrangement, with ${VAR} environment expansion.
package config
