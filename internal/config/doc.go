// Package config holds the settings of a scrape run.
//
// Values come from, in increasing precedence: the defaults in this package,
// a YAML config file, QUOTES_* environment variables and finally the flags
// the user set on the command line. The command layer applies the flags;
// everything before that lives here.
package config
