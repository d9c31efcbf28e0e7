// Package cli builds the hanzicards root command. Flags are bound to viper
// keys so each setting can come from the command line, HANZICARDS_* env
// vars or .hanzicards.yaml, in that order of precedence.
package cli
