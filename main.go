// ==============================================================================================
// FILE: main.go
// ==============================================================================================
// PURPOSE: CLI entry point. `prog` starts the REPL; `prog <file>` evaluates a file's top-level
//          forms; any other argv shape is a usage error (spec §6). Dispatch is built on cobra,
//          with viper loading an optional ~/.schemegorc.yaml for the debug-logging default.
// ==============================================================================================

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"schemego/eval"
	"schemego/lexer"
	"schemego/lerr"
	"schemego/parser"
	"schemego/repl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var noHistory bool

	cmd := &cobra.Command{
		Use:           "schemego [file]",
		Short:         "A tree-walking interpreter for a small Scheme-like dialect",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadConfig()
			if viper.IsSet("debug") {
				debug = debug || viper.GetBool("debug")
			}
			log := newLogger(debug)
			defer log.Sync() //nolint:errcheck

			if len(args) == 1 {
				return runFile(args[0], log)
			}
			repl.Start(os.Stdout, os.Stderr, log, historyPath(noHistory))
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose evaluator logging")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "disable REPL history file")
	return cmd
}

// historyPath resolves the REPL history file location, or "" when disabled
// by --no-history or when the home directory can't be determined.
func historyPath(disabled bool) string {
	if disabled {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".schemego_history")
}

// loadConfig reads ~/.schemegorc.yaml if present; absence of the file is
// not an error, every other read failure is silently ignored since config
// is advisory (only the debug-logging default depends on it).
func loadConfig() {
	viper.SetConfigName(".schemegorc")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	_ = viper.ReadInConfig()
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		log = zap.NewNop()
	}
	return log
}

// runFile evaluates every top-level form in filename in order, printing
// nothing for their values (spec §6: file mode prints only side effects).
func runFile(filename string, log *zap.Logger) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return lerr.Wrap(lerr.User, err, "reading %s", filename)
	}

	toks, err := lexer.Tokenize(string(data))
	if err != nil {
		return err
	}
	forms, err := parser.ParseAll(toks)
	if err != nil {
		return err
	}

	env := eval.NewRootEnv()
	for _, form := range forms {
		if _, err := eval.Eval(form, env); err != nil {
			log.Debug("file-mode evaluation failed", zap.String("file", filename))
			return err
		}
	}
	return nil
}
