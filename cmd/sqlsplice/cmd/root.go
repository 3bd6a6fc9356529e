// Package cmd provides the root command and CLI setup for sqlsplice.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sqlsplice/sqlsplice"
)

var (
	part2Line   int
	middleLine  int
	restLine    int
	configPath  string
	newlineFlag string
	verboseFlag bool
	restoreFlag bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlsplice [file]",
		Short: "Swap two line segments of a SQL migration file in place",
		Long: `sqlsplice splits a migration file into four contiguous segments at three
boundary line numbers and rewrites it with the two interior segments
swapped (part1, middle, part2, rest). Lines move byte-for-byte; the tool
never parses the SQL it moves.

Boundary flags take 1-based line numbers, as reported by grep -n or an
editor gutter. A JSON config file (-config) may supply the path and
boundaries instead; explicit flags override values from the file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			b, err := cfg.Boundaries()
			if err != nil {
				return err
			}

			action := "Reordering"
			rewrite := sqlsplice.ReorderFile
			if restoreFlag {
				action = "Restoring"
				rewrite = sqlsplice.RestoreFile
			}
			if verboseFlag {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s %s (boundaries %d/%d/%d)...\n",
					time.Now().Format(time.Kitchen), action, path,
					cfg.Part2Line, cfg.MiddleLine, cfg.RestLine)
			}

			res, err := rewrite(path, b, cfg.Newline)
			if err != nil {
				return err
			}
			if verboseFlag {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s] Moved %d lines, md5 %s -> %s\n",
					time.Now().Format(time.Kitchen), res.Lines, res.BeforeMd5, res.AfterMd5)
			}

			if restoreFlag {
				cmd.Println("Successfully restored migration file.")
			} else {
				cmd.Println("Successfully reordered migration file.")
			}
			return nil
		},
	}
	cmd.Version = sqlsplice.Version + " (" + sqlsplice.GitCommit + ")"
	cmd.PersistentFlags().IntVarP(&part2Line, "part2-start", "a", 0, "1-based line number where part2 begins")
	cmd.PersistentFlags().IntVarP(&middleLine, "middle-start", "b", 0, "1-based line number where the middle segment begins")
	cmd.PersistentFlags().IntVarP(&restLine, "rest-start", "c", 0, "1-based line number where the trailing segment begins")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON configuration file (flags override its values)")
	cmd.PersistentFlags().StringVar(&newlineFlag, "newline", "", "normalize line endings for checksums: LF, CR or CRLF")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print progress to stderr")
	cmd.Flags().BoolVarP(&restoreFlag, "restore", "r", false, "apply the inverse permutation (undo a previous run)")

	return cmd
}

// resolveConfig merges an optional JSON config file with flag values and
// selects the target path. The file supplies any value the user did not
// give as a flag; an explicit flag always wins, as does a positional
// argument over the file's path.
func resolveConfig(cmd *cobra.Command, args []string) (sqlsplice.Config, string, error) {
	var cfg sqlsplice.Config
	if configPath != "" {
		if err := sqlsplice.LoadConfig(configPath, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to load config file: %w", err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("part2-start") {
		cfg.Part2Line = part2Line
	}
	if flags.Changed("middle-start") {
		cfg.MiddleLine = middleLine
	}
	if flags.Changed("rest-start") {
		cfg.RestLine = restLine
	}
	if flags.Changed("newline") {
		cfg.Newline = newlineFlag
	}
	path := cfg.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return cfg, "", fmt.Errorf("no target file: pass a path argument or set \"path\" in the config file")
	}
	return cfg, path, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
