package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tonearm/internal/config"
)

func newCompletionCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:         "completion [bash|zsh|fish|powershell]",
		Short:       "Generate a shell completion script",
		Args:        cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:   []string{"bash", "zsh", "fish", "powershell"},
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := strings.TrimSpace(outputDir)
			if dir == "" {
				return fmt.Errorf("no output directory given; pass --output-dir")
			}
			dir, err := config.ExpandPath(dir)
			if err != nil {
				return fmt.Errorf("resolve output directory: %w", err)
			}

			root := cmd.Root()
			shell := args[0]
			target := filepath.Join(dir, "tonearm."+shell)
			switch shell {
			case "bash":
				err = root.GenBashCompletionFileV2(target, true)
			case "zsh":
				err = root.GenZshCompletionFile(target)
			case "fish":
				err = root.GenFishCompletionFile(target, true)
			case "powershell":
				err = root.GenPowerShellCompletionFileWithDesc(target)
			}
			if err != nil {
				return fmt.Errorf("generate %s completion: %w", shell, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s completion to %s\n", shell, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory the completion script is written to")
	return cmd
}
