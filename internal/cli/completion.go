package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
// Quote-file arguments complete to .toml and .json files; see completeQuoteFile.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for quotefit.

Subcommand names, flags and quote files (.toml, .json) are completed.

To load completions:

Bash:
  $ source <(quotefit completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ quotefit completion bash > /etc/bash_completion.d/quotefit
  # macOS:
  $ quotefit completion bash > $(brew --prefix)/etc/bash_completion.d/quotefit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ quotefit completion zsh > "${fpath[1]}/_quotefit"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ quotefit completion fish | source

  # To load completions for each session, execute once:
  $ quotefit completion fish > ~/.config/fish/completions/quotefit.fish

PowerShell:
  PS> quotefit completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> quotefit completion powershell > quotefit.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeQuoteFile offers .toml and .json files for the single quote-file
// argument of solve, render and explore.
func completeQuoteFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}
