package cmd

import (
	"os"
	"strings"

	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for goeuclid.

Bash:

  $ source <(goeuclid completion bash)

Zsh:

  $ goeuclid completion zsh > "${fpath[1]}/_goeuclid"

Fish:

  $ goeuclid completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		default:
			return rootCmd.GenFishCompletion(os.Stdout, true)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// completeHighlight offers the tokens of the proof steps
func completeHighlight(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var tokens []string
	for _, a := range scene.Annotations() {
		tok := a.Token.String()
		if strings.HasPrefix(tok, toComplete) {
			tokens = append(tokens, tok+"\t"+a.Text)
		}
	}
	return tokens, cobra.ShellCompDirectiveNoFileComp
}
