package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Afessler1998/arbor/story"
)

var store = story.NewStore(nil)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "arbor-story",
		Short:        "Author and play branching stories backed by arbor trees",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("file", "f", "story.txt", "story file to operate on")
	viper.SetEnvPrefix("arbor")
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlag("file", cmd.PersistentFlags().Lookup("file")))

	cmd.AddCommand(
		newPlayCmd(),
		newNewCmd(),
		newAddCmd(),
		newRmCmd(),
		newShowCmd(),
	)
	return cmd
}

// storyFile resolves the story path from the flag or ARBOR_FILE.
func storyFile() string {
	return viper.GetString("file")
}
