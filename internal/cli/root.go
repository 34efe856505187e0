// Package cli wires the command-line surface of the crosslink tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "crosslink",
	Short: "Crosslink - entity indexing and hyperlink substitution for text corpora",
	Long: `Crosslink turns a directory of plain-text, markdown, and HTML documents
into a cross-linked wiki. It scans the corpus for named entities and
curated word-list terms, counts where each term occurs, and then rewrites
every document so that published terms become [[type/key|display]] links,
with one index card per term listing its occurrences.

The whole corpus is scanned before any document is rewritten, so link
decisions never depend on document order.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("crosslink v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./crosslink.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("crosslink")
	}

	viper.SetEnvPrefix("CROSSLINK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		cfgFile = viper.ConfigFileUsed()
	}
}
