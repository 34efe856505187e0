package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpuskit/crosslink/pkg/crosslink"
	"github.com/corpuskit/crosslink/pkg/crosslink/config"
	"github.com/corpuskit/crosslink/pkg/crosslink/docstore"
	"github.com/corpuskit/crosslink/pkg/crosslink/render"
	proseTagger "github.com/corpuskit/crosslink/pkg/crosslink/tagger/prose"
)

var (
	dataDir    string
	outputDir  string
	listPath   string
	minSources int
	minCount   int
	storeKind  string
	storePath  string
	numWorkers int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan the corpus and generate the cross-linked wiki",
	Long: `Build runs the full pipeline: enumerate the documents under the data
directory, scan them for entities and word-list terms, persist the
occurrence index, and render the rewritten documents and index cards
under the output directory.

Example:
  crosslink build --data ./docs --out ./viewer
  crosslink build --data ./docs --out ./viewer --list ./list.txt --min-sources 1 --min-count 1
  crosslink build --config crosslink.yaml`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&dataDir, "data", "", "directory of source documents")
	buildCmd.Flags().StringVar(&outputDir, "out", "", "directory for the rendered wiki")
	buildCmd.Flags().StringVar(&listPath, "list", "", "curated word-list file, one term per line")
	buildCmd.Flags().IntVar(&minSources, "min-sources", 0, "documents a term must appear in before it is linked")
	buildCmd.Flags().IntVar(&minCount, "min-count", 0, "total mentions a term needs before it is linked")
	buildCmd.Flags().StringVar(&storeKind, "store", "", "index store backend (json or sqlite)")
	buildCmd.Flags().StringVar(&storePath, "db", "", "index store path")
	buildCmd.Flags().IntVar(&numWorkers, "workers", 0, "concurrent document workers")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	comp, err := (&config.Loader{Config: cfg, Log: log}).Load(ctx)
	if err != nil {
		return err
	}

	eng := crosslink.New(crosslink.Options{
		Docs:       docstore.NewDir(cfg.DataDir, log),
		Tagger:     proseTagger.New(),
		Store:      comp.Store,
		Output:     render.NewWriter(cfg.OutputDir, log),
		Words:      comp.Words,
		Stops:      comp.Stops,
		Labels:     comp.Labels,
		Thresholds: comp.Thresholds,
		Workers:    comp.Workers,
		Logger:     log,
	})
	defer eng.Close() //nolint:errcheck

	rep, err := eng.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d documents scanned, %d terms indexed, %d published, %d cards written\n",
		rep.RunID, rep.DocsScanned, rep.Entries, rep.Published, rep.CardsWritten)
	return nil
}

// resolveConfig layers flag values over the config file over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("out") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("list") {
		cfg.Wordlist = listPath
	}
	if flags.Changed("min-sources") {
		cfg.MinSources = minSources
	}
	if flags.Changed("min-count") {
		cfg.MinCount = minCount
	}
	if flags.Changed("store") {
		cfg.Store.Backend = storeKind
	}
	if flags.Changed("db") {
		cfg.Store.Path = storePath
	}
	if flags.Changed("workers") {
		cfg.Workers = numWorkers
	}

	return cfg, cfg.Validate()
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
