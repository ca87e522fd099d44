package bundle

import (
	"context"

	"github.com/ValentinKolb/rbundle/cmd/util"
	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/ValentinKolb/rbundle/lib/logging"
	"github.com/ValentinKolb/rbundle/lib/resiter"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
)

var (
	config     *util.Config
	logManager *logging.Manager
	log        logger.ILogger
	loader     bundle.ILoader
	metricSet  *metrics.Set

	// Commands holds the bundle commands, they are registered on the root command
	Commands = []*cobra.Command{eachCmd, arrayCmd, keysCmd, infoCmd}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	for _, cmd := range Commands {
		cmd.PersistentPreRunE = setup
		cmd.PersistentPostRunE = teardown
	}

	arrayCmd.Flags().Bool("matrix", false, util.WrapString("Group two-level keys (key_i_j) into rows by their first index"))
	arrayCmd.Flags().BoolP("number", "n", false, util.WrapString("Prefix every line with its zero-based position"))
	infoCmd.Flags().StringP("output", "o", "text", util.WrapString("Output format (text, json, yaml)"))
}

// setup reads the configuration and creates the logger and the bundle loader
func setup(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	config = util.GetConfig()

	var err error
	if logManager, err = util.GetLogging(config); err != nil {
		return err
	}
	log = logManager.Logger("rbundle")
	log.Debugf("configuration:%s", config)

	metricSet = nil
	if config.Metrics {
		metricSet = metrics.NewSet()
	}

	loader, err = util.GetLoader(ctxOf(cmd), config, logManager.Logger("loader"))
	return err
}

// teardown prints the collected metrics and flushes the logs
func teardown(cmd *cobra.Command, _ []string) error {
	if metricSet != nil {
		metricSet.WritePrometheus(cmd.ErrOrStderr())
	}
	if logManager != nil {
		_ = logManager.Shutdown() // stderr cannot always be synced
	}
	return nil
}

// newIterator creates an iterator for the named bundle using the configured loader
func newIterator(name string) (*resiter.Iterator, error) {
	return resiter.New(name, loader, &resiter.Options{
		Logger:  logManager.Logger("resiter"),
		Metrics: metricSet,
	})
}

// ctxOf returns the command context or the background context
func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
