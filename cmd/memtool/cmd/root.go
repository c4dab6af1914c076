package cmd

import (
	goflag "flag"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	configEndian     = "endian"
	configSignatures = "signatures"
)

// ErrDiffer is returned by cmp when the regions are not identical.
var ErrDiffer = errors.New("regions differ")

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "memtool",
	Short: "Inspect firmware and memory images",
	Long: `memtool runs raw memory primitives over image files: zero checks,
8/16/32/64-bit scans, byte comparisons, pattern fills and signature searches.

Images ending in .lz4 are decompressed on load.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command and exits with 1 when cmp finds a
// difference and 2 on any other failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	klog.Flush()
	if errors.Is(err, ErrDiffer) {
		os.Exit(1)
	}
	os.Exit(2)
}

func init() {
	fs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(fs)
	rootCmd.PersistentFlags().AddGoFlagSet(fs)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./memtool.yaml if present)")
	rootCmd.PersistentFlags().String(configEndian, "little", "byte order of multi-byte words: little, big or host")
	if err := viper.BindPFlag(configEndian, rootCmd.PersistentFlags().Lookup(configEndian)); err != nil {
		klog.Fatalf("bind %s: %v", configEndian, err)
	}

	rootCmd.AddCommand(iszeroCmd, scanCmd, cmpCmd, fillCmd, findCmd, infoCmd)
}

// initConfig layers MEMTOOL_* environment variables and the optional config
// file under the command-line flags.
func initConfig() error {
	viper.SetEnvPrefix("memtool")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("memtool")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
		klog.V(3).Info("no memtool.yaml found, using flags and environment only")
		return nil
	}
	klog.V(1).Infof("using config file %s", viper.ConfigFileUsed())
	return nil
}
