package cmd

import (
	"github.com/jsphweid/harmonics/config"
	"github.com/jsphweid/harmonics/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "harmonics",
	Short: "Music theory calculator",
	Long:  `Computes notes, intervals, scales, chords, harmonic fields and note durations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(config.LogLevel())
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(config.Init)
	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().Float64("a4", 440, "frequency of the reference A (piano key 49)")
	viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag(config.KeyTuningA4, rootCmd.PersistentFlags().Lookup("a4"))
}

func Execute() {
	defer logging.Close()
	cobra.CheckErr(rootCmd.Execute())
}
