package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wangdi2014/regtools/internal/junctions"
)

// junctionsCmd groups the splice-junction subcommands.
var junctionsCmd = &cobra.Command{
	Use:                        "junctions",
	Short:                      "Work with splice junctions",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"junc"},
}

// extractCmd identifies splice junctions from an indexed alignment file.
var extractCmd = &cobra.Command{
	Use:                        "extract [flags] indexed_alignments.bam",
	Short:                      "Extract splice junctions from an indexed BAM",
	Run:                        junctions.ExtractCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  regtools junctions extract -a 8 -i 70 -I 500000 alignments.bam",
	Long: `Extract splice junctions from alignments in an indexed BAM file.
Each junction is written as one BED12 line with the number of supporting
reads as its score. Junctions are only reported if they have the minimum
anchor length on both sides in at least one supporting read`,
}

// set flags
func init() {
	extractCmd.Flags().IntP("min-anchor", "a", 8, "minimum anchor length; junctions covered by this much sequence on both sides are reported")
	extractCmd.Flags().IntP("min-intron", "i", 70, "minimum intron length")
	extractCmd.Flags().IntP("max-intron", "I", 500000, "maximum intron length")
	extractCmd.Flags().StringP("out", "o", "", "output file name (stdout by default)")
	extractCmd.Flags().StringP("region", "r", "", "region to extract junctions from, in chr:start-end format (entire file by default)")
	extractCmd.Flags().Bool("profile", false, "write a CPU profile for this run")
	extractCmd.Flags().MarkHidden("profile")

	viper.BindPFlag("min-anchor", extractCmd.Flags().Lookup("min-anchor"))
	viper.BindPFlag("min-intron", extractCmd.Flags().Lookup("min-intron"))
	viper.BindPFlag("max-intron", extractCmd.Flags().Lookup("max-intron"))

	junctionsCmd.AddCommand(extractCmd)
	RootCmd.AddCommand(junctionsCmd)
}
