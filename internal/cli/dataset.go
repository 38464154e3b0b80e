package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/integridai/culturacheck/internal/dataset"
)

// datasetCmd represents the dataset command
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect the reference dataset",
}

var datasetInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show dataset version, size and validation status",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := dataset.Load(datasetPath)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		stats := data.Stats()
		fmt.Printf("Versión:     %s\n", stats.DatasetVersion)
		fmt.Printf("Licencia:    %s\n", stats.License)
		fmt.Printf("Frases:      %d\n", stats.TotalPhrases)
		fmt.Printf("Marcadores:  %d\n", stats.CulturalMarkers)
		fmt.Printf("Categorías:  %d\n", stats.RiskCategories)
		fmt.Printf("Consenso:    %.0f%%\n", stats.Consensus*100)

		riskCounts := make(map[int]int)
		for _, p := range data.Phrases {
			riskCounts[p.RiskLevel]++
		}
		fmt.Println("\nDistribución de riesgo:")
		for level := 1; level <= 5; level++ {
			fmt.Printf("  %d/5: %d frases\n", level, riskCounts[level])
		}

		return nil
	},
}

var datasetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset phrases as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := dataset.Load(datasetPath)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data.Phrases)
	},
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetInfoCmd)
	datasetCmd.AddCommand(datasetExportCmd)

	datasetCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "path to a custom dataset YAML (default: embedded)")
}
