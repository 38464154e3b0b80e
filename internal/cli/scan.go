package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/integridai/culturacheck/internal/extract"
	"github.com/integridai/culturacheck/internal/worker"
)

var scanMinRisk int

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <archivo.html>",
	Short: "Scan an HTML document for risky phrases",
	Long: `Scan extracts the visible sentences from an HTML document (exported
emails, intranet pages, chat logs) and classifies each one, reporting
the phrases at or above the risk threshold.

Example:
  culturacheck scan minuta.html
  culturacheck scan correo.html --min-risk 4 --sector construccion`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().IntVar(&scanMinRisk, "min-risk", 3, "only report phrases at or above this risk level")
	scanCmd.Flags().StringVar(&sector, "sector", "", "sector context (construccion, salud, energia, finanzas)")
	scanCmd.Flags().StringVar(&datasetPath, "dataset", "", "path to a custom dataset YAML (default: embedded)")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]
	log := newLogger()

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	phrases, err := extract.Phrases(string(content))
	if err != nil {
		return fmt.Errorf("extract phrases: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted %d candidate phrases\n", len(phrases))
	}
	if len(phrases) == 0 {
		fmt.Println("No se encontraron frases para analizar.")
		return nil
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	classifier, enhancer, err := buildAnalyzer(cfg, log)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(cfg.Concurrency.Workers, analyzerRunner(classifier, enhancer), log)
	results := processor.Results(processor.ProcessTexts(phrases, sector))

	flagged := 0
	for _, r := range results {
		if r.RiskLevel < scanMinRisk {
			continue
		}
		flagged++
		fmt.Printf("[%d/5] %s\n", r.RiskLevel, r.Phrase)
		fmt.Printf("      %s | %s\n\n", r.Category, r.LegalReference)
	}

	fmt.Fprintf(os.Stderr, "\n  Frases analizadas: %d\n  Señaladas (riesgo >= %d): %d\n\n",
		len(results), scanMinRisk, flagged)

	return nil
}
