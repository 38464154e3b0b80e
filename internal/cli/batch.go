package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/integridai/culturacheck/internal/worker"
)

var (
	concurrency int
	outputPath  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple phrases from a file in parallel",
	Long: `Batch reads phrases from a file (one per line, # comments and blank
lines skipped) and classifies them concurrently. Phrases that fail
classification are logged and dropped; the remaining results keep the
input order.

Example:
  culturacheck batch frases.txt
  culturacheck batch frases.txt --concurrency 8 --output resultados.json
  culturacheck batch frases.txt --sector salud --llm --llm-provider moonshot`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputPath, "output", "", "write results as JSON to this path (default: stdout)")
	batchCmd.Flags().StringVar(&sector, "sector", "", "sector context (construccion, salud, energia, finanzas)")
	batchCmd.Flags().StringVar(&datasetPath, "dataset", "", "path to a custom dataset YAML (default: embedded)")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable remote AI enhancement")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, moonshot, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	log := newLogger()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	classifier, enhancer, err := buildAnalyzer(cfg, log)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(cfg.Concurrency.Workers, analyzerRunner(classifier, enhancer), log)

	outcomes, err := processor.ProcessFile(file, sector)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	results := processor.Results(outcomes)
	failed := len(outcomes) - len(results)

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	highRisk := 0
	for _, r := range results {
		if r.RiskLevel >= 4 {
			highRisk++
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Frases:      %d\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "  Analizadas:  %d\n", len(results))
	fmt.Fprintf(os.Stderr, "  Descartadas: %d\n", failed)
	fmt.Fprintf(os.Stderr, "  Riesgo alto: %d\n", highRisk)
	if outputPath != "" {
		fmt.Fprintf(os.Stderr, "  Salida:      %s\n", outputPath)
	}
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
