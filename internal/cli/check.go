package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/integridai/culturacheck/internal/model"
)

var (
	checkJSON    bool
	checkTimeout time.Duration
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <frase>",
	Short: "Analyze a single phrase for compliance risk",
	Long: `Check classifies one Spanish business phrase and reports its risk
level, category, detected cultural markers and legal reference.

Example:
  culturacheck check "Un regalito para el inspector"
  culturacheck check "Mi cuñado tiene una empresa" --sector construccion
  culturacheck check "Lo arreglamos por izquierda" --llm --llm-provider moonshot
  culturacheck check "Es solo un asadito" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the result as JSON")
	checkCmd.Flags().StringVar(&sector, "sector", "", "sector context (construccion, salud, energia, finanzas)")
	checkCmd.Flags().StringVar(&datasetPath, "dataset", "", "path to a custom dataset YAML (default: embedded)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 60*time.Second, "overall analysis timeout")

	// LLM flags
	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable remote AI enhancement")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, moonshot, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	phrase := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	log := newLogger()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	classifier, enhancer, err := buildAnalyzer(cfg, log)
	if err != nil {
		return err
	}

	var result *model.ClassificationResult
	if enhancer != nil {
		result, err = enhancer.Analyze(ctx, phrase, sector)
	} else {
		result, err = classifier.Classify(phrase)
	}
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)
	return nil
}

func printResult(r *model.ClassificationResult) {
	fmt.Printf("Frase:      %s\n", r.Phrase)
	fmt.Printf("Riesgo:     %d/5 %s\n", r.RiskLevel, riskBar(r.RiskLevel))
	fmt.Printf("Categoría:  %s\n", r.Category)
	if len(r.CulturalMarkers) > 0 {
		fmt.Printf("Marcadores: %s\n", strings.Join(r.CulturalMarkers, ", "))
	}
	fmt.Printf("Confianza:  %.0f%%\n", r.Confidence*100)
	fmt.Printf("Legal:      %s\n", r.LegalReference)
	fmt.Printf("Análisis:   %s\n", r.Explanation)
	if r.CompetitiveNote != "" {
		fmt.Printf("Nota:       %s\n", r.CompetitiveNote)
	}
	if r.Enhancement != nil && r.Enhancement.Provider != "local" {
		fmt.Printf("IA:         %s (%s, %.0fms)\n",
			r.Enhancement.Provider, r.Enhancement.Routing, r.Enhancement.ProcessingTimeMS)
		for _, step := range r.Enhancement.Remediation {
			fmt.Printf("  → %s\n", step)
		}
	}
}

func riskBar(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("█", level) + strings.Repeat("░", 5-level)
}
