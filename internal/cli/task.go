package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/integridai/culturacheck/internal/consensus"
)

var (
	taskCount  int
	taskSector string
	taskSeed   int64
)

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Generate compliance micro-tasks for human review",
	Long: `Task generates CAPTCHA-style micro-tasks: short Argentine business
phrases with four risk options, for distribution to human reviewers.
Reviewer consensus on these tasks produces validated dataset labels.

Roughly one task in ten is a gold standard with a known answer, used
to calibrate reviewer reliability.

Example:
  culturacheck task --count 5
  culturacheck task --sector salud --count 10 --seed 42`,
	RunE: runTask,
}

func init() {
	rootCmd.AddCommand(taskCmd)

	taskCmd.Flags().IntVar(&taskCount, "count", 1, "number of tasks to generate")
	taskCmd.Flags().StringVar(&taskSector, "sector", "general", "sector phrase bank (construccion, salud, energia)")
	taskCmd.Flags().Int64Var(&taskSeed, "seed", 0, "random seed (0 uses the current time)")
}

func runTask(cmd *cobra.Command, args []string) error {
	if taskCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	gen := consensus.NewGenerator(taskSeed)

	tasks := make([]consensus.MicroTask, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		tasks = append(tasks, gen.Generate(taskSector))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}
