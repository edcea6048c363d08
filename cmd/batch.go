package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vettr/internal/apihandlers"
	"vettr/internal/models"
	"vettr/internal/tasks"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <candidates-file.json>",
	Short: "Enqueue candidates from a file for background analysis",
	Long: `Reads a batch request file ({"candidates": [...]}) and enqueues one
analysis task per candidate on the Redis-backed job queue. Run "vettr
worker" to process them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		if appInstance.JobClient == nil {
			return fmt.Errorf("background analysis requires redis.address to be configured")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read candidates file: %w", err)
		}

		var req models.BatchRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("failed to parse candidates file: %w", err)
		}
		if len(req.Candidates) == 0 {
			return fmt.Errorf("no candidates found in %s", args[0])
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Candidate", "Task ID"})
		table.SetBorder(true)

		for _, candidate := range req.Candidates {
			task, err := tasks.NewCandidateAnalysisTask(tasks.CandidateAnalysisPayload{
				CandidateName: candidate.CandidateName,
				ScraperJSON:   candidate.ScraperJSON,
				Options:       candidate.Options,
			})
			if err != nil {
				return fmt.Errorf("failed to build task for %q: %w", candidate.CandidateName, err)
			}

			info, err := appInstance.JobClient.Enqueue(task,
				asynq.TaskID(uuid.NewString()),
				asynq.Retention(apihandlers.AsyncResultRetention),
			)
			if err != nil {
				return fmt.Errorf("failed to enqueue candidate %q: %w", candidate.CandidateName, err)
			}
			table.Append([]string{candidate.CandidateName, info.ID})
		}

		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
