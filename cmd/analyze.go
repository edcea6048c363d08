package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vettr/internal/app"
	"vettr/internal/clix"
	"vettr/internal/models"
)

var analyzeAsJSON bool

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <scrape-file.json>",
	Short: "Analyze one candidate's scraped posts from a JSON file",
	Long: `Reads a scraper result file, runs the risk analysis pipeline and prints
the report. Use --json for the full report document instead of the summary
table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read scrape file: %w", err)
		}

		var scrape models.ScrapeResult
		if err := json.Unmarshal(data, &scrape); err != nil {
			return fmt.Errorf("failed to parse scrape file: %w", err)
		}

		candidate := clix.ParseCandidate(cmd.Flags())
		options, err := clix.ParseOptions(cmd.Flags())
		if err != nil {
			return err
		}

		start := time.Now()
		report := appInstance.Analyzer.Analyze(cmd.Context(), &scrape, candidate)
		if !report.Failed() {
			report.ProcessingMetadata = &models.ProcessingMetadata{
				ProcessingTimeSeconds: math.Round(time.Since(start).Seconds()*100) / 100,
				AnalysisOptions:       options,
				ServiceVersion:        app.ServiceVersion,
			}
		}

		if analyzeAsJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		printReportSummary(report)
		return nil
	},
}

func printReportSummary(report *models.Report) {
	if report.Failed() {
		color.Red("Analysis failed for %s: %s", report.Candidate, report.Error)
		return
	}

	summary := report.AnalysisSummary
	fmt.Printf("Candidate: %s\n", report.Candidate)
	fmt.Printf("Overall score: %s  Risk level: %s\n",
		colorForScore(summary.OverallScore).Sprintf("%.1f", summary.OverallScore),
		string(summary.RiskLevel))
	fmt.Printf("Recommendation: %s\n\n", summary.Recommendation)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Content ID", "Risk", "Categories", "Confidence", "Red Flags"})
	table.SetBorder(true)
	table.SetRowLine(true)

	for _, post := range report.IndividualPosts {
		table.Append([]string{
			post.ContentID,
			string(post.RiskLevel),
			strconv.Itoa(len(post.Categories)),
			fmt.Sprintf("%.2f", post.Confidence),
			strconv.Itoa(len(post.RedFlags)),
		})
	}
	table.Render()

	if report.Recommendations != nil {
		fmt.Println()
		for _, action := range report.Recommendations.SuggestedActions {
			fmt.Printf("  - %s\n", action)
		}
		if report.Recommendations.RequiresReview {
			color.Yellow("\nManual review required.")
		}
	}
}

func colorForScore(score float64) *color.Color {
	switch {
	case score >= 70:
		return color.New(color.FgRed, color.Bold)
	case score >= 40:
		return color.New(color.FgRed)
	case score >= 20:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("candidate", "", "Candidate display name")
	analyzeCmd.Flags().StringSlice("option", nil, "Analysis option as key=value (repeatable)")
	analyzeCmd.Flags().BoolVar(&analyzeAsJSON, "json", false, "Print the full report as JSON")
}
