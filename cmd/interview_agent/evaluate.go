package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/interview-evaluator/internal/config"
	"github.com/jonathan/interview-evaluator/internal/db"
	"github.com/jonathan/interview-evaluator/internal/evaluation"
	"github.com/jonathan/interview-evaluator/internal/llm"
	"github.com/jonathan/interview-evaluator/internal/notify"
	"github.com/spf13/cobra"
)

var evaluateAsUser string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <doc-id>",
	Short: "Evaluate one stored interview document",
	Long:  `Run the full evaluation flow for a single interview document and print the scored questions as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateAsUser, "as-user", "", "User UUID to run the evaluation as (defaults to the document owner)")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	docID := args[0]
	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	callerID, err := resolveCaller(ctx, database, docID)
	if err != nil {
		return err
	}

	llmClient, err := llm.NewClient(ctx, &llm.Config{
		Provider: llm.Provider(cfg.LLMProvider),
		Model:    cfg.LLMModel,
		BaseURL:  cfg.LLMBaseURL,
	}, cfg.LLMAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	var notifier notify.Notifier
	if cfg.NotifyEndpoint != "" {
		notifier = notify.NewHTTPNotifier(cfg.NotifyEndpoint, cfg.NotifyAPIKey)
	}

	svc := evaluation.NewService(database, evaluation.NewEvaluator(llmClient), notifier, cfg.NotifyTopic)
	result, err := svc.Run(ctx, docID, callerID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// resolveCaller picks the caller identity for a CLI run: an explicit
// --as-user value, or the document owner when the flag is unset.
func resolveCaller(ctx context.Context, database *db.DB, docID string) (uuid.UUID, error) {
	if evaluateAsUser != "" {
		callerID, err := uuid.Parse(evaluateAsUser)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid --as-user value: %w", err)
		}
		return callerID, nil
	}

	raw, err := database.GetDocument(ctx, evaluation.Collection, docID)
	if err != nil {
		return uuid.Nil, err
	}
	if raw == nil {
		return uuid.Nil, &evaluation.DocumentNotFoundError{DocID: docID}
	}

	var doc struct {
		UserID uuid.UUID `json:"userId"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode interview document: %w", err)
	}
	return doc.UserID, nil
}
