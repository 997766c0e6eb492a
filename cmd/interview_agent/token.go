package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/interview-evaluator/internal/config"
	"github.com/jonathan/interview-evaluator/internal/server"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint a JWT for a user",
	Long:  `Generate a signed bearer token for the given user UUID, for local testing against the API.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, args []string) error {
	userID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(userID)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
