// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/factcheck-bot/internal/telegram"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Manage the bot's webhook registration",
}

var webhookSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Register the webhook URL with the Bot API",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		if url == "" {
			return fmt.Errorf("--url is required")
		}
		tg, err := telegram.NewClient(loadConfig().Telegram)
		if err != nil {
			return fmt.Errorf("telegram client: %w", err)
		}
		if err := tg.SetWebhook(cmd.Context(), url); err != nil {
			return fmt.Errorf("set webhook: %w", err)
		}
		fmt.Println("Webhook set to", url)
		return nil
	},
}

var webhookDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the webhook registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		tg, err := telegram.NewClient(loadConfig().Telegram)
		if err != nil {
			return fmt.Errorf("telegram client: %w", err)
		}
		if err := tg.DeleteWebhook(cmd.Context()); err != nil {
			return fmt.Errorf("delete webhook: %w", err)
		}
		fmt.Println("Webhook deleted")
		return nil
	},
}

func init() {
	webhookSetCmd.Flags().String("url", "", "public HTTPS URL of the webhook endpoint")
	webhookCmd.AddCommand(webhookSetCmd)
	webhookCmd.AddCommand(webhookDeleteCmd)
	rootCmd.AddCommand(webhookCmd)
}
