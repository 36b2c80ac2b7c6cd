// Copyright (c) Enigmastation. All rights reserved.

// Command chat sends a one-shot query to an OpenAI-compatible chat
// completions endpoint and prints the first choice.
//
// Usage with OpenAI:
//
//	export OPENAI_API_KEY=sk-...
//	go run . "What is the airspeed of a laden swallow?" \
//	    --system "Use only latin names for species"
//
// Usage with an Azure OpenAI deployment and Azure AD:
//
//	export KGPT_ENDPOINT=https://<resource>.openai.azure.com/openai/deployments/<deployment>/chat/completions?api-version=2024-06-01
//	go run . --azure-ad "hello"
//
// Settings are read from kgpt.yml (see --config), a .env file and KGPT_*
// environment variables, in increasing order of precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/spf13/cobra"

	"github.com/enigmastation/kgpt/chat"
	"github.com/enigmastation/kgpt/config"
	"github.com/enigmastation/kgpt/openai"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [prompt...]",
		Short: "Send a prompt to an OpenAI-compatible chat endpoint",
		Long: `Chat joins its arguments into a single user prompt, prepends any
--system messages, and prints the first choice returned by the endpoint.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         runChat,
	}
	cmd.Flags().String("config", "kgpt.yml", "config file path")
	cmd.Flags().String("env-file", ".env", "dotenv file to load")
	cmd.Flags().StringArray("system", nil, "system message (repeatable)")
	cmd.Flags().String("model", "", "model override")
	cmd.Flags().Float64("temperature", -1, "temperature override")
	cmd.Flags().Bool("azure-ad", false, "authenticate with DefaultAzureCredential")
	cmd.Flags().Bool("usage", false, "print token usage")
	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	// Enable debug logging if requested
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Model = model
	}
	if temp, _ := cmd.Flags().GetFloat64("temperature"); temp >= 0 {
		cfg.Temperature = temp
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []openai.Option{openai.WithMiddleware(chat.LoggingMiddleware(slog.Default()))}
	if azureAD, _ := cmd.Flags().GetBool("azure-ad"); azureAD {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return fmt.Errorf("creating Azure credential: %w", err)
		}
		opts = append(opts, openai.WithTokenCredential(cred))
	}
	client := cfg.NewClient(opts...)

	systems, _ := cmd.Flags().GetStringArray("system")
	inputs := make([]any, 0, len(systems)+1)
	for _, s := range systems {
		inputs = append(inputs, chat.NewSystemMessage(s))
	}
	inputs = append(inputs, strings.Join(args, " "))

	res, err := client.Send(ctx, inputs...)
	if err != nil {
		var httpErr *chat.HTTPError
		if errors.As(err, &httpErr) && errors.Is(err, chat.ErrAuth) {
			return fmt.Errorf("credential rejected (status %d): %w", httpErr.StatusCode, err)
		}
		return err
	}

	switch res.Kind() {
	case chat.KindEmpty:
		return fmt.Errorf("no credential configured: set %s, %sAPI_KEY or use --azure-ad", config.APIKeyEnvVar, config.EnvPrefix)
	case chat.KindSuccess:
		resp, _ := res.Response()
		text, ok := resp.First()
		if !ok {
			text = "(no choices returned)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		if showUsage, _ := cmd.Flags().GetBool("usage"); showUsage {
			fmt.Fprintf(cmd.ErrOrStderr(), "[tokens: %d prompt, %d completion, %d total]\n",
				resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
		}
	}
	return nil
}
