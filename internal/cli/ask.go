package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/akashic-lore/internal/lore"
	"github.com/rcliao/akashic-lore/internal/oracle"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the archive a question",
		Long:  "Answer a question in the voice of a persona, grounded in the lore entries relevant to it.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk,
	}

	addAssistantFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func addAssistantFlags(cmd *cobra.Command) {
	cmd.Flags().String("persona", "", "Persona: "+strings.Join(oracle.PersonaNames(), ", ")+" (default from config)")
	cmd.Flags().Bool("mock", false, "Use an offline mock model instead of the configured LLM")
	cmd.Flags().Int("limit", 0, "Maximum lore entries in the context (default from config)")
}

func newAssistant(cmd *cobra.Command, m *lore.Matcher) (*oracle.Assistant, error) {
	name, _ := cmd.Flags().GetString("persona")
	mock, _ := cmd.Flags().GetBool("mock")

	if name == "" {
		name = cfg.LLM.Persona
	}
	persona, err := oracle.PersonaByName(name)
	if err != nil {
		return nil, err
	}

	var llm oracle.LLM
	if mock {
		llm = &oracle.MockLLM{}
	} else {
		llm, err = oracle.NewOpenAILLM(oracle.LLMConfig{
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
		})
		if err != nil {
			return nil, err
		}
	}

	return oracle.NewAssistant(llm, m, persona, logger), nil
}

func runAsk(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	a, err := newAssistant(cmd, newMatcher(limit))
	if err != nil {
		exitErr("ask", err)
	}

	reply, err := a.Ask(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		exitErr("ask", err)
	}

	if textOutput() {
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return
	}
	printJSON(cmd, map[string]string{
		"persona": a.Persona().Name,
		"answer":  reply,
	})
}
