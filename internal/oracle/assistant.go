package oracle

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Persona is an assistant voice.
type Persona struct {
	Name   string
	System string
}

var (
	// Oracle speaks in riddles and prophecy.
	Oracle = Persona{
		Name: "oracle",
		System: "You are the Oracle of the Akashic Archive, a seer who has read every tablet and scroll. " +
			"Answer in a calm, cryptic voice, with short prophetic sentences. " +
			"Stay within what the archive records; when it is silent, say the visions are clouded.",
	}

	// Keeper answers plainly, as the archive's librarian.
	Keeper = Persona{
		Name: "keeper",
		System: "You are the Keeper of the Akashic Archive, the patient librarian of its tablets, scrolls and books. " +
			"Answer clearly and helpfully, citing the entries you draw on by title. " +
			"If the archive holds nothing on the question, say so and suggest what the seeker might unlock next.",
	}
)

var personas = map[string]Persona{
	Oracle.Name: Oracle,
	Keeper.Name: Keeper,
}

// PersonaByName looks up a persona, case-insensitively.
func PersonaByName(name string) (Persona, error) {
	p, ok := personas[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Persona{}, fmt.Errorf("unknown persona %q (want one of %s)", name, strings.Join(PersonaNames(), ", "))
	}
	return p, nil
}

// PersonaNames lists the known persona names.
func PersonaNames() []string {
	names := make([]string, 0, len(personas))
	for n := range personas {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ContextProvider returns a lore context block for a query, or "".
type ContextProvider interface {
	GetContext(query string) string
}

// Assistant answers questions in a persona's voice, grounded in lore.
type Assistant struct {
	llm     LLM
	lore    ContextProvider
	persona Persona
	log     *zap.Logger
}

// NewAssistant creates an assistant. lore may be nil to answer without grounding.
func NewAssistant(llm LLM, lore ContextProvider, persona Persona, log *zap.Logger) *Assistant {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{llm: llm, lore: lore, persona: persona, log: log}
}

// Persona returns the assistant's persona.
func (a *Assistant) Persona() Persona { return a.persona }

// Ask answers question.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	var lore string
	if a.lore != nil {
		lore = a.lore.GetContext(question)
	}
	a.log.Debug("asking assistant",
		zap.String("persona", a.persona.Name),
		zap.Bool("grounded", lore != ""))

	reply, err := a.llm.Generate(ctx, a.persona.System, BuildPrompt(lore, question))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// BuildPrompt prepends the lore context block to the question. An empty
// block is omitted entirely.
func BuildPrompt(lore, question string) string {
	if lore == "" {
		return question
	}
	return lore + "Question: " + question
}
