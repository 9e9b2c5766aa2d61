package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/akashic-lore/internal/lore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Converse with the archive",
		Long: `Start an interactive session with a persona. Each line is a question; the
relevant lore is looked up afresh for every one. With --watch, edits to the
lore files are picked up without restarting. Type /quit to leave.`,
		Args: cobra.NoArgs,
		Run:  runChat,
	}

	addAssistantFlags(cmd)
	cmd.Flags().Bool("watch", false, "Reload lore files when they change")

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	watch, _ := cmd.Flags().GetBool("watch")
	limit, _ := cmd.Flags().GetInt("limit")

	m := newMatcher(limit)
	a, err := newAssistant(cmd, m)
	if err != nil {
		exitErr("chat", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch {
		go func() {
			if err := lore.Watch(ctx, m, loreFiles()); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("lore watch stopped", zap.Error(err))
			}
		}()
	}

	out := cmd.OutOrStdout()
	prompt := titleStyle.Render(a.Persona().Name+">") + " "
	fmt.Fprintln(out, dimStyle.Render("The archive is open. /quit to leave."))

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return
		}

		reply, err := a.Ask(ctx, line)
		if err != nil {
			fmt.Fprintln(out, dimStyle.Render("error: "+err.Error()))
			continue
		}
		fmt.Fprintln(out, bodyStyle.Render(reply))
	}
	if err := in.Err(); err != nil {
		exitErr("read input", err)
	}
	fmt.Fprintln(out)
}
