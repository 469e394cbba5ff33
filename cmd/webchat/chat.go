package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/imsaksham-c/webchat"
)

// greeting opens every chat session.
const greeting = "Hello, I am a bot. How can I help you?"

// Run executes the chat command: an interactive REPL over stdin.
func (c *ChatCmd) Run(deps *Dependencies) error {
	site, err := findSiteByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'webchat list' to see available sites.\n", webchat.ErrorMessage(err))
		return err
	}

	session, err := deps.Sessions.CreateSession(deps.Ctx, site.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webchat.ErrorMessage(err))
		return err
	}
	defer func() {
		_ = deps.Sessions.DeleteSession(deps.Ctx, session.ID)
	}()

	fmt.Fprintf(deps.Stdout, "Chatting with %s (%s). Type 'exit' to quit.\n\n", site.Name, site.SeedURL)
	fmt.Fprintf(deps.Stdout, "AI: %s\n", greeting)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		answer, err := deps.Engine.Respond(deps.Ctx, session.ID, input)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webchat.ErrorMessage(err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "AI: %s\n", answer)
	}

	return scanner.Err()
}
