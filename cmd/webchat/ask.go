package main

import (
	"fmt"

	"github.com/imsaksham-c/webchat"
)

// Run executes the ask command: a single question with no history.
func (c *AskCmd) Run(deps *Dependencies) error {
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

	answer, err := deps.Engine.Respond(deps.Ctx, session.ID, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
