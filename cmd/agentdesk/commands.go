package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/germanamz/agentdesk/pkg/agentform"
	"github.com/germanamz/agentdesk/pkg/catalog"
	"github.com/germanamz/agentdesk/pkg/config"
	"github.com/germanamz/agentdesk/pkg/deskdir"
	"github.com/germanamz/agentdesk/pkg/session"
	"github.com/germanamz/agentdesk/pkg/tools/mcpserver"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a .agentdesk directory with the default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}

			d := deskdir.New(opts.dir)
			if err := deskdir.Bootstrap(d, data, force); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", d.Root())

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

func newLoginCmd(opts *options) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the desk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, false, func(a *app) error {
				out := cmd.OutOrStdout()

				if a.session.Authenticated() {
					_, _ = fmt.Fprintln(out, dimStyle.Render("Already signed in."))
					return nil
				}

				if email == "" || password == "" {
					if err := huh.NewForm(huh.NewGroup(
						huh.NewInput().Title("Email").Value(&email),
						huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
					)).Run(); err != nil {
						return err
					}
				}

				if err := a.session.Login(email, password); err != nil {
					if errors.Is(err, session.ErrInvalidCredentials) {
						_, _ = fmt.Fprintln(out, errorStyle.Render(err.Error()))
						return reportedError{err: err}
					}
					return err
				}

				_, _ = fmt.Fprintln(out, successStyle.Render("Signed in."))

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted when empty)")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when empty)")

	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the desk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, false, func(a *app) error {
				if err := a.session.Logout(); err != nil {
					return err
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")

				return nil
			})
		},
	}
}

func newAgentsCmd(opts *options) *cobra.Command {
	var search, status string

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, true, func(a *app) error {
				renderAgents(cmd.OutOrStdout(), a.catalog.Agents(
					catalog.MatchText[catalog.Agent](search),
					catalog.AgentStatusIs(catalog.AgentStatus(status)),
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text filter")
	cmd.Flags().StringVar(&status, "status", "", "active, inactive or draft")

	return cmd
}

func newProjectsCmd(opts *options) *cobra.Command {
	var search, status, agentID string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, true, func(a *app) error {
				preds := []catalog.Predicate[catalog.Project]{
					catalog.MatchText[catalog.Project](search),
					catalog.ProjectStatusIs(catalog.ProjectStatus(status)),
				}
				if agentID != "" {
					preds = append(preds, catalog.UsesAgent(agentID))
				}

				renderProjects(cmd.OutOrStdout(), a.catalog.Projects(preds...))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text filter")
	cmd.Flags().StringVar(&status, "status", "", "active, completed or on_hold")
	cmd.Flags().StringVar(&agentID, "agent", "", "only projects using this agent ID")

	return cmd
}

func newFilesCmd(opts *options) *cobra.Command {
	var search, kind string

	cmd := &cobra.Command{
		Use:   "files <project-id>",
		Short: "List the files uploaded to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, true, func(a *app) error {
				files, err := a.catalog.Files(args[0],
					catalog.MatchText[catalog.File](search),
					catalog.FileKindIs(kind),
				)
				if err != nil {
					return err
				}

				renderFiles(cmd.OutOrStdout(), files)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text filter")
	cmd.Flags().StringVar(&kind, "kind", "", "file kind, e.g. pdf")

	return cmd
}

func newAgentCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Create or edit an agent and its weighted parameters",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Create an agent",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(opts, true, func(a *app) error {
					return editAgent(cmd, a, newAgentTemplate())
				})
			},
		},
		&cobra.Command{
			Use:   "edit <agent-id>",
			Short: "Edit an existing agent",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(opts, true, func(a *app) error {
					rec, err := a.catalog.Agent(args[0])
					if err != nil {
						return err
					}
					return editAgent(cmd, a, rec.Agent)
				})
			},
		},
	)

	return cmd
}

// editAgent runs the editor on initial and reports the saved config diff.
func editAgent(cmd *cobra.Command, a *app, initial agentform.Agent) error {
	var diff string

	err := runAgentEditor(agentform.New(initial), func(ag agentform.Agent) error {
		d, err := a.persistAgent(ag)
		diff = d
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, successStyle.Render("Agent saved to "+a.configPath))
	if diff != "" {
		_, _ = fmt.Fprint(out, diff)
	}

	return nil
}

func newDashboardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Browse agents and projects interactively",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(opts, true, func(a *app) error {
				_, err := tea.NewProgram(newDashboardModel(a.catalog, renderMarkdown), tea.WithAltScreen()).Run()
				return err
			})
		},
	}
}

func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the catalog as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return withApp(opts, false, func(a *app) error {
				srv := mcpserver.New("agentdesk", version, a.log)
				srv.Register(a.catalog.Tools())

				return srv.Serve(ctx, os.Stdin, os.Stdout)
			})
		},
	}
}
