package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sinkhole/internal/domain/lists"
)

var listsCmd = &cobra.Command{
	Use:   "lists <allow|deny|regex> <ls|add|rm|has> [domain]",
	Short: "Edit the domain lists directly",
	Long: `Edit the allow, deny and regex lists against the local gravity
database, without going through the HTTP API. Uses the same repository the
API serves, so changes are immediately visible to it.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := lists.Parse(args[0])
		if err != nil {
			return err
		}

		action := args[1]
		domain := ""
		if len(args) == 3 {
			domain = args[2]
		}
		if action != "ls" && domain == "" {
			return fmt.Errorf("%s requires a domain argument", action)
		}

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		ctx := cmd.Context()
		switch action {
		case "ls":
			domains, err := app.Repo.GetAll(ctx, list)
			if err != nil {
				return err
			}
			for _, d := range domains {
				fmt.Println(d)
			}
		case "add":
			if err := app.Repo.Add(ctx, list, domain); err != nil {
				return err
			}
			fmt.Printf("added %s to %s\n", domain, list)
		case "rm":
			if err := app.Repo.Remove(ctx, list, domain); err != nil {
				return err
			}
			fmt.Printf("removed %s from %s\n", domain, list)
		case "has":
			found, err := app.Repo.Contains(ctx, list, domain)
			if err != nil {
				return err
			}
			fmt.Println(found)
		default:
			return fmt.Errorf("unknown action %q, want ls, add, rm or has", action)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listsCmd)
}
