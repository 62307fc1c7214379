package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"navdir/internal/logging"
	"navdir/internal/nav"
	"navdir/internal/tree"
	"navdir/internal/walker"
)

func (a *app) runGo(cwd, target string) error {
	dest, err := a.nav.Go(cwd, target)
	if errors.Is(err, nav.ErrNoTarget) {
		fmt.Fprintln(a.stderr, "Wrong path/favourite")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, dest)
	return nil
}

func (a *app) runComplete(partial string) error {
	names, err := a.favs.Complete(partial)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(a.stdout, name)
	}
	return nil
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favourites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			favs, err := a.favs.List()
			if err != nil {
				return err
			}

			if a.visual() {
				fmt.Fprintln(a.stdout, "Listing favourites...")
				for _, fav := range favs {
					fmt.Fprintf(a.stdout, "  %s\n", fav)
				}
				return nil
			}

			for _, fav := range favs {
				fmt.Fprintln(a.stdout, fav)
			}
			return nil
		},
	}
}

func (a *app) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit PATH",
		Short: "Open a file or favourite file in $EDITOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := nav.NewEditor(a.cfg.EditorCommand())
			file, err := a.nav.Edit(cmd.Context(), editor, args[0])
			if errors.Is(err, nav.ErrNothingToEdit) {
				logging.Debug("nothing to edit", logging.String("target", args[0]))
				return nil
			}
			if err != nil {
				return err
			}

			logging.Debug("edited file", logging.String("path", file))
			return nil
		},
	}
}

func (a *app) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add PATH",
		Short: "Add a path to the favourites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := a.favs.Add(args[0])
			if err != nil {
				return err
			}
			if !added {
				logging.Debug("favourite not added", logging.String("path", args[0]))
				return nil
			}
			logging.Info("added favourite", logging.String("path", args[0]))
			return nil
		},
	}
}

func (a *app) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove FAVOURITE",
		Short: "Remove a favourite by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, ok, err := a.favs.Remove(args[0])
			if err != nil {
				return err
			}
			if ok {
				logging.Info("removed favourite", logging.String("path", removed))
			}
			return nil
		},
	}
}

func (a *app) newTreeCmd() *cobra.Command {
	var (
		depth   int
		entries int
		hidden  bool
	)

	cmd := &cobra.Command{
		Use:   "tree [PATH]",
		Short: "Display a directory as a tree (or -t)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tree.Options{
				Depth:   a.cfg.Tree.Depth,
				Entries: a.cfg.Tree.Entries,
				Options: walker.Options{
					Hidden:       a.cfg.Tree.Hidden,
					FollowCycles: a.cfg.Tree.FollowCycles,
				},
			}
			if cmd.Flags().Changed("depth") {
				opts.Depth = depth
			}
			if cmd.Flags().Changed("entries") {
				opts.Entries = entries
			}
			if cmd.Flags().Changed("hidden") {
				opts.Hidden = hidden
			}
			if opts.Depth < 0 || opts.Entries < 0 {
				return errors.New("depth and entries must not be negative")
			}

			root := defaultCwd()
			if len(args) == 1 {
				root = args[0]
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("failed to get absolute path: %w", err)
			}

			if _, err := os.Stat(root); err != nil {
				fmt.Fprintf(a.stderr, "cannot read %s\n", root)
				return nil
			}

			logging.Debug("rendering tree",
				logging.String("root", root),
				logging.Int("depth", opts.Depth),
				logging.Int("entries", opts.Entries),
				logging.Bool("hidden", opts.Hidden),
				logging.Bool("visual", a.visual()))

			if a.visual() {
				return tree.Render(a.stdout, root, opts)
			}

			for _, entry := range walker.Collect(root, opts.Depth, opts.Options) {
				fmt.Fprintln(a.stdout, entry.Path)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 3, "Tree depth")
	cmd.Flags().IntVarP(&entries, "entries", "e", 10, "Max entries per directory (visual only, not in pipe)")
	cmd.Flags().BoolVarP(&hidden, "hidden", "a", false, "Show hidden entries")

	return cmd
}

func (a *app) newBackCmd() *cobra.Command {
	var (
		number int
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "back",
		Short: "Jump back to a previous directory (or -b)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return a.listHistory()
			}

			dir, err := a.nav.Back(number)
			if errors.Is(err, nav.ErrNoHistory) {
				fmt.Fprintln(a.stderr, "no previous directory")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, dir)
			return nil
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", 1, "Jump n times back")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the most recent directories")
	cmd.MarkFlagsMutuallyExclusive("number", "list")

	return cmd
}

func (a *app) listHistory() error {
	if !a.visual() {
		entries, err := a.hist.Entries()
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Fprintln(a.stdout, entry)
		}
		return nil
	}

	tail, err := a.hist.ListTail(a.cfg.History.ListSize)
	if err != nil {
		return err
	}
	for i, entry := range tail {
		fmt.Fprintf(a.stdout, "%2d  %s\n", i+1, entry)
	}
	return nil
}
