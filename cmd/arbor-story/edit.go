package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Afessler1998/arbor"
	"github.com/Afessler1998/arbor/story"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <outcome>",
		Short: "Start a new story with a root beat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := arbor.NewWithRoot(story.Beat{Outcome: args[0]})
			if err != nil {
				return err
			}
			if err := store.Save(tree, storyFile()); err != nil {
				return err
			}
			fmt.Printf("Created %s with root beat %d\n", storyFile(), tree.RootID())
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <parent-id> <action> <outcome>",
		Short: "Append a beat under an existing one",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, err := parseNodeID(args[0])
			if err != nil {
				return err
			}

			tree, err := store.Load(storyFile())
			if err != nil {
				return err
			}

			id, err := tree.Append(parent, story.Beat{Action: args[1], Outcome: args[2]})
			if err != nil {
				return err
			}
			if err := store.Save(tree, storyFile()); err != nil {
				return err
			}
			fmt.Printf("Added beat %d under %d\n", id, parent)
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a beat and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNodeID(args[0])
			if err != nil {
				return err
			}

			tree, err := store.Load(storyFile())
			if err != nil {
				return err
			}

			if err := tree.Remove(id); err != nil {
				return err
			}
			if err := store.Save(tree, storyFile()); err != nil {
				return err
			}
			fmt.Printf("Removed beat %d and its subtree\n", id)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var linear bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the story tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := store.Load(storyFile())
			if err != nil {
				return err
			}

			fmt.Print(renderTree(tree))
			if linear {
				fmt.Println(tree.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&linear, "linear", false, "also print the linearized token sequence")
	return cmd
}

func parseNodeID(s string) (arbor.NodeID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return arbor.NoNode, fmt.Errorf("invalid node id %q", s)
	}
	return arbor.NodeID(n), nil
}
