package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/spf13/cobra"

	"github.com/Afessler1998/arbor"
	"github.com/Afessler1998/arbor/story"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play through the story interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := store.Load(storyFile())
			if err != nil {
				return err
			}
			return play(tree)
		},
	}
}

func play(tree *arbor.Tree[story.Beat]) error {
	current := tree.RootID()
	if current == arbor.NoNode {
		fmt.Println("The story is empty. Start one with 'arbor-story new'.")
		return nil
	}

	for {
		beat, err := tree.Value(current)
		if err != nil {
			return err
		}
		fmt.Println(outcomeStyle.Render(beat.Outcome))

		children, err := tree.Children(current)
		if err != nil {
			return err
		}
		if len(children) == 0 {
			fmt.Println(endStyle.Render("End of story reached. Thanks for playing!"))
			return nil
		}

		options := make([]string, len(children))
		for i, id := range children {
			b, err := tree.Value(id)
			if err != nil {
				return err
			}
			options[i] = b.Action
		}

		var choice core.OptionAnswer
		prompt := &survey.Select{
			Message: "Choose your next action:",
			Options: options,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			return err
		}
		current = children[choice.Index]
	}
}
