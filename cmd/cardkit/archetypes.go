package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opd-ai/cardkit-go/assetgen"
)

func newArchetypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archetypes",
		Short: "List registered archetypes and their traits",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, tag := range assetgen.Archetypes() {
				profile := assetgen.GetProfile(tag)
				fmt.Fprintf(out, "%-20s %s\n", tag, strings.Join(profile.Traits, ", "))
			}
		},
	}
}
