package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/boardroom/internal/render"
)

const examplePitch = `# Q2 Roadmap: AI-Powered Search

## Problem
Users spend 3+ minutes finding products. Search abandonment is 40%.

## Solution
Implement semantic search with AI recommendations.

## Timeline
- Month 1: Vector database integration
- Month 2: ML model training on user behavior
- Month 3: A/B test and rollout

## Resources
- 2 backend engineers
- 1 ML engineer
- $15k/month infra costs

## Expected Impact
- 50% reduction in search time
- 20% increase in conversion
- $2M additional revenue (projected)`

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show an example pitch for testing",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, render.Panel("Example Pitch", examplePitch))
		fmt.Fprintln(out, render.Note("Copy this or use: boardroom grill --file example.txt"))
	},
}
