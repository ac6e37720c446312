package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const listTimeLayout = "2006-01-02 15:04"

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite words",
		Args:  cobra.NoArgs,
		RunE:  runFavoritesListCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <word>...",
		Short: "Add favorite words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFavoritesAddCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <word>...",
		Short: "Remove favorite words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFavoritesRemoveCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite words, newest first",
		Args:  cobra.NoArgs,
		RunE:  runFavoritesListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all favorite words",
		Args:  cobra.NoArgs,
		RunE:  runFavoritesClearCmd,
	})
	return cmd
}

func runFavoritesAddCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	now := time.Now()
	for _, word := range foldArgs(args) {
		if err := st.AddFavorite(cmd.Context(), word, now); err != nil {
			return fmt.Errorf("failed to add favorite %q: %w", word, err)
		}
	}
	return nil
}

func runFavoritesRemoveCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	for _, word := range foldArgs(args) {
		if err := st.RemoveFavorite(cmd.Context(), word); err != nil {
			return fmt.Errorf("failed to remove favorite %q: %w", word, err)
		}
	}
	return nil
}

func runFavoritesListCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	favorites, err := st.ListFavorites(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list favorites: %w", err)
	}
	if len(favorites) == 0 {
		logErrln("No favorites yet. Add one with: lexigram favorites add <word>")
		return nil
	}
	out := cmd.OutOrStdout()
	for _, fav := range favorites {
		if _, err := fmt.Fprintf(out, "%s  %s\n", fav.AddedAt.Local().Format(listTimeLayout), fav.Word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runFavoritesClearCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	if err := st.ClearFavorites(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recent searches, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	entries, err := st.ListHistory(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, entry := range entries {
		if _, err := fmt.Fprintf(out, "%s  %s\n", entry.UsedAt.Local().Format(listTimeLayout), entry.Word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func foldArgs(args []string) []string {
	words := trimmedArgs(args)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return words
}
