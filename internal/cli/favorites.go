package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/config"
	"github.com/emotebox/stickerdex/internal/favorites"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite stickers",
	Long: `Manage your favorite stickers.

Favorites are stored next to the database in favorites.json and survive
database resets.

Subcommands:
  add <folder> <emote>     Add a sticker to favorites
  remove <folder> <emote>  Remove a sticker from favorites
  list                     List all favorite stickers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <folder> <emote>",
	Short: "Add a sticker to favorites",
	Args:  cobra.ExactArgs(2),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <folder> <emote>",
	Short: "Remove a sticker from favorites",
	Args:  cobra.ExactArgs(2),
	RunE:  runFavoritesRemove,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all favorite stickers",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

func init() {
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
}

// openFavorites loads the favorites store from its configured path.
func openFavorites(cfg *config.Config) (*favorites.Store, error) {
	store := favorites.NewStore(config.GetPaths(cfg).Favorites)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	return store, nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	folder, emoteName := args[0], args[1]

	cfg, database, err := openCatalog()
	if err != nil {
		return trackCLIError("favorites add", err)
	}
	defer func() { _ = database.Close() }()

	// Verify the sticker exists before favoriting it
	sticker, err := database.GetSticker(folder, emoteName)
	if err != nil {
		return trackCLIError("favorites add", fmt.Errorf("look up sticker: %w", err))
	}
	if sticker == nil {
		return trackCLIError("favorites add", fmt.Errorf("sticker %s/%s not found", folder, emoteName))
	}

	store, err := openFavorites(cfg)
	if err != nil {
		return trackCLIError("favorites add", err)
	}

	if store.IsFavorite(folder, emoteName) {
		fmt.Printf("%s/%s is already a favorite.\n", folder, emoteName)
		return nil
	}

	if err := store.Add(folder, emoteName); err != nil {
		return trackCLIError("favorites add", fmt.Errorf("save favorite: %w", err))
	}

	telemetryClient.TrackFavoriteAdded(folder, emoteName)

	fmt.Printf("Added %s/%s to favorites.\n", folder, emoteName)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	folder, emoteName := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("favorites remove", fmt.Errorf("load config: %w", err))
	}

	store, err := openFavorites(cfg)
	if err != nil {
		return trackCLIError("favorites remove", err)
	}

	if !store.IsFavorite(folder, emoteName) {
		fmt.Printf("%s/%s is not a favorite.\n", folder, emoteName)
		return nil
	}

	if err := store.Remove(folder, emoteName); err != nil {
		return trackCLIError("favorites remove", fmt.Errorf("remove favorite: %w", err))
	}

	telemetryClient.TrackFavoriteRemoved(folder, emoteName)

	fmt.Printf("Removed %s/%s from favorites.\n", folder, emoteName)
	return nil
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	cfg, database, err := openCatalog()
	if err != nil {
		return trackCLIError("favorites list", err)
	}
	defer func() { _ = database.Close() }()

	store, err := openFavorites(cfg)
	if err != nil {
		return trackCLIError("favorites list", err)
	}

	favs := store.List()
	telemetryClient.TrackFavoritesListed(len(favs))

	if len(favs) == 0 {
		fmt.Println("No favorites yet.")
		fmt.Println("\nUse 'stickerdex favorites add <folder> <emote>' to add one.")
		return nil
	}

	fmt.Printf("FAVORITES (%d)\n", len(favs))
	fmt.Println("──────────────────────────────────────────────────")

	for _, fav := range favs {
		line := fmt.Sprintf("  %s/%s", fav.Folder, fav.EmoteName)

		// A favorite may outlive its sticker row; flag the stale ones.
		sticker, err := database.GetSticker(fav.Folder, fav.EmoteName)
		if err == nil && sticker == nil {
			line += " (no longer in catalog)"
		}
		fmt.Println(line)
	}

	return nil
}
