package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/models"
)

var (
	usersAddSevenTVID string
	usersAddFolder    string
	usersAddName      string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	Long: `List all users registered in the catalog.

Shows each user's folder, display name, external identity, emote count and
last recorded sync, most recently synced first.`,
	Args: cobra.NoArgs,
	RunE: runUsers,
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a user",
	Long: `Register a new user in the catalog.

The external identity and the folder name must both be unused; a clash on
either one is rejected.

Example:
  stickerdex users add --id 60ae3ae2aeec8e14e2f7c9d1 --folder alice --name Alice`,
	Args: cobra.NoArgs,
	RunE: runUsersAdd,
}

func init() {
	usersAddCmd.Flags().StringVar(&usersAddSevenTVID, "id", "", "External emote-service identity (required)")
	usersAddCmd.Flags().StringVar(&usersAddFolder, "folder", "", "Local folder name (required)")
	usersAddCmd.Flags().StringVar(&usersAddName, "name", "", "Display name (required)")
	_ = usersAddCmd.MarkFlagRequired("id")
	_ = usersAddCmd.MarkFlagRequired("folder")
	_ = usersAddCmd.MarkFlagRequired("name")

	usersCmd.AddCommand(usersAddCmd)
}

func runUsers(cmd *cobra.Command, args []string) error {
	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("users", err)
	}
	defer func() { _ = database.Close() }()

	users, err := database.ListUsers()
	if err != nil {
		return trackCLIError("users", fmt.Errorf("list users: %w", err))
	}

	telemetryClient.TrackUsersListed(len(users))

	if len(users) == 0 {
		fmt.Println("No users registered.")
		fmt.Println("\nUse 'stickerdex users add' to register one.")
		return nil
	}

	fmt.Printf("USERS (%d)\n", len(users))
	fmt.Println("──────────────────────────────────────────────────")

	for _, user := range users {
		count, err := database.CountStickersByFolder(user.FolderName)
		if err != nil {
			count = int64(user.EmoteCount)
		}

		fmt.Printf("  %s (%s)\n", user.FolderName, user.DisplayName)
		fmt.Printf("    7TV id: %s\n", user.SevenTVID)
		fmt.Printf("    %d stickers cataloged, %d reported by last sync\n", count, user.EmoteCount)
		fmt.Printf("    Last synced: %s\n", formatTimeSince(user.LastSyncedAt))
		fmt.Println()
	}

	return nil
}

func runUsersAdd(cmd *cobra.Command, args []string) error {
	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("users add", err)
	}
	defer func() { _ = database.Close() }()

	user := &models.User{
		SevenTVID:   usersAddSevenTVID,
		FolderName:  usersAddFolder,
		DisplayName: usersAddName,
	}

	if err := database.CreateUser(user); err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicateExternalIdentity):
			return trackCLIError("users add", fmt.Errorf("external identity %s already registered", usersAddSevenTVID))
		case errors.Is(err, db.ErrDuplicateFolder):
			return trackCLIError("users add", fmt.Errorf("folder %s already registered", usersAddFolder))
		}
		return trackCLIError("users add", fmt.Errorf("create user: %w", err))
	}

	telemetryClient.TrackUserAdded(user.FolderName)

	fmt.Printf("Registered %s (%s)\n", user.FolderName, user.DisplayName)
	fmt.Printf("  7TV id: %s\n", user.SevenTVID)
	fmt.Println("\nAdd stickers with 'stickerdex add' or 'stickerdex import'.")

	return nil
}
