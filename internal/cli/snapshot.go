package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youruser/cardstudio/internal/cards"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the resolved template snapshot for a card",
	Long: `Snapshot resolves the effective template for a card against a tournament
configuration and prints the fully-merged snapshot as JSON. This is the
exact structure a render would freeze into the card's metadata.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cardPath, _ := cmd.Flags().GetString("card")
		configPath, _ := cmd.Flags().GetString("config")
		templateID, _ := cmd.Flags().GetString("template")

		card, config, err := loadCardAndConfig(cardPath, configPath)
		if err != nil {
			return err
		}

		id, snap := cards.ResolveTemplateSnapshot(card, config, templateID)
		out, err := json.MarshalIndent(map[string]any{
			"template_id": id,
			"snapshot":    snap,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	snapshotCmd.Flags().String("card", "", "path to the card JSON file")
	snapshotCmd.Flags().String("config", "", "path to the tournament config JSON file")
	snapshotCmd.Flags().String("template", "", "explicit template id override")
	snapshotCmd.MarkFlagRequired("card")
	snapshotCmd.MarkFlagRequired("config")
}
