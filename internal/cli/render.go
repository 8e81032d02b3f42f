package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/youruser/cardstudio/internal/cards"
	"github.com/youruser/cardstudio/internal/render"
	"github.com/youruser/cardstudio/internal/util"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a card to a PNG file",
	Long: `Render composites a card photo and tournament branding into the final
card image. Asset storage keys resolve to files under the --assets directory.

Examples:
  cardgen render --card card.json --config tournament.json --photo photo.jpg --out card.png
  cardgen render --card card.json --config tournament.json --photo photo.jpg --preview --out preview.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cardPath, _ := cmd.Flags().GetString("card")
		configPath, _ := cmd.Flags().GetString("config")
		photoPath, _ := cmd.Flags().GetString("photo")
		assetsDir, _ := cmd.Flags().GetString("assets")
		outPath, _ := cmd.Flags().GetString("out")
		templateID, _ := cmd.Flags().GetString("template")
		preview, _ := cmd.Flags().GetBool("preview")

		card, config, err := loadCardAndConfig(cardPath, configPath)
		if err != nil {
			return err
		}

		resolve := func(key string) (string, error) {
			if assetsDir == "" {
				return "", fmt.Errorf("no --assets directory given")
			}
			return filepath.Join(assetsDir, filepath.FromSlash(key)), nil
		}

		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		renderer := render.NewRenderer(log)

		var png []byte
		if preview {
			png, err = renderer.RenderTrimmedPreview(cmd.Context(), card, config, photoPath, resolve, templateID)
		} else {
			png, err = renderer.RenderFullCard(cmd.Context(), card, config, photoPath, resolve, templateID)
		}
		if err != nil {
			return err
		}

		if dir := filepath.Dir(outPath); dir != "." {
			if err := util.EnsureDir(dir); err != nil {
				return err
			}
		}
		if err := os.WriteFile(outPath, png, 0o644); err != nil {
			return err
		}

		color.Green("Wrote %s (%d bytes)", outPath, len(png))
		return nil
	},
}

func init() {
	renderCmd.Flags().String("card", "", "path to the card JSON file")
	renderCmd.Flags().String("config", "", "path to the tournament config JSON file")
	renderCmd.Flags().String("photo", "", "path or URL of the source photograph")
	renderCmd.Flags().String("assets", "", "directory that asset storage keys resolve into")
	renderCmd.Flags().String("out", "card.png", "output PNG path")
	renderCmd.Flags().String("template", "", "explicit template id override")
	renderCmd.Flags().Bool("preview", false, "render the trimmed preview instead of the full-bleed card")
	renderCmd.MarkFlagRequired("card")
	renderCmd.MarkFlagRequired("config")
	renderCmd.MarkFlagRequired("photo")
}

func loadCardAndConfig(cardPath, configPath string) (cards.Card, *cards.TournamentConfig, error) {
	rawCard, err := os.ReadFile(cardPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading card: %w", err)
	}
	card, err := cards.DecodeCard(rawCard)
	if err != nil {
		return nil, nil, err
	}

	rawConfig, err := os.ReadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	var config cards.TournamentConfig
	if err := json.Unmarshal(rawConfig, &config); err != nil {
		return nil, nil, fmt.Errorf("decoding config: %w", err)
	}
	return card, &config, nil
}
