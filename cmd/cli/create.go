package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/axellelanca/pokedex/cmd"
	"github.com/axellelanca/pokedex/internal/config"
	customerrors "github.com/axellelanca/pokedex/internal/errors"
	"github.com/axellelanca/pokedex/internal/models"
	"github.com/axellelanca/pokedex/internal/repository"
	"github.com/axellelanca/pokedex/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	nameFlag   string
	heightFlag int
	weightFlag int
	imageFlag  string
)

// CreateCmd represents the 'create' command.
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates a pokemon record in the database.",
	Long: `This command validates and stores a pokemon record, the same way a
POST request on the API would.

Example:
  pokedex create --name="pikachu" --height=4 --weight=60 --image="https://example.com/pikachu.png"`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("FATAL: Failed to get underlying SQL database: %v", err)
		}
		defer sqlDB.Close()

		pokemonRepo := repository.NewPokemonRepository(db)
		pokemonService := services.NewPokemonService(pokemonRepo)

		payload := models.PokemonPayload{
			Name:   nameFlag,
			Height: heightFlag,
			Weight: weightFlag,
			Image:  imageFlag,
		}

		pokemon, err := pokemonService.CreatePokemon(payload)
		if err != nil {
			var validationErr *customerrors.ValidationError
			if errors.As(err, &validationErr) {
				fmt.Println("Error: the pokemon is not valid:")
				for _, msg := range validationErr.Messages {
					fmt.Printf("  - %s\n", msg)
				}
				os.Exit(1)
			}
			log.Fatalf("Failed to create pokemon: %v", err)
		}

		fmt.Printf("Pokemon created successfully:\n")
		fmt.Printf("ID: %d\n", pokemon.ID)
		fmt.Printf("Name: %s\n", pokemon.Name)
		fmt.Printf("Height: %d\n", pokemon.Height)
		fmt.Printf("Weight: %d\n", pokemon.Weight)
	},
}

func init() {
	CreateCmd.Flags().StringVar(&nameFlag, "name", "", "The pokemon name")
	CreateCmd.Flags().IntVar(&heightFlag, "height", 0, "The pokemon height in decimetres")
	CreateCmd.Flags().IntVar(&weightFlag, "weight", 0, "The pokemon weight in hectograms")
	CreateCmd.Flags().StringVar(&imageFlag, "image", "", "The pokemon image URL")

	CreateCmd.MarkFlagRequired("name")
	CreateCmd.MarkFlagRequired("image")

	cmd.RootCmd.AddCommand(CreateCmd)
}
