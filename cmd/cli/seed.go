package cli

import (
	"fmt"
	"log"

	"github.com/axellelanca/pokedex/cmd"
	"github.com/axellelanca/pokedex/internal/config"
	"github.com/axellelanca/pokedex/internal/models"
	"github.com/axellelanca/pokedex/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// starterPokemons is the fixture set installed by 'seed'. Heights are in
// decimetres and weights in hectograms, matching the PokeAPI reference data.
var starterPokemons = []models.Pokemon{
	{Name: "bulbasaur", Height: 7, Weight: 69, Image: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/1.png"},
	{Name: "charmander", Height: 6, Weight: 85, Image: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/4.png"},
	{Name: "squirtle", Height: 5, Weight: 90, Image: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/7.png"},
	{Name: "pikachu", Height: 4, Weight: 60, Image: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png"},
	{Name: "eevee", Height: 3, Weight: 65, Image: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/133.png"},
	{Name: "snorlax", Height: 21, Weight: 4600, Image: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/143.png"},
}

// SeedCmd represents the 'seed' command. Running it twice is safe: records
// whose name already exists are skipped.
var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populates the database with a starter set of pokemons.",
	Long: `This command migrates the schema if needed, then inserts a small set
of well-known pokemons. Existing records are left untouched.`,
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

		if err := db.AutoMigrate(&models.Pokemon{}, &models.AuditEntry{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		pokemonRepo := repository.NewPokemonRepository(db)

		existing, err := pokemonRepo.GetAllPokemons()
		if err != nil {
			log.Fatalf("Failed to read existing pokemons: %v", err)
		}
		known := make(map[string]bool, len(existing))
		for _, p := range existing {
			known[p.Name] = true
		}

		created := 0
		for _, seed := range starterPokemons {
			if known[seed.Name] {
				continue
			}
			pokemon := seed
			if err := pokemonRepo.CreatePokemon(&pokemon); err != nil {
				log.Fatalf("Failed to seed pokemon %q: %v", seed.Name, err)
			}
			created++
		}

		fmt.Printf("Seeding done: %d pokemon(s) created, %d skipped.\n", created, len(starterPokemons)-created)
	},
}

func init() {
	cmd.RootCmd.AddCommand(SeedCmd)
}
