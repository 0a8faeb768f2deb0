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

// StatsCmd represents the 'stats' command.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Shows database statistics",
	Long:  `Prints the number of stored pokemons and the audit trail totals per action.`,
	Run:   runStats,
}

func init() {
	cmd.RootCmd.AddCommand(StatsCmd)
}

func runStats(cmd *cobra.Command, args []string) {
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
	auditRepo := repository.NewAuditRepository(db)

	total, err := pokemonRepo.CountPokemons()
	if err != nil {
		log.Fatalf("Failed to count pokemons: %v", err)
	}

	counts, err := auditRepo.CountAuditEntriesByAction()
	if err != nil {
		log.Fatalf("Failed to count audit entries: %v", err)
	}

	fmt.Printf("Pokemons stored: %d\n", total)
	fmt.Println("Audit trail:")
	for _, action := range []string{models.AuditActionCreate, models.AuditActionUpdate, models.AuditActionDelete} {
		fmt.Printf("  %s: %d\n", action, counts[action])
	}
}
