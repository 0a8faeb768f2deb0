// Package api maps the HTTP surface of the pokedex service onto the
// PokemonService. Listing is public; every mutating route sits behind the
// basic-auth guard, which rejects bad credentials before any handler runs.
package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	customerrors "github.com/axellelanca/pokedex/internal/errors"
	"github.com/axellelanca/pokedex/internal/models"
	"github.com/axellelanca/pokedex/internal/services"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all Gin routes and injects the dependencies.
// accounts holds the basic-auth credentials; auditEvents receives one event
// per successful mutation and may be nil when no audit trail is running.
func SetupRoutes(router *gin.Engine, pokemonService *services.PokemonService, accounts gin.Accounts, auditEvents chan<- models.AuditEvent) {
	// Health check route, used to verify service availability.
	router.GET("/health", HealthCheckHandler)

	// Listing stays public.
	router.GET("/pokemon", ListPokemonsHandler(pokemonService))

	// Mutations require basic auth.
	protected := router.Group("/", gin.BasicAuth(accounts))
	{
		protected.POST("/pokemon", CreatePokemonHandler(pokemonService, auditEvents))
		protected.PUT("/pokemon/:id", UpdatePokemonHandler(pokemonService, auditEvents))
		protected.DELETE("/pokemon/:id", DeletePokemonHandler(pokemonService, auditEvents))
	}
}

// HealthCheckHandler handles the /health route.
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListPokemonsHandler handles GET /pokemon. Filter, sort and pagination all
// arrive as query parameters and travel to the service as raw strings; the
// response echoes the resolved page next to the records.
func ListPokemonsHandler(pokemonService *services.PokemonService) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := services.ListParams{
			OrderBy:   c.Query("orderBy"),
			OrderDir:  c.Query("orderDir"),
			Name:      c.Query("name"),
			HeightGTE: c.Query("height[gte]"),
			HeightLEQ: c.Query("height[leq]"),
			WeightGTE: c.Query("weight[gte]"),
			WeightLEQ: c.Query("weight[leq]"),
			Page:      c.Query("page"),
			PageSize:  c.Query("pageSize"),
		}

		pokemons, page, err := pokemonService.ListPokemons(params)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"pokemons": pokemons,
			"page":     page,
		})
	}
}

// CreatePokemonHandler handles POST /pokemon. The payload is validated in
// full before anything is written, so the client sees every field problem
// in one response.
func CreatePokemonHandler(pokemonService *services.PokemonService, auditEvents chan<- models.AuditEvent) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.PokemonPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		pokemon, err := pokemonService.CreatePokemon(payload)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		enqueueAudit(c, auditEvents, models.AuditActionCreate, pokemon)
		c.JSON(http.StatusCreated, pokemon)
	}
}

// UpdatePokemonHandler handles PUT /pokemon/:id. The service reports body
// problems before id problems, so a request that is wrong on both counts
// gets the validation message list.
func UpdatePokemonHandler(pokemonService *services.PokemonService, auditEvents chan<- models.AuditEvent) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.PokemonPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		pokemon, err := pokemonService.UpdatePokemon(c.Param("id"), payload)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		enqueueAudit(c, auditEvents, models.AuditActionUpdate, pokemon)
		c.JSON(http.StatusOK, pokemon)
	}
}

// DeletePokemonHandler handles DELETE /pokemon/:id and returns the removed
// record.
func DeletePokemonHandler(pokemonService *services.PokemonService, auditEvents chan<- models.AuditEvent) gin.HandlerFunc {
	return func(c *gin.Context) {
		pokemon, err := pokemonService.DeletePokemon(c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}

		enqueueAudit(c, auditEvents, models.AuditActionDelete, pokemon)
		c.JSON(http.StatusOK, pokemon)
	}
}

// respondServiceError translates service errors into client responses.
// Anything unrecognized is a server-side failure: logged, not leaked.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *customerrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "validation failed",
			"messages": validationErr.Messages,
		})
	case errors.Is(err, customerrors.ErrInvalidPageSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": customerrors.ErrInvalidPageSize.Error()})
	case errors.Is(err, customerrors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": customerrors.ErrInvalidID.Error()})
	case errors.Is(err, customerrors.ErrPokemonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": customerrors.ErrPokemonNotFound.Error()})
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// enqueueAudit reports a successful mutation to the audit workers without
// ever blocking the request. When the buffer is full the event is dropped;
// the response to the client matters more than a complete trail.
func enqueueAudit(c *gin.Context, auditEvents chan<- models.AuditEvent, action string, pokemon *models.Pokemon) {
	if auditEvents == nil {
		return
	}

	event := models.AuditEvent{
		Action:      action,
		PokemonID:   pokemon.ID,
		PokemonName: pokemon.Name,
		Actor:       c.GetString(gin.AuthUserKey),
		RemoteAddr:  c.ClientIP(),
		Timestamp:   time.Now(),
	}

	select {
	case auditEvents <- event:
	default:
		log.Printf("WARNING: audit channel full, dropping %s event for pokemon %d", action, pokemon.ID)
	}
}
