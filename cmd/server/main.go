package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"kirana_back_end/internal/accounts"
	"kirana_back_end/internal/anomaly"
	"kirana_back_end/internal/cache"
	"kirana_back_end/internal/catalog"
	"kirana_back_end/internal/config"
	"kirana_back_end/internal/database"
	"kirana_back_end/internal/handlers"
	"kirana_back_end/internal/routes"
	"kirana_back_end/internal/search"
	"kirana_back_end/internal/store"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseDatabases()

	// Catalogue : contrat d'entrée fourni au démarrage
	products, err := catalog.Load(os.Getenv("CATALOG_PATH"))
	if err != nil {
		log.Fatalf("❌ Impossible de charger le catalogue: %v", err)
	}

	// L'index de recherche est construit une seule fois
	index := search.NewIndex(products)
	log.Printf("✅ Index de recherche construit (%d produits)", len(products))

	scorer := anomaly.NewRandomScorer(time.Now().UnixNano())
	s := store.New(products, scorer)

	// Restauration du snapshot persisté, s'il existe
	if snap, err := cache.LoadSnapshot(context.Background()); err != nil {
		log.Printf("⚠️ Lecture du snapshot impossible: %v", err)
	} else if snap != nil {
		if err := s.Restore(*snap); err != nil {
			log.Printf("⚠️ Snapshot ignoré: %v", err)
		} else {
			log.Println("✅ État restauré depuis le snapshot Redis")
		}
	}

	api := handlers.NewAPI(s, index, accounts.NewDemoAccounts())

	r := gin.Default()
	routes.RegisterRoutes(r, api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Kirana lancé sur le port", port)
	r.Run(":" + port)
}
