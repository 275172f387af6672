package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"kirana_back_end/internal/models"
)

// Load charge le catalogue produits. Le catalogue est un contrat d'entrée :
// une liste ordonnée de produits fournie au démarrage, le cœur ne la valide
// pas et ne la modifie jamais. Sans fichier configuré, on sert le jeu démo.
func Load(path string) ([]models.Product, error) {
	if path == "" {
		log.Println("⚠️  CATALOG_PATH non configuré — catalogue démo utilisé")
		return DemoProducts(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du catalogue %s: %w", path, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("décodage du catalogue %s: %w", path, err)
	}

	log.Printf("✅ Catalogue chargé: %d produits depuis %s", len(products), path)
	return products, nil
}

// DemoProducts — catalogue statique de démonstration
func DemoProducts() []models.Product {
	return []models.Product{
		{ID: "P1", Name: "Basmati Rice 5kg", Category: "Grocery", Price: 450, Image: "rice.jpg", Description: "Premium long-grain basmati rice", Rating: 4.5, Stock: 15, SKU: "GRO-RICE-5KG"},
		{ID: "P2", Name: "Sunflower Oil 1L", Category: "Grocery", Price: 160, Image: "oil.jpg", Description: "Refined sunflower cooking oil", Rating: 4.2, Stock: 5, SKU: "GRO-OIL-1L"},
		{ID: "P3", Name: "Masala Chai 250g", Category: "Beverages", Price: 120, Image: "chai.jpg", Description: "Spiced black tea blend", Rating: 4.7, Stock: 40, SKU: "BEV-CHAI-250"},
		{ID: "P4", Name: "Steel Water Bottle", Category: "Home", Price: 299, Image: "bottle.jpg", Description: "Insulated stainless steel bottle 750ml", Rating: 4.4, Stock: 22, SKU: "HOM-BTL-750"},
		{ID: "P5", Name: "Detergent Powder 2kg", Category: "Household", Price: 210, Image: "detergent.jpg", Description: "Stain-removing laundry detergent", Rating: 4.0, Stock: 8, SKU: "HSH-DET-2KG"},
		{ID: "P6", Name: "Almonds 500g", Category: "Dry Fruits", Price: 520, Image: "almonds.jpg", Description: "California almonds, whole and raw", Rating: 4.8, Stock: 12, SKU: "DRY-ALM-500"},
	}
}
