package archive

import (
	"encoding/json"
	"log"

	"github.com/gocql/gocql"

	"kirana_back_end/internal/database"
	"kirana_back_end/internal/models"
)

// Archive best-effort des registres append-only vers ScyllaDB. Le store
// reste la source de vérité : une insertion ratée est loguée, jamais
// remontée à l'appelant. Tables attendues (scripts/scylladb_init.cql) :
// orders_archive, suspicious_events_archive, sale_movements.

// ArchiveOrder archive une commande au moment de sa création.
func ArchiveOrder(order models.Order) {
	if database.Scylla == nil {
		return
	}

	items, _ := json.Marshal(order.Items)
	query := `INSERT INTO orders_archive (
		id, order_id, user_id, items, total, status, delivery_address, loyalty_points_used, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := database.Scylla.Query(query,
		gocql.TimeUUID(), order.ID, order.UserID, string(items), order.Total,
		order.Status, order.DeliveryAddress, order.LoyaltyPointsUsed, order.CreatedAt,
	).Exec(); err != nil {
		log.Printf("⚠️ Erreur archivage commande %s: %v", order.ID, err)
	}
}

// ArchiveEvent archive un événement suspect.
func ArchiveEvent(event models.SuspiciousEvent) {
	if database.Scylla == nil {
		return
	}

	query := `INSERT INTO suspicious_events_archive (
		id, event_id, product_id, type, score, created_at
	) VALUES (?, ?, ?, ?, ?, ?)`

	if err := database.Scylla.Query(query,
		gocql.TimeUUID(), event.ID, event.ProductID, event.Type, event.Score, event.Timestamp,
	).Exec(); err != nil {
		log.Printf("⚠️ Erreur archivage événement %s: %v", event.ID, err)
	}
}

// ArchiveSale archive les mouvements de stock d'un encaissement POS.
func ArchiveSale(userID string, receipt models.SaleReceipt) {
	if database.Scylla == nil {
		return
	}

	query := `INSERT INTO sale_movements (
		id, user_id, product_id, quantity, prev_stock, new_stock, subtotal, total
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	for _, m := range receipt.Movements {
		if err := database.Scylla.Query(query,
			gocql.TimeUUID(), userID, m.ProductID, m.Quantity,
			m.PrevStock, m.NewStock, receipt.Subtotal, receipt.Total,
		).Exec(); err != nil {
			log.Printf("⚠️ Erreur archivage mouvement de stock %s: %v", m.ProductID, err)
		}
	}
}
